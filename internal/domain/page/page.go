package page

import (
	"strings"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/gallery"
)

// Page is the full landing page rendered by a host surface.
type Page struct {
	Title     string
	Urgency   string
	Org       Organisation
	Hero      Hero
	Metrics   []Metric
	Donations []DonationOption
	Needs     Needs
	Courier   Courier
	Location  Location
	Finance   []FinancialOption
	FAQ       []FAQEntry
	Gallery   *GallerySection
	Video     *VideoPanel
	Wishlist  *WishlistPanel
	Footer    Footer
	Widgets   Widgets
}

// Organisation identifies who runs the relief effort.
type Organisation struct {
	Name         string
	Badge        string
	Phone        string
	Email        string
	Address      string
	WhatsAppLink string
}

// Hero is the opening banner.
type Hero struct {
	Badge    string
	Headline string
	Subline  string
	Body     string // markdown
}

// Metric is one live impact figure. Numeric metrics may be animated.
type Metric struct {
	Label  string
	Value  float64
	Suffix string
	Note   string
}

// DonationOption is one of the ways to help.
type DonationOption struct {
	Title   string
	Summary string
	Detail  string
	Anchor  string
}

// Needs is the priority needs assessment.
type Needs struct {
	Notice     Notice
	Categories []NeedsCategory
}

// Notice is a highlighted alert block.
type Notice struct {
	Title string
	Body  string
}

// NeedsCategory groups requested items.
type NeedsCategory struct {
	Name     string
	Critical bool
	Items    []NeedItem
}

// NeedItem is a single requested (or explicitly refused) item.
type NeedItem struct {
	Name     string
	Detail   string
	Priority bool
	Rejected bool
}

// Courier describes remote donation by courier app.
type Courier struct {
	Title string
	Intro string
	Steps []CourierStep
}

// CourierStep is one numbered instruction.
type CourierStep struct {
	Title  string
	Detail string
	Copy   string // optional copyable value
}

// Location is the physical drop-off point.
type Location struct {
	Name    string
	Address []string
	Hours   []string
	Note    string
	MapURL  string
}

// FinancialOption groups verified bank accounts.
type FinancialOption struct {
	Label     string
	Recipient string
	Accounts  []BankAccount
	VerifyURL string
}

// BankAccount lists account fields in display order.
type BankAccount struct {
	Currency string
	Fields   []AccountField
}

// AccountField is one labelled account value.
type AccountField struct {
	Label    string
	Value    string
	Copyable bool
}

// FAQEntry is a question with a markdown answer.
type FAQEntry struct {
	Question string
	Answer   string
}

// GallerySection wraps the image catalog with its copy.
type GallerySection struct {
	Title    string
	Subtitle string
	Catalog  gallery.Catalog
}

// VideoPanel embeds an external video by URL.
type VideoPanel struct {
	Title string
	URL   string
}

// WishlistPanel links to an online wishlist.
type WishlistPanel struct {
	Title string
	Body  string
	URL   string
}

// Footer closes the page.
type Footer struct {
	Tagline   string
	Blurb     string
	Sources   []Link
	Copyright string
}

// Link is a labelled URL.
type Link struct {
	Label string
	URL   string
}

// Widgets toggles the optional page-variant widgets.
type Widgets struct {
	Counter  bool
	Video    bool
	Wishlist bool
}

// Validate checks the sections every variant must carry.
func (p *Page) Validate() error {
	if p == nil {
		return NewDomainError(ErrCodeValidation, "page is nil", nil, nil)
	}
	if strings.TrimSpace(p.Org.Name) == "" {
		return missingSection("organisation")
	}
	if strings.TrimSpace(p.Hero.Headline) == "" {
		return missingSection("hero")
	}
	if len(p.Donations) == 0 {
		return missingSection("donations")
	}
	if p.Gallery != nil && p.Gallery.Catalog.Len() == 0 {
		return NewDomainError(ErrCodeValidation, "gallery has no images", gallery.ErrEmptyCatalog, map[string]interface{}{"section": "gallery"})
	}
	if p.Widgets.Video && p.Video == nil {
		return missingSection("video")
	}
	if p.Widgets.Wishlist && p.Wishlist == nil {
		return missingSection("wishlist")
	}
	return nil
}

// HasGallery reports whether the host should offer the lightbox entry point.
func (p *Page) HasGallery() bool {
	return p != nil && p.Gallery != nil && p.Gallery.Catalog.Len() > 0
}

// CopyTargets lists every value the page offers a copy button for, in
// reading order.
func (p *Page) CopyTargets() []CopyTarget {
	var targets []CopyTarget
	if p.Org.Address != "" {
		targets = append(targets, CopyTarget{ID: OrgAddressTargetID, Label: "Office address", Value: p.Org.Address})
	}
	if p.Org.Phone != "" {
		targets = append(targets, CopyTarget{ID: OrgPhoneTargetID, Label: "Coordination number", Value: p.Org.Phone})
	}
	for si, step := range p.Courier.Steps {
		if step.Copy != "" {
			targets = append(targets, CopyTarget{ID: StepTargetID(si), Label: step.Title, Value: step.Copy})
		}
	}
	for oi, opt := range p.Finance {
		for ai, acct := range opt.Accounts {
			for fi, f := range acct.Fields {
				if !f.Copyable {
					continue
				}
				label := f.Label
				if acct.Currency != "" {
					label = acct.Currency + " " + f.Label
				}
				targets = append(targets, CopyTarget{
					ID:    AccountTargetID(oi, ai, fi),
					Label: opt.Label + ": " + label,
					Value: f.Value,
				})
			}
		}
	}
	return targets
}

// DialNumber strips whitespace so the phone number can be used in a tel: link.
func DialNumber(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}
