package content

import (
	"strings"

	cfgpkg "github.com/alexisbeaulieu97/reliefpage/internal/config"
	"github.com/alexisbeaulieu97/reliefpage/internal/domain/gallery"
	"github.com/alexisbeaulieu97/reliefpage/internal/domain/page"
)

// MapToDomain converts a parsed content document into the domain page.
func MapToDomain(doc *cfgpkg.Document) (*page.Page, error) {
	if doc == nil {
		return nil, page.NewDomainError(page.ErrCodeValidation, "content document is nil", nil, nil)
	}

	p := &page.Page{
		Title:   doc.Title,
		Urgency: strings.TrimSpace(doc.Urgency),
		Org: page.Organisation{
			Name:         doc.Org.Name,
			Badge:        doc.Org.Badge,
			Phone:        doc.Org.Phone,
			Email:        doc.Org.Email,
			Address:      doc.Org.Address,
			WhatsAppLink: doc.Org.WhatsApp,
		},
		Hero: page.Hero{
			Badge:    doc.Hero.Badge,
			Headline: doc.Hero.Headline,
			Subline:  doc.Hero.Subline,
			Body:     doc.Hero.Body,
		},
		Needs: page.Needs{
			Notice: page.Notice{Title: doc.Needs.Notice.Title, Body: doc.Needs.Notice.Body},
		},
		Courier: page.Courier{Title: doc.Courier.Title, Intro: doc.Courier.Intro},
		Location: page.Location{
			Name:    doc.Location.Name,
			Address: trimmedLines(doc.Location.Address),
			Hours:   trimmedLines(doc.Location.Hours),
			Note:    doc.Location.Note,
			MapURL:  doc.Location.MapURL,
		},
		Footer: page.Footer{
			Tagline:   doc.Footer.Tagline,
			Blurb:     doc.Footer.Blurb,
			Copyright: doc.Footer.Copyright,
		},
		Widgets: page.Widgets{
			Counter:  doc.Widgets.Counter,
			Video:    doc.Widgets.Video,
			Wishlist: doc.Widgets.Wishlist,
		},
	}

	for _, m := range doc.Metrics {
		p.Metrics = append(p.Metrics, page.Metric{Label: m.Label, Value: m.Value, Suffix: m.Suffix, Note: m.Note})
	}
	for _, d := range doc.Donations {
		p.Donations = append(p.Donations, page.DonationOption{Title: d.Title, Summary: d.Summary, Detail: d.Detail, Anchor: d.Anchor})
	}
	for _, c := range doc.Needs.Categories {
		cat := page.NeedsCategory{Name: c.Name, Critical: c.Critical}
		for _, it := range c.Items {
			cat.Items = append(cat.Items, page.NeedItem{Name: it.Name, Detail: it.Detail, Priority: it.Priority, Rejected: it.Rejected})
		}
		p.Needs.Categories = append(p.Needs.Categories, cat)
	}
	for _, s := range doc.Courier.Steps {
		p.Courier.Steps = append(p.Courier.Steps, page.CourierStep{Title: s.Title, Detail: s.Detail, Copy: strings.TrimSpace(s.Copy)})
	}
	for _, fb := range doc.Finance {
		opt := page.FinancialOption{Label: fb.Label, Recipient: fb.Recipient, VerifyURL: fb.VerifyURL}
		for _, a := range fb.Accounts {
			acct := page.BankAccount{Currency: a.Currency}
			for _, f := range a.Fields {
				acct.Fields = append(acct.Fields, page.AccountField{Label: f.Label, Value: f.Value, Copyable: f.Copy})
			}
			opt.Accounts = append(opt.Accounts, acct)
		}
		p.Finance = append(p.Finance, opt)
	}
	for _, q := range doc.FAQ {
		p.FAQ = append(p.FAQ, page.FAQEntry{Question: q.Question, Answer: q.Answer})
	}
	for _, l := range doc.Footer.Sources {
		p.Footer.Sources = append(p.Footer.Sources, page.Link{Label: l.Label, URL: l.URL})
	}

	if doc.Gallery != nil {
		items := make([]gallery.ImageItem, 0, len(doc.Gallery.Images))
		for _, img := range doc.Gallery.Images {
			items = append(items, gallery.ImageItem{Source: img.Src, AltText: img.Alt})
		}
		catalog, err := gallery.NewCatalog(items...)
		if err != nil {
			return nil, page.NewDomainError(page.ErrCodeValidation, "gallery has no images", err, map[string]interface{}{"section": "gallery"})
		}
		p.Gallery = &page.GallerySection{Title: doc.Gallery.Title, Subtitle: doc.Gallery.Subtitle, Catalog: catalog}
	}
	if doc.Video != nil {
		p.Video = &page.VideoPanel{Title: doc.Video.Title, URL: doc.Video.URL}
	}
	if doc.Wishlist != nil {
		p.Wishlist = &page.WishlistPanel{Title: doc.Wishlist.Title, Body: doc.Wishlist.Body, URL: doc.Wishlist.URL}
	}

	return p, nil
}

func trimmedLines(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
