package page

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/gallery"
)

func minimalPage() *Page {
	return &Page{
		Org:       Organisation{Name: "W.I.S Accountancy", Phone: "076 880 2085", Address: "Bernards Business Park"},
		Hero:      Hero{Headline: "Cyclone Ditwah Has Left Sri Lanka"},
		Donations: []DonationOption{{Title: "Drop-Off Point"}},
	}
}

func TestValidateAcceptsMinimalPage(t *testing.T) {
	require.NoError(t, minimalPage().Validate())
}

func TestValidateReportsMissingSections(t *testing.T) {
	cases := map[string]func(p *Page){
		"organisation": func(p *Page) { p.Org.Name = " " },
		"hero":         func(p *Page) { p.Hero.Headline = "" },
		"donations":    func(p *Page) { p.Donations = nil },
		"video":        func(p *Page) { p.Widgets.Video = true },
		"wishlist":     func(p *Page) { p.Widgets.Wishlist = true },
	}

	for section, mutate := range cases {
		p := minimalPage()
		mutate(p)
		err := p.Validate()
		require.Error(t, err, section)
		require.Equal(t, ErrCodeMissing, CodeOf(err), section)

		var de *DomainError
		require.ErrorAs(t, err, &de)
		require.Equal(t, section, de.Context["section"])
	}
}

func TestValidateRejectsEmptyGallery(t *testing.T) {
	p := minimalPage()
	p.Gallery = &GallerySection{Title: "A Legacy of Care"}

	err := p.Validate()
	require.ErrorIs(t, err, gallery.ErrEmptyCatalog)
	require.Equal(t, ErrCodeValidation, CodeOf(err))
	require.False(t, p.HasGallery())
}

func TestHasGallery(t *testing.T) {
	p := minimalPage()
	require.False(t, p.HasGallery())

	p.Gallery = &GallerySection{Catalog: gallery.MustCatalog(gallery.ImageItem{Source: "a.jpg"})}
	require.True(t, p.HasGallery())
}

func TestCopyTargetsInReadingOrder(t *testing.T) {
	p := minimalPage()
	p.Courier.Steps = []CourierStep{
		{Title: "Select Package Mode"},
		{Title: "Enter Destination", Copy: "Bernards Business Park, Colombo 06"},
	}
	p.Finance = []FinancialOption{{
		Label: "Option A",
		Accounts: []BankAccount{{Fields: []AccountField{
			{Label: "Bank", Value: "Sampath Bank"},
			{Label: "Account No", Value: "0929 1000 0286", Copyable: true},
		}}},
	}, {
		Label: "Option B",
		Accounts: []BankAccount{{Currency: "USD", Fields: []AccountField{
			{Label: "SWIFT", Value: "BKTRUS33XXX", Copyable: true},
		}}},
	}}

	targets := p.CopyTargets()
	require.Len(t, targets, 5)
	require.Equal(t, "org.address", targets[0].ID)
	require.Equal(t, "org.phone", targets[1].ID)
	require.Equal(t, "courier.steps[1]", targets[2].ID)
	require.Equal(t, "Option A: Account No", targets[3].Label)
	require.Equal(t, "0929 1000 0286", targets[3].Value)
	require.Equal(t, "Option B: USD SWIFT", targets[4].Label)
	require.Equal(t, "finance[1].accounts[0].fields[0]", targets[4].ID)
}

func TestDialNumber(t *testing.T) {
	require.Equal(t, "0768802085", DialNumber("076 880 2085"))
}

func TestDomainErrorIs(t *testing.T) {
	err := missingSection("hero")
	require.ErrorIs(t, err, &DomainError{Code: ErrCodeMissing, Message: "required section missing"})
	require.Equal(t, ErrorCode(""), CodeOf(nil))
}
