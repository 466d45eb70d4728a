package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfgpkg "github.com/alexisbeaulieu97/reliefpage/internal/config"
	"github.com/alexisbeaulieu97/reliefpage/internal/domain/gallery"
	"github.com/alexisbeaulieu97/reliefpage/internal/domain/page"
	"github.com/alexisbeaulieu97/reliefpage/internal/infrastructure/logging"
)

const minimalDocument = `version: "1.0"
title: "Test Relief"
organisation:
  name: "Test Org"
  phone: "011 222 3333"
hero:
  headline: "Help now"
donations:
  - title: "Drop-Off"
gallery:
  images:
    - src: a.jpg
      alt: First
    - src: b.jpg
      alt: Second
`

func writeContent(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestYAMLLoaderLoadsDefaultPage(t *testing.T) {
	loader := NewYAMLLoader(logging.NewNoOpLogger())

	p, err := loader.Load(context.Background(), "")
	require.NoError(t, err)

	require.True(t, p.HasGallery())
	assert.Equal(t, 7, p.Gallery.Catalog.Len())
	assert.Equal(t, "/images/csr/csr-1.jpg", p.Gallery.Catalog.At(0).Source)
	assert.Equal(t, "Previous Mission Group Photo", p.Gallery.Catalog.At(6).AltText)
	assert.Equal(t, "W.I.S Accountancy", p.Org.Name)
	assert.Len(t, p.Donations, 3)
	assert.True(t, p.Widgets.Counter)
	assert.NotEmpty(t, p.CopyTargets())
}

func TestYAMLLoaderLoadsFile(t *testing.T) {
	path := writeContent(t, "page.yaml", minimalDocument)
	loader := NewYAMLLoader(nil)

	p, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Test Relief", p.Title)
	assert.Equal(t, 2, p.Gallery.Catalog.Len())
}

func TestYAMLLoaderMissingFile(t *testing.T) {
	loader := NewYAMLLoader(nil)

	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, page.ErrCodeNotFound, page.CodeOf(err))
}

func TestYAMLLoaderSyntaxError(t *testing.T) {
	path := writeContent(t, "broken.yaml", "title: [unterminated\n")
	loader := NewYAMLLoader(nil)

	_, err := loader.Load(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, page.ErrCodeValidation, page.CodeOf(err))
}

func TestYAMLLoaderEmptyGalleryRejected(t *testing.T) {
	body := `version: "1.0"
title: "Test"
organisation:
  name: "Org"
hero:
  headline: "Help"
donations:
  - title: "Drop-Off"
gallery:
  images: []
`
	path := writeContent(t, "empty.yaml", body)
	loader := NewYAMLLoader(nil)

	_, err := loader.Load(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, page.ErrCodeValidation, page.CodeOf(err))
}

func TestYAMLLoaderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewYAMLLoader(nil).Load(ctx, "")
	require.Error(t, err)
	assert.Equal(t, page.ErrCodeCancelled, page.CodeOf(err))
}

func TestYAMLLoaderValidate(t *testing.T) {
	loader := NewYAMLLoader(nil)
	ctx := context.Background()

	require.NoError(t, loader.Validate(ctx, ""))
	require.NoError(t, loader.Validate(ctx, writeContent(t, "ok.yml", minimalDocument)))

	err := loader.Validate(ctx, t.TempDir())
	assert.Equal(t, page.ErrCodeValidation, page.CodeOf(err))

	err = loader.Validate(ctx, writeContent(t, "page.json", "{}"))
	assert.Equal(t, page.ErrCodeValidation, page.CodeOf(err))

	err = loader.Validate(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, page.ErrCodeNotFound, page.CodeOf(err))
}

func TestMapToDomain(t *testing.T) {
	doc := &cfgpkg.Document{
		Version: "1.0",
		Title:   "Relief",
		Urgency: "  river rising  ",
		Org:     cfgpkg.Organisation{Name: "Org", Phone: "076 880 2085", WhatsApp: "https://wa.me/1"},
		Hero:    cfgpkg.Hero{Headline: "Help"},
		Donations: []cfgpkg.DonationOption{
			{Title: "Drop-Off", Anchor: "location"},
		},
		Courier: cfgpkg.Courier{Steps: []cfgpkg.CourierStep{{Title: "Destination", Copy: " Colombo 06 "}}},
		Location: cfgpkg.Location{
			Address: []string{" Line 1 ", "", "Line 2"},
		},
		Finance: []cfgpkg.FinancialBlock{{
			Label:     "Option A",
			Recipient: "Red Cross",
			Accounts: []cfgpkg.BankAccount{{
				Fields: []cfgpkg.AccountField{{Label: "Swift", Value: "BSAMLKLX", Copy: true}},
			}},
		}},
		Gallery: &cfgpkg.Gallery{
			Title:  "Legacy",
			Images: []cfgpkg.Image{{Src: "a.jpg", Alt: "A"}},
		},
		Video:   &cfgpkg.Video{URL: "https://example.com/v"},
		Widgets: cfgpkg.Widgets{Counter: true, Video: true},
	}

	got, err := MapToDomain(doc)
	require.NoError(t, err)

	want := &page.Page{
		Title:     "Relief",
		Urgency:   "river rising",
		Org:       page.Organisation{Name: "Org", Phone: "076 880 2085", WhatsAppLink: "https://wa.me/1"},
		Hero:      page.Hero{Headline: "Help"},
		Donations: []page.DonationOption{{Title: "Drop-Off", Anchor: "location"}},
		Courier:   page.Courier{Steps: []page.CourierStep{{Title: "Destination", Copy: "Colombo 06"}}},
		Location:  page.Location{Address: []string{"Line 1", "Line 2"}},
		Finance: []page.FinancialOption{{
			Label:     "Option A",
			Recipient: "Red Cross",
			Accounts: []page.BankAccount{{
				Fields: []page.AccountField{{Label: "Swift", Value: "BSAMLKLX", Copyable: true}},
			}},
		}},
		Gallery: &page.GallerySection{
			Title:   "Legacy",
			Catalog: gallery.MustCatalog(gallery.ImageItem{Source: "a.jpg", AltText: "A"}),
		},
		Video:   &page.VideoPanel{URL: "https://example.com/v"},
		Widgets: page.Widgets{Counter: true, Video: true},
	}

	if diff := cmp.Diff(want, got, cmp.AllowUnexported(gallery.Catalog{})); diff != "" {
		t.Fatalf("MapToDomain mismatch (-want +got):\n%s", diff)
	}
}

func TestMapToDomainNil(t *testing.T) {
	_, err := MapToDomain(nil)
	require.Error(t, err)
	assert.Equal(t, page.ErrCodeValidation, page.CodeOf(err))
}
