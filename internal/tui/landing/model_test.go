package landing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/page"
	"github.com/alexisbeaulieu97/reliefpage/internal/infrastructure/clipboard"
)

func TestNewRequiresClipboard(t *testing.T) {
	_, err := New(testPage(), Options{})
	assert.ErrorIs(t, err, ErrNoClipboard)
}

func TestNewRejectsInvalidPage(t *testing.T) {
	p := testPage()
	p.Donations = nil

	_, err := New(p, Options{Clipboard: clipboard.NewMemory()})
	require.Error(t, err)
	assert.Equal(t, page.ErrCodeMissing, page.CodeOf(err))
}

func TestNewStartsClosed(t *testing.T) {
	m, _ := newTestModel(t, testPage(), Options{})

	require.NotNil(t, m.Controller())
	assert.False(t, m.Controller().IsOpen())
	assert.Equal(t, 0, m.Controller().State().CurrentIndex)
	assert.True(t, m.ScrollEnabled())
	assert.Equal(t, ModeBrowse, m.Mode())
}

func TestNewWithoutGallery(t *testing.T) {
	p := testPage()
	p.Gallery = nil
	m, _ := newTestModel(t, p, Options{})

	assert.Nil(t, m.Controller())
	_, ok := m.Anchor(AnchorGallery)
	assert.False(t, ok)

	m, _ = press(t, m, "1")
	assert.Nil(t, m.Controller())
	m, _ = press(t, m, "g")
	assert.Equal(t, ModeBrowse, m.Mode())
}

func TestCopyTargetsFollowPageOrder(t *testing.T) {
	m, _ := newTestModel(t, testPage(), Options{})

	targets := m.CopyTargets()
	require.Len(t, targets, 3)
	assert.Equal(t, page.OrgAddressTargetID, targets[0].ID)
	assert.Equal(t, page.OrgPhoneTargetID, targets[1].ID)
	assert.Equal(t, page.StepTargetID(0), targets[2].ID)

	next, ok := m.NextCopyTarget()
	require.True(t, ok)
	assert.Equal(t, targets[0], next)
}

func TestInitStartsCounterWhenEnabled(t *testing.T) {
	p := testPage()
	m, _ := newTestModel(t, p, Options{})
	assert.Nil(t, m.Init())
	assert.True(t, m.CountersDone())

	p = testPage()
	p.Widgets.Counter = true
	m, _ = newTestModel(t, p, Options{})
	assert.NotNil(t, m.Init())
	assert.False(t, m.CountersDone())
}

func TestTeardownReleasesLightbox(t *testing.T) {
	m, _ := newTestModel(t, testPage(), Options{})
	m, _ = press(t, m, "4")
	require.True(t, m.Controller().IsOpen())
	require.False(t, m.ScrollEnabled())

	m.Teardown()

	assert.False(t, m.Controller().IsOpen())
	assert.True(t, m.ScrollEnabled())
}
