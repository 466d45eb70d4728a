package gallery

// ImageItem is a single displayable gallery entry.
type ImageItem struct {
	Source  string
	AltText string
}

// Catalog is an immutable, ordered sequence of images. The zero value is an
// empty catalog and cannot back a Controller.
type Catalog struct {
	items []ImageItem
}

// NewCatalog copies items into a new Catalog. An empty input is a
// precondition violation.
func NewCatalog(items ...ImageItem) (Catalog, error) {
	if len(items) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}
	owned := make([]ImageItem, len(items))
	copy(owned, items)
	return Catalog{items: owned}, nil
}

// MustCatalog is NewCatalog for literals known to be non-empty.
func MustCatalog(items ...ImageItem) Catalog {
	c, err := NewCatalog(items...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of images.
func (c Catalog) Len() int {
	return len(c.items)
}

// At returns the image at index i. It panics when i is out of range.
func (c Catalog) At(i int) ImageItem {
	return c.items[i]
}

// Items returns a copy of the catalog contents.
func (c Catalog) Items() []ImageItem {
	out := make([]ImageItem, len(c.items))
	copy(out, c.items)
	return out
}
