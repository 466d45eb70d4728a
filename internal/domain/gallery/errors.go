package gallery

import "errors"

var (
	// ErrEmptyCatalog is returned when a catalog or controller would be built
	// without any images.
	ErrEmptyCatalog = errors.New("gallery: catalog must contain at least one image")

	// ErrMissingCapability is returned when a controller is constructed
	// without a scroll lock or key subscriber.
	ErrMissingCapability = errors.New("gallery: scroll lock and key subscriber are required")
)
