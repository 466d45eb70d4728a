package config

import (
	"fmt"
	"strings"

	relieferrors "github.com/alexisbeaulieu97/reliefpage/pkg/errors"
)

// ValidateDocument performs schema and cross-field validation.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return relieferrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	if doc.Widgets.Video && doc.Video == nil {
		return relieferrors.NewValidationError("widgets.video", "video widget enabled without a video section", nil)
	}
	if doc.Widgets.Wishlist && doc.Wishlist == nil {
		return relieferrors.NewValidationError("widgets.wishlist", "wishlist widget enabled without a wishlist section", nil)
	}

	for i, step := range doc.Courier.Steps {
		if step.Copy != "" && strings.TrimSpace(step.Copy) == "" {
			return relieferrors.NewValidationError(fmt.Sprintf("courier.steps[%d].copy", i), "copy value is blank", nil)
		}
	}

	return nil
}
