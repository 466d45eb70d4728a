package config

import (
	"net/url"
	"path"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	phonePattern  = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,}[0-9]$`)
	imageExts     = map[string]struct{}{".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {}, ".avif": {}}
)

// validatorInstance configures and returns the shared validator used across
// the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("http_url", func(fl validator.FieldLevel) bool {
			return isHTTPURL(fl.Field().String())
		})

		_ = v.RegisterValidation("image_source", func(fl validator.FieldLevel) bool {
			return isImageSource(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func isHTTPURL(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

// isImageSource accepts http(s) URLs and rooted or relative paths with an
// image extension.
func isImageSource(raw string) bool {
	if strings.TrimSpace(raw) == "" || strings.Contains(raw, "\x00") {
		return false
	}
	p := raw
	if isHTTPURL(raw) {
		u, _ := url.Parse(raw)
		p = u.Path
	}
	_, ok := imageExts[strings.ToLower(path.Ext(p))]
	return ok
}
