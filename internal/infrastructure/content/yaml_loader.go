package content

import (
	"context"
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"sort"

	cfgpkg "github.com/alexisbeaulieu97/reliefpage/internal/config"
	"github.com/alexisbeaulieu97/reliefpage/internal/domain/page"
	"github.com/alexisbeaulieu97/reliefpage/internal/ports"
	relieferrors "github.com/alexisbeaulieu97/reliefpage/pkg/errors"
)

// DefaultSource names the built-in page in logs and errors.
const DefaultSource = "<default>"

//go:embed default.yaml
var defaultDocument []byte

// YAMLLoader implements ports.ContentLoader for YAML files. An empty path
// loads the embedded default page.
type YAMLLoader struct {
	logger ports.Logger
}

// NewYAMLLoader returns a loader that logs through logger (may be nil).
func NewYAMLLoader(logger ports.Logger) *YAMLLoader {
	return &YAMLLoader{logger: logger}
}

// Load implements ports.ContentLoader.
func (l *YAMLLoader) Load(ctx context.Context, path string) (*page.Page, error) {
	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	source := path
	if source == "" {
		source = DefaultSource
	}
	l.logDebug(ctx, "loading page content", map[string]interface{}{"path": source})

	var (
		doc *cfgpkg.Document
		err error
	)
	if path == "" {
		doc, err = cfgpkg.ParseBytes(DefaultSource, defaultDocument)
	} else {
		doc, err = cfgpkg.ParseDocument(path)
	}
	if err != nil {
		l.logError(ctx, "failed to parse page content", err, map[string]interface{}{"path": source})
		return nil, convertError(err, source)
	}

	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	p, err := MapToDomain(doc)
	if err != nil {
		l.logError(ctx, "page content failed domain mapping", err, map[string]interface{}{"path": source})
		return nil, err
	}
	if err := p.Validate(); err != nil {
		l.logError(ctx, "page content failed domain validation", err, map[string]interface{}{"path": source})
		return nil, err
	}

	images := 0
	if p.HasGallery() {
		images = p.Gallery.Catalog.Len()
	}
	l.logInfo(ctx, "page content loaded", map[string]interface{}{"path": source, "images": images})
	return p, nil
}

// Validate implements ports.ContentLoader.
func (l *YAMLLoader) Validate(ctx context.Context, path string) error {
	if err := contextCheck(ctx); err != nil {
		return err
	}
	if path == "" {
		_, err := l.Load(ctx, path)
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		l.logError(ctx, "content path stat failed", err, map[string]interface{}{"path": path})
		return convertError(err, path)
	}
	if info.IsDir() {
		return page.NewDomainError(page.ErrCodeValidation, "content path is a directory", nil, map[string]interface{}{"path": path})
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		_, err = l.Load(ctx, path)
	default:
		err = page.NewDomainError(page.ErrCodeValidation, "unsupported content file extension", nil, map[string]interface{}{"path": path, "extension": ext})
	}
	return err
}

var _ ports.ContentLoader = (*YAMLLoader)(nil)

func convertError(err error, path string) error {
	if err == nil {
		return nil
	}
	var parseErr *relieferrors.ParseError
	if errors.As(err, &parseErr) {
		if errors.Is(parseErr.Err, os.ErrNotExist) {
			return page.NewDomainError(page.ErrCodeNotFound, "content not found", parseErr.Err, map[string]interface{}{"path": path})
		}
		return page.NewDomainError(page.ErrCodeValidation, "invalid content syntax", err, map[string]interface{}{"path": parseErr.Path, "line": parseErr.Line})
	}
	var valErr *relieferrors.ValidationError
	if errors.As(err, &valErr) {
		ctx := map[string]interface{}{"path": path}
		if valErr.Field != "" {
			ctx["field"] = valErr.Field
		}
		return page.NewDomainError(page.ErrCodeValidation, valErr.Message, valErr.Err, ctx)
	}
	if errors.Is(err, os.ErrNotExist) {
		return page.NewDomainError(page.ErrCodeNotFound, "content not found", err, map[string]interface{}{"path": path})
	}
	return page.NewDomainError(page.ErrCodeInternal, "content load failed", err, map[string]interface{}{"path": path})
}

func contextCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return page.NewDomainError(page.ErrCodeCancelled, "operation cancelled", err, nil)
	}
	return nil
}

func (l *YAMLLoader) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	l.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
