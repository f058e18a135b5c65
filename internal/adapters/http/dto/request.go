package dto

import (
	"regexp"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
)

const (
	maxSlugLength     = 200
	maxLanguageLength = 16
	maxCategoryLength = 64

	msgSlugFormat     = "must contain only letters, digits and hyphens"
	msgLanguageFormat = "must be a language tag such as en or zh-Hant"
	msgTooLong        = "is too long"
)

var (
	slugPattern     = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*$`)
	languagePattern = regexp.MustCompile(`^[A-Za-z]{2,3}(-[A-Za-z0-9]{1,8})*$`)
)

// LanguageParams carries the {lang} path segment of every API route.
// Unsupported but well-formed tags are accepted and fall back to English
// in the service.
type LanguageParams struct {
	Language string
}

// Validate checks the language path segment.
func (p LanguageParams) Validate() error {
	fields := make(map[string]string)
	validateLanguage(fields, p.Language)
	return toError(fields)
}

// SlugParams carries the {lang} and {slug} path segments.
type SlugParams struct {
	Language string
	Slug     string
}

// Validate checks both path segments.
func (p SlugParams) Validate() error {
	fields := make(map[string]string)
	validateLanguage(fields, p.Language)
	switch {
	case p.Slug == "":
		fields["path.slug"] = domain.MsgRequired
	case len(p.Slug) > maxSlugLength:
		fields["path.slug"] = msgTooLong
	case !slugPattern.MatchString(p.Slug):
		fields["path.slug"] = msgSlugFormat
	}
	return toError(fields)
}

// CategoryQuery carries the {lang} path segment and the ?type= filter of the
// POI listing.
type CategoryQuery struct {
	Language string
	Type     string
}

// Validate checks the language and that a category was given.
func (q CategoryQuery) Validate() error {
	fields := make(map[string]string)
	validateLanguage(fields, q.Language)
	switch {
	case q.Type == "":
		fields["query.type"] = domain.MsgRequired
	case len(q.Type) > maxCategoryLength:
		fields["query.type"] = msgTooLong
	}
	return toError(fields)
}

func validateLanguage(fields map[string]string, lang string) {
	switch {
	case lang == "":
		fields["path.lang"] = domain.MsgRequired
	case len(lang) > maxLanguageLength:
		fields["path.lang"] = msgTooLong
	case !languagePattern.MatchString(lang):
		fields["path.lang"] = msgLanguageFormat
	}
}

func toError(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
