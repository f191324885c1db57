// Package snippet manages a personal library of code snippets persisted as a
// JSON array under a single key of a ports.KVStore.
package snippet

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	deverrors "github.com/alexisbeaulieu97/devkit/pkg/errors"
)

// Category groups snippets in the library.
type Category string

const (
	CategoryReactHooks Category = "React Hooks"
	CategoryUtility    Category = "Utility Functions"
	CategoryComponents Category = "Components"
	CategoryCSS        Category = "CSS"
	CategoryTypeScript Category = "TypeScript"
	CategoryOther      Category = "Other"

	// CategoryAll is the filter sentinel matching every category.
	CategoryAll Category = "all"
)

// Categories lists the selectable categories in display order.
var Categories = []Category{
	CategoryReactHooks,
	CategoryUtility,
	CategoryComponents,
	CategoryCSS,
	CategoryTypeScript,
	CategoryOther,
}

// categoryAliases maps labels written by older versions of the library.
var categoryAliases = map[string]Category{
	"outros": CategoryOther,
}

// Canonical resolves a legacy label such as "Outros" to its category.
func (c Category) Canonical() Category {
	if alias, ok := categoryAliases[strings.ToLower(string(c))]; ok {
		return alias
	}
	return c
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory accepts a category name in any case, or its slug
// ("react-hooks"). "all" yields CategoryAll.
func ParseCategory(name string) (Category, error) {
	trimmed := strings.TrimSpace(name)
	if strings.EqualFold(trimmed, string(CategoryAll)) {
		return CategoryAll, nil
	}

	for _, c := range Categories {
		if strings.EqualFold(trimmed, string(c)) || strings.EqualFold(trimmed, c.Slug()) {
			return c, nil
		}
	}
	if c := Category(trimmed).Canonical(); c.Valid() {
		return c, nil
	}
	return "", deverrors.NewValidationError("category",
		fmt.Sprintf("unknown category %q", trimmed), nil)
}

// Slug is the lower-case, dash-separated form used on the command line.
func (c Category) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), " ", "-")
}

// Snippet is one stored entry. The JSON shape is the persisted format.
type Snippet struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Code        string    `json:"code" yaml:"code"`
	Category    Category  `json:"category" yaml:"category"`
	Tags        []string  `json:"tags" yaml:"tags"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

// Draft is the user input for a new snippet.
type Draft struct {
	Title       string   `validate:"notblank"`
	Description string
	Code        string   `validate:"notblank"`
	Category    Category `validate:"category"`
	Tags        []string
}

// ParseTags splits "a, b,,c" into ["a" "b" "c"]. The result is never nil.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return Category(fl.Field().String()).Valid()
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks the draft and returns a *errors.ValidationError naming the
// first offending field.
func (d Draft) Validate() error {
	err := validatorInstance().Struct(d)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		field := strings.ToLower(ves[0].Field())
		var msg string
		switch ves[0].Tag() {
		case "notblank":
			msg = field + " is required"
		case "category":
			msg = fmt.Sprintf("unknown category %q", ves[0].Value())
		default:
			msg = fmt.Sprintf("%s failed validation for tag '%s'", field, ves[0].Tag())
		}
		return deverrors.NewValidationError(field, msg, err)
	}
	return deverrors.NewValidationError("snippet", err.Error(), err)
}
