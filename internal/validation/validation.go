package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lshigami/selfcheck/internal/model"
	"github.com/lshigami/selfcheck/internal/scoring"
)

// Register adds the domain tags test_category, question_type and user_role to v.
func Register(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"test_category": func(fl validator.FieldLevel) bool {
			return model.TestCategory(fl.Field().String()).Valid()
		},
		"question_type": func(fl validator.FieldLevel) bool {
			return scoring.QuestionType(fl.Field().String()).Valid()
		},
		"user_role": func(fl validator.FieldLevel) bool {
			return model.Role(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// New returns a standalone validator with the domain tags. Error namespaces
// use yaml field names, since its callers validate seed files.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	if err := Register(v); err != nil {
		panic(err)
	}
	return v
}
