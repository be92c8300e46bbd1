package validator

import (
	"reflect"
	"strings"

	"github.com/SAP-F-2025/kumi-math-service/internal/learningpath"
	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator with the service's custom tags
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new validator instance
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{structValidator: structValidator}
}

// ValidateStruct validates struct tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// Validate validates s and converts failures into ValidationErrors.
func (v *Validator) Validate(s interface{}) error {
	if err := v.ValidateStruct(s); err != nil {
		if errs := ToValidationErrors(err); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

// Engine exposes the underlying validator, e.g. to plug into gin's binding.
func (v *Validator) Engine() *validator.Validate {
	return v.structValidator
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("concept_id", validateConceptID)
	validate.RegisterValidation("activity_id", validateActivityID)

	// Report json names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateConceptID(fl validator.FieldLevel) bool {
	return mastery.ConceptID(fl.Field().String()).Valid()
}

func validateActivityID(fl validator.FieldLevel) bool {
	_, ok := learningpath.FindActivity(learningpath.DefaultActivities(), fl.Field().String())
	return ok
}
