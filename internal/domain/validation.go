package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single violated field constraint
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError enumerates every violated field constraint of a candidate
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns the error recorded for the named field, if any
func (e *ValidationError) Field(name string) (FieldError, bool) {
	for _, f := range e.Fields {
		if f.Field == name {
			return f, true
		}
	}
	return FieldError{}, false
}

// Validator checks a candidate against the fund schema. A non-nil result is a *ValidationError.
type Validator interface {
	Validate(c Candidate) error
}

// fieldMessages maps field -> failed rule -> message shown next to the input
var fieldMessages = map[string]map[string]string{
	"name": {
		"required": "Fund name is required",
	},
	"manager": {
		"required": "Manager name is required",
	},
	"year": {
		"required": "Launch year is required",
		"posint":   "Launch year must be a positive integer",
	},
	"type": {
		"required": "Fund type is required",
		"fundtype": "Fund type must be one of Venture Capital, Real Estate, Hedge Fund",
	},
}

// SchemaValidator validates candidates with the struct tags declared on Candidate
type SchemaValidator struct {
	validate *validator.Validate
}

// NewSchemaValidator creates a validator with the fund schema rules registered
func NewSchemaValidator() *SchemaValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their form names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("posint", func(fl validator.FieldLevel) bool {
		_, ok := YearInput(fl.Field().String()).Int()
		return ok
	})
	_ = v.RegisterValidation("fundtype", func(fl validator.FieldLevel) bool {
		return FundType(fl.Field().String()).Valid()
	})

	return &SchemaValidator{validate: v}
}

// Validate returns nil for a valid candidate, or a *ValidationError listing every violation
func (s *SchemaValidator) Validate(c Candidate) error {
	err := s.validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate candidate: %w", err)
	}

	result := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		result.Fields = append(result.Fields, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe.Field(), fe.Tag()),
		})
	}
	return result
}

func messageFor(field, tag string) string {
	if msg, ok := fieldMessages[field][tag]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", field)
}
