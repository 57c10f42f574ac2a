package http

import (
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var (
	reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)
	reZip   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()
	// report json names; structs without json tags keep the Go field name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// public ids = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return reHex32.MatchString(fl.Field().String())
	})
	// max 2 decimal places
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})

	// max 3 decimal places (interest rate, APR)
	_ = v.RegisterValidation("dec3", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*1000)/1000)) < 1e-9
	})
	// US ZIP or ZIP+4
	_ = v.RegisterValidation("zip5", func(fl validator.FieldLevel) bool {
		return reZip.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hex32":
			out = append(out, FieldError{Field: field, Message: "must be 32-char lowercase hex"})
		case "dec2":
			out = append(out, FieldError{Field: field, Message: "must have at most 2 decimal places"})
		case "dec3":
			out = append(out, FieldError{Field: field, Message: "must have at most 3 decimal places"})
		case "zip5":
			out = append(out, FieldError{Field: field, Message: "must be a 5-digit ZIP or ZIP+4"})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of [" + e.Param() + "]"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " long"})
		case "url":
			out = append(out, FieldError{Field: field, Message: "must be a valid URL"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
