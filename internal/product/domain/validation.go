package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error types reported in FieldError.Type.
const (
	ErrTypeMissing        = "missing"
	ErrTypeStringTooShort = "string_too_short"
	ErrTypeGreaterThan    = "greater_than"
	ErrTypeValue          = "value_error"
	ErrTypeString         = "string_type"
	ErrTypeFloat          = "float_type"
)

// FieldError describes one rejected input location, e.g. loc ["body", "name"].
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError carries every field violation found in a single input.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(fe.Loc, "."), fe.Msg))
	}
	return fmt.Sprintf("%d validation error(s): %s", len(e.Errors), strings.Join(parts, "; "))
}

// Fields returns the names of the rejected fields, in report order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.Loc[len(fe.Loc)-1])
	}
	return fields
}

// AsValidationError returns err as a *ValidationError, wrapping any other
// error as a single body-level value error.
func AsValidationError(err error) *ValidationError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return &ValidationError{Errors: []FieldError{{Loc: []string{"body"}, Msg: err.Error(), Type: ErrTypeValue}}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names ("name") instead of Go field names ("Name").
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// NewProductCreate validates req and returns the accepted input. On failure
// the error is always a *ValidationError listing all violations, not just
// the first.
func NewProductCreate(req CreateProductRequest) (ProductCreate, error) {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return ProductCreate{}, AsValidationError(fmt.Errorf("validate product: %w", err))
		}
		out := &ValidationError{Errors: make([]FieldError, 0, len(verrs))}
		for _, fe := range verrs {
			if fe.Tag() == "required" && req.nulls[fe.Field()] {
				out.Errors = append(out.Errors, nullError(fe))
				continue
			}
			out.Errors = append(out.Errors, translate(fe))
		}
		return ProductCreate{}, out
	}
	return ProductCreate{Name: *req.Name, Price: *req.Price}, nil
}

func translate(fe validator.FieldError) FieldError {
	loc := []string{"body", fe.Field()}
	switch fe.Tag() {
	case "required":
		return FieldError{Loc: loc, Msg: "Field required", Type: ErrTypeMissing}
	case "min":
		unit := "characters"
		if fe.Param() == "1" {
			unit = "character"
		}
		return FieldError{
			Loc:  loc,
			Msg:  fmt.Sprintf("String should have at least %s %s", fe.Param(), unit),
			Type: ErrTypeStringTooShort,
		}
	case "gt":
		return FieldError{
			Loc:  loc,
			Msg:  fmt.Sprintf("Input should be greater than %s", fe.Param()),
			Type: ErrTypeGreaterThan,
		}
	default:
		return FieldError{Loc: loc, Msg: fe.Error(), Type: ErrTypeValue}
	}
}

// nullError reports a field sent as null with the type error its kind expects.
func nullError(fe validator.FieldError) FieldError {
	loc := []string{"body", fe.Field()}
	typ := fe.Type()
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	switch typ.Kind() {
	case reflect.String:
		return FieldError{Loc: loc, Msg: "Input should be a valid string", Type: ErrTypeString}
	case reflect.Float32, reflect.Float64:
		return FieldError{Loc: loc, Msg: "Input should be a valid number", Type: ErrTypeFloat}
	default:
		return FieldError{Loc: loc, Msg: "Input should not be null", Type: ErrTypeValue}
	}
}
