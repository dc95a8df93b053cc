package api

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/ridloal/product-api/internal/product/domain"
)

const (
	errTypeJSONInvalid = "json_invalid"
	errTypeIntParsing  = "int_parsing"
)

// bindError turns a JSON decoding failure into the same structured shape
// used for field validation, so clients only handle one 422 format.
func bindError(err error) *domain.ValidationError {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.Is(err, io.EOF):
		return singleError([]string{"body"}, "Field required", domain.ErrTypeMissing)
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return singleError([]string{"body"},
				"Input should be a valid dictionary or object to extract fields from", "model_attributes_type")
		}
		loc := append([]string{"body"}, strings.Split(typeErr.Field, ".")...)
		switch typeErr.Type.Kind() {
		case reflect.String:
			return singleError(loc, "Input should be a valid string", domain.ErrTypeString)
		case reflect.Float32, reflect.Float64:
			return singleError(loc, "Input should be a valid number", domain.ErrTypeFloat)
		default:
			return singleError(loc, "Input should be a valid "+typeErr.Type.String(), "type_error")
		}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return singleError([]string{"body"}, "JSON decode error", errTypeJSONInvalid)
	default:
		return singleError([]string{"body"}, err.Error(), errTypeJSONInvalid)
	}
}

func invalidIDError(param string) *domain.ValidationError {
	return singleError([]string{"path", param},
		"Input should be a valid integer, unable to parse string as an integer", errTypeIntParsing)
}

func singleError(loc []string, msg, typ string) *domain.ValidationError {
	return &domain.ValidationError{Errors: []domain.FieldError{{Loc: loc, Msg: msg, Type: typ}}}
}
