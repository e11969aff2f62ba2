package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	LocationPath  = "path"
	LocationQuery = "query"
	LocationBody  = "body"
)

const (
	TypeMissing     = "missing"
	TypeJSONInvalid = "json_invalid"
	TypeIntParsing  = "int_parsing"
	TypeValueError  = "value_error"

	TypeFloatType    = "float_type"
	TypeFloatParsing = "float_parsing"
	TypeBoolType     = "bool_type"
	TypeBoolParsing  = "bool_parsing"
)

var registerOnce sync.Once

// UseJSONFieldNames makes gin's validator report fields by their json, uri or
// form tag instead of the Go field name. Safe to call more than once.
func UseJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(tagName)
	})
}

func tagName(fld reflect.StructField) string {
	for _, key := range []string{"json", "uri", "form"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// IntParsing reports a value at loc that is not an integer.
func IntParsing(location, field, value string) *HTTPError {
	return NewValidationError(FieldError{
		Location: []string{location, field},
		Message:  fmt.Sprintf("Input should be a valid integer, unable to parse string as an integer: %q", value),
		Type:     TypeIntParsing,
	})
}

// FromBindError converts an error from gin's ShouldBind* family into a 422.
// location is where the bound values came from (path, query or body).
func FromBindError(location string, err error) *HTTPError {
	if err == nil {
		return nil
	}

	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fromFieldError(location, fe))
		}
		return NewValidationError(details...)
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		loc := []string{location}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		typ := kindType(typeErr.Type)
		// A string that reached a number or bool field failed to parse.
		if typeErr.Value == "string" {
			switch typ {
			case TypeFloatType:
				typ = TypeFloatParsing
			case TypeBoolType:
				typ = TypeBoolParsing
			}
		}
		return NewValidationError(FieldError{
			Location: loc,
			Message:  typeMessage(typ),
			Type:     typ,
		})
	}

	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) || stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return NewValidationError(FieldError{
			Location: []string{location},
			Message:  "JSON decode error",
			Type:     TypeJSONInvalid,
		})
	}

	return NewValidationError(FieldError{
		Location: []string{location},
		Message:  err.Error(),
		Type:     TypeValueError,
	})
}

func fromFieldError(location string, fe validator.FieldError) FieldError {
	loc := []string{location}
	// Namespace is "updateReq.price"; drop the struct name.
	if parts := strings.Split(fe.Namespace(), "."); len(parts) > 1 {
		loc = append(loc, parts[1:]...)
	} else {
		loc = append(loc, fe.Field())
	}

	if fe.Tag() == "required" {
		return FieldError{Location: loc, Message: "Field required", Type: TypeMissing}
	}
	return FieldError{
		Location: loc,
		Message:  fmt.Sprintf("Input failed on the '%s' rule", fe.Tag()),
		Type:     fe.Tag(),
	}
}

func kindType(t reflect.Type) string {
	if t == nil {
		return TypeValueError
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return TypeFloatType
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int_type"
	case reflect.String:
		return "string_type"
	case reflect.Bool:
		return TypeBoolType
	default:
		return TypeValueError
	}
}

func typeMessage(typ string) string {
	switch typ {
	case TypeFloatType:
		return "Input should be a valid number"
	case TypeFloatParsing:
		return "Input should be a valid number, unable to parse string as a number"
	case "int_type":
		return "Input should be a valid integer"
	case "string_type":
		return "Input should be a valid string"
	case TypeBoolType:
		return "Input should be a valid boolean"
	case TypeBoolParsing:
		return "Input should be a valid boolean, unable to interpret input"
	default:
		return "Input has an invalid type"
	}
}
