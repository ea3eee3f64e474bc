package article

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CreateRequest is the text part of the add-news multipart form.
type CreateRequest struct {
	Title       string `json:"title" validate:"required,max=512"`
	Content     string `json:"content" validate:"required"`
	Author      string `json:"author" validate:"required,max=256"`
	Category    string `json:"category" validate:"required,max=64"`
	AddToSlider string `json:"addToSlider" validate:"omitempty,oneof=true false 1 0 on off"`
}

// Slider reports the parsed addToSlider value. Call after validation.
func (r CreateRequest) Slider() bool {
	switch r.AddToSlider {
	case "true", "1", "on":
		return true
	default:
		return false
	}
}

// UpdateRequest is the update-news JSON body. Absent fields are left
// unchanged; present fields must not be empty.
type UpdateRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=512"`
	Content     *string `json:"content" validate:"omitnil,min=1"`
	Author      *string `json:"author" validate:"omitnil,min=1,max=256"`
	Category    *string `json:"category" validate:"omitnil,min=1,max=64"`
	AddToSlider *bool   `json:"addToSlider"`
}

// Details maps a field name to what is wrong with it.
type Details map[string]string

// schemaError is a request that failed its input schema.
type schemaError struct {
	details Details
}

func (e *schemaError) Error() string {
	parts := make([]string, 0, len(e.details))
	for field, msg := range e.details {
		parts = append(parts, field+": "+msg)
	}
	return "schema violation: " + strings.Join(parts, ", ")
}

func fieldError(field, msg string) *schemaError {
	return &schemaError{details: Details{field: msg}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkSchema validates req against its struct tags.
func checkSchema(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	details := make(Details, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = describe(fe)
	}
	return &schemaError{details: details}
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fe.Param() == "1" {
			return field + " must not be empty"
		}
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// decodeUpdate reads an UpdateRequest, rejecting unknown fields. An empty
// body is an empty update.
func decodeUpdate(body io.Reader) (UpdateRequest, error) {
	var req UpdateRequest
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
			return req, fieldError(strings.Trim(field, `"`), "is not allowed")
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return req, fieldError(typeErr.Field, "must be a "+typeErr.Type.String())
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return req, fieldError("body", fmt.Sprintf("must not exceed %d bytes", maxErr.Limit))
		}
		return req, fieldError("body", "must be a JSON object")
	}
	if dec.More() {
		return req, fieldError("body", "must contain a single JSON object")
	}
	return req, checkSchema(req)
}
