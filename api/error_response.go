package api

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrorField describes a problem with a single request field.
type ErrorField struct {
	FieldName    string `json:"field_name"`
	ErrorMessage string `json:"error_message"`
}

type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []ErrorField `json:"fields,omitempty"`
}

func NewErrorResponse(err error, fields ...ErrorField) ErrorResponse {
	return ErrorResponse{Error: err.Error(), Fields: fields}
}

// tagMessages maps the validation tags used by the request types to their messages.
var tagMessages = map[string]string{
	"required": "this field is required",
}

// ExtractErrorFields converts validation errors into human-readable field errors.
// It returns nil for any other error.
func ExtractErrorFields(err error) []ErrorField {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make([]ErrorField, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msg, ok := tagMessages[fe.Tag()]
		if !ok {
			msg = "invalid input"
		}
		fields = append(fields, ErrorField{FieldName: fe.Field(), ErrorMessage: msg})
	}

	return fields
}

func extractErrorFromBuffer(buf *bytes.Buffer) (*ErrorResponse, error) {
	var resp ErrorResponse
	if err := json.NewDecoder(buf).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
