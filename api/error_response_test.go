package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/require"
)

func TestExtractErrorFields_NonValidationError(t *testing.T) {
	fields := ExtractErrorFields(errors.New("not a validation error"))
	require.Empty(t, fields)
}

func TestExtractErrorFields(t *testing.T) {
	err := binding.Validator.ValidateStruct(MarkupRequest{})
	require.Error(t, err)

	fields := ExtractErrorFields(err)
	require.Equal(t, []ErrorField{{FieldName: "text", ErrorMessage: "this field is required"}}, fields)

	text := ""
	require.NoError(t, binding.Validator.ValidateStruct(MarkupRequest{Text: &text}))
}

func TestExtractErrorFields_UnknownTag(t *testing.T) {
	type request struct {
		Digest string `json:"digest" binding:"hexadecimal"`
	}

	err := binding.Validator.ValidateStruct(request{Digest: "xyz"})
	require.Error(t, err)

	fields := ExtractErrorFields(err)
	require.Equal(t, []ErrorField{{FieldName: "digest", ErrorMessage: "invalid input"}}, fields)
}

func TestValidationErrorResponse(t *testing.T) {
	testCases := []struct {
		name   string
		url    string
		body   string
		fields []ErrorField
	}{
		{
			name:   "ParseEmptyObject",
			url:    ParseURL,
			body:   `{}`,
			fields: []ErrorField{{"text", "this field is required"}},
		},
		{
			name:   "ParseNullText",
			url:    ParseURL,
			body:   `{"text":null}`,
			fields: []ErrorField{{"text", "this field is required"}},
		},
		{
			name:   "TokenizeEmptyObject",
			url:    TokenizeURL,
			body:   `{}`,
			fields: []ErrorField{{"text", "this field is required"}},
		},
		{
			// not a validation error, so there are no fields
			name: "ParseWrongType",
			url:  ParseURL,
			body: `{"text":1}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := newTestService(t, nil)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodPost, tc.url, strings.NewReader(tc.body))
			require.NoError(t, err)
			request.Header.Set("Content-Type", "application/json")

			service.router.ServeHTTP(recorder, request)
			require.Equal(t, http.StatusBadRequest, recorder.Code)

			res, err := extractErrorFromBuffer(recorder.Body)
			require.NoError(t, err)
			require.Equal(t, ErrInvalidParams.Error(), res.Error)
			require.Equal(t, tc.fields, res.Fields)
		})
	}
}

func TestExtractErrorFromBuffer(t *testing.T) {
	exp := ErrorResponse{
		Error: "invalid digest",
		Fields: []ErrorField{
			{FieldName: "digest", ErrorMessage: "digest [x] is invalid"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(exp))

	got, err := extractErrorFromBuffer(&buf)
	require.NoError(t, err)
	require.Equal(t, exp, *got)
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrInputTooLarge)
	require.Equal(t, "input is too large", resp.Error)
	require.Empty(t, resp.Fields)

	field := ErrorField{FieldName: "digest", ErrorMessage: "digest [x] is invalid"}
	resp = NewErrorResponse(ErrInvalidDigest, field)
	require.Equal(t, []ErrorField{field}, resp.Fields)

	out, err := json.Marshal(NewErrorResponse(ErrInvalidParams))
	require.NoError(t, err)
	require.JSONEq(t, `{"error":"invalid params"}`, string(out))
}
