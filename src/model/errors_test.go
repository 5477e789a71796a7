package model

import (
	"fmt"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeBadRequest, 400},
		{ErrCodeValidation, 400},
		{ErrCodeNotFound, 404},
		{ErrCodeEngineNotFound, 404},
		{ErrCodeNoQuery, 422},
		{ErrCodeMethodNotAllowed, 405},
		{ErrCodeInternal, 500},
		{ErrCodeUnavailable, 503},
		{"UNKNOWN_CODE", 500}, // Should default to 500
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := HTTPStatusCode(tt.code)
			if got != tt.status {
				t.Errorf("HTTPStatusCode(%q) = %d, want %d", tt.code, got, tt.status)
			}
		})
	}
}

func TestErrorCodeFromHTTP(t *testing.T) {
	tests := []struct {
		status int
		code   string
	}{
		{400, ErrCodeBadRequest},
		{404, ErrCodeNotFound},
		{405, ErrCodeMethodNotAllowed},
		{422, ErrCodeNoQuery},
		{500, ErrCodeInternal},
		{503, ErrCodeUnavailable},
		{418, ErrCodeBadRequest}, // Unknown 4xx defaults to BAD_REQUEST
		{502, ErrCodeInternal},   // Unknown 5xx defaults to SERVER_ERROR
		{200, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			got := ErrorCodeFromHTTP(tt.status)
			if got != tt.code {
				t.Errorf("ErrorCodeFromHTTP(%d) = %q, want %q", tt.status, got, tt.code)
			}
		})
	}
}

func TestCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrEngineNotFound, ErrCodeEngineNotFound},
		{fmt.Errorf("convert: %w", ErrEngineNotFound), ErrCodeEngineNotFound},
		{fmt.Errorf("convert: %w", ErrNoQuery), ErrCodeNoQuery},
		{ErrEmptyQuery, ErrCodeValidation},
		{ErrInvalidURL, ErrCodeValidation},
		{ErrInvalidItem, ErrCodeValidation},
		{ErrNotFound, ErrCodeNotFound},
		{ErrStoreDisabled, ErrCodeUnavailable},
		{ErrInvalidConfig, ErrCodeBadRequest},
		{fmt.Errorf("boom"), ErrCodeInternal},
	}

	for _, tt := range tests {
		if got := CodeFor(tt.err); got != tt.want {
			t.Errorf("CodeFor(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestErrorCodesMapped(t *testing.T) {
	codes := []string{
		ErrCodeBadRequest,
		ErrCodeValidation,
		ErrCodeNotFound,
		ErrCodeEngineNotFound,
		ErrCodeNoQuery,
		ErrCodeMethodNotAllowed,
		ErrCodeInternal,
		ErrCodeUnavailable,
	}

	for _, code := range codes {
		if _, ok := ErrorCodeToHTTP[code]; !ok {
			t.Errorf("ErrorCodeToHTTP missing mapping for %q", code)
		}
	}
}
