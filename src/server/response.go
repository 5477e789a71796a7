package server

import (
	"encoding/json"
	"net/http"

	"github.com/apimgr/searchconv/src/model"
)

// API version
const (
	APIVersion = "v1"
	APIPrefix  = "/api/v1"
)

// APIResponse is the base response structure
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
	Meta    *APIMeta  `json:"meta,omitempty"`
}

// APIError represents an API error
type APIError struct {
	Code    string `json:"code"`    // model.ErrCode*
	Status  int    `json:"status"`  // HTTP status code
	Message string `json:"message"` // user-facing message
}

// APIMeta contains response metadata
type APIMeta struct {
	RequestID string `json:"request_id,omitempty"`
	Version   string `json:"version"`
}

func meta(r *http.Request) *APIMeta {
	return &APIMeta{RequestID: r.Header.Get(RequestIDHeader), Version: APIVersion}
}

func writeJSON(w http.ResponseWriter, status int, resp *APIResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(resp)
}

func respond(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, http.StatusOK, &APIResponse{Success: true, Data: data, Meta: meta(r)})
}

// fail writes an error envelope with the status mapped from code.
func fail(w http.ResponseWriter, r *http.Request, code, message string) {
	status := model.HTTPStatusCode(code)
	writeJSON(w, status, &APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Status: status, Message: message},
		Meta:    meta(r),
	})
}

// failErr maps err to an error code. Internal errors hide their message.
func failErr(w http.ResponseWriter, r *http.Request, err error) {
	code := model.CodeFor(err)
	msg := err.Error()
	if code == model.ErrCodeInternal {
		msg = "internal server error"
	}
	fail(w, r, code, msg)
}

// allow reports whether r uses one of methods, writing a 405 otherwise.
func allow(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m || (m == http.MethodGet && r.Method == http.MethodHead) {
			return true
		}
	}
	for _, m := range methods {
		w.Header().Add("Allow", m)
	}
	fail(w, r, model.ErrCodeMethodNotAllowed, "method "+r.Method+" not allowed")
	return false
}
