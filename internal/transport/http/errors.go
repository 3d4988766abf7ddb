package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed    = "method_not_allowed"
	codeNotFound            = "not_found"
	codeInvalidRequestBody  = "invalid_request_body"
	codeValidationFailed    = "validation_failed"
	codeInvalidID           = "invalid_id"
	codeEventNotFound       = "event_not_found"
	codeTierNotFound        = "tier_not_found"
	codeTierUnavailable     = "tier_unavailable"
	codeUnknownCategory     = "unknown_category"
	codeUnknownDay          = "unknown_day"
	codeIdempotencyConflict = "idempotency_conflict"
	codeForbidden           = "forbidden"
	codeInternalError       = "internal_error"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeErrorResponse(w, status, errorResponse{Error: msg, Code: code})
}

// writeFieldErrors reports a failed form validation with one message per field.
func writeFieldErrors(w http.ResponseWriter, fields map[string]string) {
	writeErrorResponse(w, http.StatusUnprocessableEntity, errorResponse{
		Error:  "validation failed",
		Code:   codeValidationFailed,
		Fields: fields,
	})
}

func writeErrorResponse(w http.ResponseWriter, status int, resp errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(resp)
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
