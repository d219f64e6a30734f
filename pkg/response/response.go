package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the uniform error envelope. Detail is usually a message
// string; validation failures put a field→message map there instead.
type ErrorBody struct {
	Detail interface{} `json:"detail"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func Error(w http.ResponseWriter, statusCode int, detail interface{}) {
	JSON(w, statusCode, ErrorBody{Detail: detail})
}

func BadRequest(w http.ResponseWriter, detail interface{}) {
	Error(w, http.StatusBadRequest, detail)
}

func ValidationError(w http.ResponseWriter, fieldErrors interface{}) {
	Error(w, http.StatusBadRequest, fieldErrors)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "authentication required"
	}
	Error(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "forbidden"
	}
	Error(w, http.StatusForbidden, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "not found"
	}
	Error(w, http.StatusNotFound, message)
}

// InternalServerError hides internals behind a generic message; the real
// error is expected to have been logged by the caller.
func InternalServerError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Internal server error.")
}
