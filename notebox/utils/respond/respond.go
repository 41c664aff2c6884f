package respond

import (
	"encoding/json"
	"net/http"
)

const (
	CodeValidationError   = "VALIDATION_ERROR"
	CodeBusinessRuleError = "BUSINESS_RULE_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)

type Response struct {
	Code   string      `json:"code,omitempty"`
	Error  string      `json:"error,omitempty"`
	Fields []string    `json:"fields,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

func write(w http.ResponseWriter, status int, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// Success responses
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, &Response{Data: data})
}

func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, &Response{Data: data})
}

// Error responses
func ValidationError(w http.ResponseWriter, fields []string) {
	write(w, http.StatusBadRequest, &Response{
		Code:   CodeValidationError,
		Error:  "invalid request",
		Fields: fields,
	})
}

func BusinessRuleError(w http.ResponseWriter, message string) {
	write(w, http.StatusBadRequest, &Response{
		Code:  CodeBusinessRuleError,
		Error: message,
	})
}

func NotFound(w http.ResponseWriter, message string) {
	write(w, http.StatusNotFound, &Response{
		Code:  CodeNotFound,
		Error: message,
	})
}

func InternalError(w http.ResponseWriter) {
	write(w, http.StatusInternalServerError, &Response{
		Code:  CodeInternalError,
		Error: "internal server error",
	})
}
