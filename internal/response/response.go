// Package response writes the JSON error envelope shared by all handlers.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeInternal         = "INTERNAL_ERROR"
)

// ValidationFormKey is the context key naming the form that failed validation.
const ValidationFormKey = "validation_form"

// ErrorBody is the error object of the envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope. Errors lists validation violations.
type ErrorResponse struct {
	Error  ErrorBody `json:"error"`
	Errors []string  `json:"errors,omitempty"`
}

// Error writes an error envelope and aborts the handler chain.
func Error(c *gin.Context, code string, message string, statusCode int) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// BadRequest writes a 400 INVALID_REQUEST response.
func BadRequest(c *gin.Context, message string) {
	Error(c, CodeInvalidRequest, message, http.StatusBadRequest)
}

// Unauthorized writes a 401 UNAUTHORIZED response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, CodeUnauthorized, message, http.StatusUnauthorized)
}

// Forbidden writes a 403 FORBIDDEN response.
func Forbidden(c *gin.Context, message string) {
	Error(c, CodeForbidden, message, http.StatusForbidden)
}

// NotFound writes a 404 NOT_FOUND response.
func NotFound(c *gin.Context, message string) {
	Error(c, CodeNotFound, message, http.StatusNotFound)
}

// Conflict writes a 409 CONFLICT response.
func Conflict(c *gin.Context, message string) {
	Error(c, CodeConflict, message, http.StatusConflict)
}

// Internal writes a 500 response without details.
func Internal(c *gin.Context) {
	Error(c, CodeInternal, "internal server error", http.StatusInternalServerError)
}

// Validation writes a 422 response listing every violation of form.
func Validation(c *gin.Context, form string, violations []string) {
	c.Set(ValidationFormKey, form)
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:  ErrorBody{Code: CodeValidationFailed, Message: "please correct the errors below"},
		Errors: violations,
	})
}
