package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		write      func(c *gin.Context)
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "bad") }, http.StatusBadRequest, CodeInvalidRequest, "bad"},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "login") }, http.StatusUnauthorized, CodeUnauthorized, "login"},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "no") }, http.StatusForbidden, CodeForbidden, "no"},
		{"not found", func(c *gin.Context) { NotFound(c, "gone") }, http.StatusNotFound, CodeNotFound, "gone"},
		{"conflict", func(c *gin.Context) { Conflict(c, "dup") }, http.StatusConflict, CodeConflict, "dup"},
		{"internal", Internal, http.StatusInternalServerError, CodeInternal, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.write(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.True(t, c.IsAborted())
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
			assert.Nil(t, resp.Errors)
		})
	}
}

func TestValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Validation(c, "register", []string{"Username: Username is required", "Passwords do not match"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "register", c.GetString(ValidationFormKey))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodeValidationFailed, resp.Error.Code)
	assert.Equal(t, []string{"Username: Username is required", "Passwords do not match"}, resp.Errors)
}
