package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal/models"
)

func TestGetStatusCode(t *testing.T) {
	h := NewHTTPHelper()

	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{models.NewValidationError("bad"), http.StatusBadRequest},
		{models.NewConflictError("taken"), http.StatusBadRequest},
		{models.NewNotFoundError("gone"), http.StatusNotFound},
		{models.NewUnauthorizedError("who"), http.StatusUnauthorized},
		{models.NewForbiddenError("no"), http.StatusForbidden},
		{fmt.Errorf("wrapped: %w", models.NewNotFoundError("gone")), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, h.GetStatusCode(tt.err), "%v", tt.err)
	}
}

func serve(t *testing.T, handler gin.HandlerFunc, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x/:id", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/x/7", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestSendErrorHidesInternalErrors(t *testing.T) {
	h := NewHTTPHelper()

	w, body := serve(t, func(c *gin.Context) { h.SendError(c, errors.New("pq: connection refused")) }, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]interface{}{"error": "Internal server error"}, body)

	w, body = serve(t, func(c *gin.Context) { h.SendError(c, models.NewConflictError("slug taken")) }, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "slug taken", body["error"])
}

func TestSendBindErrorTranslates(t *testing.T) {
	h := NewHTTPHelper()

	handler := func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.SendBindError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}

	w, body := serve(t, handler, `{"email":"not-an-email","password":"123","name":"A"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	msg, _ := body["error"].(string)
	assert.Contains(t, msg, "email must be a valid email address")
	assert.Contains(t, msg, "password must be at least 6 characters")

	w, body = serve(t, handler, `{"email":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "Invalid request")
}

func TestParseID(t *testing.T) {
	h := NewHTTPHelper()
	var got uint
	serve(t, func(c *gin.Context) {
		id, err := h.ParseID(c, "id")
		require.NoError(t, err)
		got = id
	}, "")
	assert.EqualValues(t, 7, got)

	w, _ := serve(t, func(c *gin.Context) {
		if _, err := h.ParseID(c, "missing"); err != nil {
			h.SendError(c, err)
		}
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePaging(t *testing.T) {
	h := NewHTTPHelper()
	assert.Equal(t, models.Pagination{Page: 2, Limit: 10, Total: 21, TotalPages: 3}, h.GeneratePaging(2, 10, 21))
	assert.Equal(t, models.Pagination{Page: 1, Limit: 10, Total: 0, TotalPages: 0}, h.GeneratePaging(1, 10, 0))
}
