package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

// An explicit {"page": 0} must bind cleanly so the handler's range check
// rejects it as out-of-range rather than the binder calling it missing.
func TestUpdateProgressRequestBindsExplicitZero(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/v1/books/b1/progress",
		strings.NewReader(`{"page": 0}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req models.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		t.Fatalf("explicit zero page failed binding: %v", err)
	}
	if req.Page != 0 {
		t.Errorf("page = %d, want 0", req.Page)
	}
}

func TestUpdateProgressRequestRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/v1/books/b1/progress",
		strings.NewReader(`{"page": "three"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req models.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		t.Fatal("non-numeric page bound without error")
	}
}
