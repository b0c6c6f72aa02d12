package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ctxWithQuery(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, 20, 0},
		{"explicit", "page=3&limit=10", 3, 10, 20},
		{"zero page falls back", "page=0&limit=10", 1, 10, 0},
		{"negative limit falls back", "page=2&limit=-5", 2, 20, 20},
		{"limit capped", "page=1&limit=500", 1, 100, 0},
		{"garbage values fall back", "page=abc&limit=xyz", 1, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(ctxWithQuery(t, tt.query))
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}
