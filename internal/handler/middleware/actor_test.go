//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestActor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		header  string
		want    string
		wantCtx string
	}{
		{name: "header is trimmed", header: "  warehouse-bot ", want: "warehouse-bot", wantCtx: "warehouse-bot"},
		{name: "missing header falls back to system in audit", header: "", want: "", wantCtx: audit.SystemActor},
		{name: "long header is truncated", header: strings.Repeat("a", 200), want: strings.Repeat("a", 128), wantCtx: strings.Repeat("a", 128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromCtx, fromGin string
			r := gin.New()
			r.Use(middleware.Actor())
			r.GET("/", func(c *gin.Context) {
				fromCtx = audit.ActorFrom(c.Request.Context())
				fromGin = middleware.GetActor(c)
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(middleware.ActorHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.wantCtx, fromCtx)
			assert.Equal(t, tt.want, fromGin)
		})
	}
}
