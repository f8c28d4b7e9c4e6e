//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"pricewatch/internal/handler/middleware"
	"pricewatch/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewCORSMiddleware(t *testing.T) {
	base := config.CORSConfig{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	tests := []struct {
		name            string
		origins         []string
		requestOrigin   string
		wantAllowOrigin string
		wantCredentials string
	}{
		{
			name:            "listed origin is echoed with credentials",
			origins:         []string{"http://localhost:3000"},
			requestOrigin:   "http://localhost:3000",
			wantAllowOrigin: "http://localhost:3000",
			wantCredentials: "true",
		},
		{
			name:            "unlisted origin gets no grant",
			origins:         []string{"http://localhost:3000"},
			requestOrigin:   "https://evil.example",
			wantAllowOrigin: "",
		},
		{
			name:            "wildcard allows any origin without credentials",
			origins:         []string{"*"},
			requestOrigin:   "https://shop.example",
			wantAllowOrigin: "*",
			wantCredentials: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			cfg := base
			cfg.AllowOrigins = tt.origins

			r := gin.New()
			r.Use(middleware.NewCORSMiddleware(cfg))
			r.GET("/api/leaderboard", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := nethttptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
			req.Header.Set("Origin", tt.requestOrigin)
			w := nethttptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantAllowOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCredentials, w.Header().Get("Access-Control-Allow-Credentials"))
			if tt.wantAllowOrigin != "" {
				assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
			}
		})
	}
}
