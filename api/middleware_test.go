package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Drolfothesgnir/wikitext/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(requestIDMiddleware())

	var seen string
	r.GET("/", func(ctx *gin.Context) {
		seen = extractRequestIDFromCtx(ctx)
		ctx.Status(http.StatusOK)
	})

	t.Run("Generated", func(t *testing.T) {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		require.Equal(t, seen, resp.Header().Get(RequestIDHeader))
	})

	t.Run("Provided", func(t *testing.T) {
		id := uuid.NewString()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, id)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		require.Equal(t, id, seen)
		require.Equal(t, id, resp.Header().Get(RequestIDHeader))
	})

	t.Run("Garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "<script>")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		require.NotEqual(t, "<script>", seen)
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
	})
}

func TestBodyLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(bodyLimitMiddleware(8))

	called := false
	r.POST("/", func(ctx *gin.Context) {
		called = true
		ctx.Status(http.StatusOK)
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))

	require.False(t, called)
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)

	called = false
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("01234567")))

	require.True(t, called)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestCorsMiddleware(t *testing.T) {
	testCases := []struct {
		name       string
		allowed    []string
		origin     string
		wantOrigin string
	}{
		{"AllowedOrigin", []string{"http://a.com"}, "http://a.com", "http://a.com"},
		{"ForeignOrigin", []string{"http://a.com"}, "http://b.com", ""},
		{"Wildcard", []string{"*"}, "http://b.com", "*"},
		{"NoOrigin", []string{"http://a.com"}, "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Service{config: util.Config{AllowedOrigins: tc.allowed}}

			r := gin.New()
			r.Use(s.corsMiddleware())
			r.GET("/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)

			require.Equal(t, http.StatusOK, resp.Code)
			require.Equal(t, tc.wantOrigin, resp.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCorsMiddleware_Preflight(t *testing.T) {
	service := newTestService(t, nil)

	req := httptest.NewRequest(http.MethodOptions, ParseURL, nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp := httptest.NewRecorder()

	service.router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNoContent, resp.Code)
	require.Equal(t, "http://localhost:3000", resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestPing(t *testing.T) {
	service := newTestService(t, nil)
	resp := httptest.NewRecorder()

	service.router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, PingURL, nil))

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "pong", resp.Body.String())
	require.NotEmpty(t, resp.Header().Get(RequestIDHeader))
}

func TestNewService_InvalidAddress(t *testing.T) {
	config := testConfig
	config.HTTPServerAddress = "not a url"

	_, err := NewService(config, nil)
	require.Error(t, err)
}
