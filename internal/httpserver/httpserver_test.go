package httpserver

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "item-api/docs"
	"item-api/pkg/log"
	"item-api/pkg/metrics"
	"item-api/pkg/tracing"
)

func newTestServer(t *testing.T, mutate ...func(*Config)) *HTTPServer {
	t.Helper()
	cfg := Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		Metrics:     metrics.NewManager(),
	}
	for _, m := range mutate {
		m(&cfg)
	}
	srv, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	return srv
}

func serve(srv *HTTPServer, method, target, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validate(t *testing.T) {
	_, err := New(nil, Config{Port: 8080, Mode: gin.TestMode})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Mode: gin.TestMode})
	assert.Error(t, err)
}

func TestRecovery(t *testing.T) {
	srv := newTestServer(t)
	srv.gin.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := serve(srv, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error_code":500,"message":"Something went wrong"}`, w.Body.String())

	// The engine keeps serving after a recovered panic.
	w = serve(srv, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteTable(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode int
		wantBody string
	}{
		{"root", http.MethodGet, "/", "", http.StatusOK, `{"Hello":"World"}`},
		{"read without q", http.MethodGet, "/items/5", "", http.StatusOK, `{"item_id":5,"q":null}`},
		{"read with q", http.MethodGet, "/items/5?q=somequery", "", http.StatusOK, `{"item_id":5,"q":"somequery"}`},
		{"read with repeated q", http.MethodGet, "/items/5?q=a&q=b", "", http.StatusOK, `{"item_id":5,"q":"b"}`},
		{"update with string price", http.MethodPut, "/items/5", `{"name":"Widget","price":"9.99","is_offer":"true"}`, http.StatusOK, `{"item_name":"Widget","item_id":5}`},
		{"update", http.MethodPut, "/items/5", `{"name":"Widget","price":9.99}`, http.StatusOK, `{"item_name":"Widget","item_id":5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(srv, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouteTable_ReadAnyInteger(t *testing.T) {
	srv := newTestServer(t)

	for _, n := range []int64{-1000, -1, 0, 1, 42, 1 << 40} {
		w := serve(srv, http.MethodGet, fmt.Sprintf("/items/%d", n), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, fmt.Sprintf(`{"item_id":%d,"q":null}`, n), w.Body.String())
	}
}

func TestRouteTable_ClientErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode int
	}{
		{"non integer id", http.MethodGet, "/items/abc", "", http.StatusUnprocessableEntity},
		{"missing price", http.MethodPut, "/items/5", `{"name":"Widget"}`, http.StatusUnprocessableEntity},
		{"unknown route", http.MethodGet, "/nope", "", http.StatusNotFound},
		{"wrong method", http.MethodPost, "/items/5", `{}`, http.StatusMethodNotAllowed},
		{"delete not supported", http.MethodDelete, "/items/5", "", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(srv, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), fmt.Sprintf(`"error_code":%d`, tt.wantCode))
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := serve(srv, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"service":"item-api"`)
		})
	}

	t.Run("/metrics", func(t *testing.T) {
		serve(srv, http.MethodGet, "/items/1", "")
		w := serve(srv, http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `route="/items/:item_id"`)
	})

	t.Run("/docs", func(t *testing.T) {
		w := serve(srv, http.MethodGet, "/docs", "")
		assert.Equal(t, http.StatusMovedPermanently, w.Code)
		assert.Equal(t, "/swagger/index.html", w.Header().Get("Location"))
	})

	t.Run("/swagger/doc.json", func(t *testing.T) {
		w := serve(srv, http.MethodGet, "/swagger/doc.json", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/items/{item_id}")
	})
}

func TestMetricsDisabled(t *testing.T) {
	srv := newTestServer(t, func(c *Config) { c.Metrics = nil })

	w := serve(srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, func(c *Config) { c.AllowedOrigins = []string{"https://app.example"} })

	req := httptest.NewRequest(http.MethodOptions, "/items/5", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimited(t *testing.T) {
	srv := newTestServer(t, func(c *Config) { c.RateLimitPerMin = 1 })

	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(srv, http.MethodGet, "/", "").Code)
}

func TestTracingEnabled(t *testing.T) {
	var buf strings.Builder
	tp, err := tracing.New(tracing.Config{Enabled: true, ServiceName: ServiceName, Writer: &buf})
	require.NoError(t, err)

	srv := newTestServer(t, func(c *Config) { c.Tracing = tp })
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/items/3", "").Code)

	require.NoError(t, tp.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), "/items/:item_id")
}

func TestServe_GracefulShutdown(t *testing.T) {
	srv := newTestServer(t, func(c *Config) { c.ShutdownTimeout = time.Second })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/"
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(url)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, `{"Hello":"World"}`, string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
