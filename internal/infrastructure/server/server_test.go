package server

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/banger/internal/application/usecase"
	"github.com/bnema/banger/internal/domain/engine"
	"github.com/bnema/banger/internal/infrastructure/network"
)

func newResolver(t *testing.T, ssid string) *usecase.ResolveQueryUseCase {
	t.Helper()
	uc, err := usecase.NewResolveQueryUseCase(
		engine.DefaultRegistry(),
		network.StaticProvider{SSID: ssid},
		usecase.DefaultResolverPolicy(),
	)
	require.NoError(t, err)
	return uc
}

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	if opts.StaticDir == "" {
		opts.StaticDir = t.TempDir()
	}
	return New(newResolver(t, ""), opts, zerolog.Nop())
}

func do(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSearchRedirects(t *testing.T) {
	srv := newTestServer(t, Options{})

	tests := []struct {
		name     string
		target   string
		location string
	}{
		{
			name:     "plain query uses default engine",
			target:   "/search?q=rust+lifetimes",
			location: "https://duckduckgo.com/?q=rust%20lifetimes",
		},
		{
			name:     "registered bang",
			target:   "/search?q=" + "%21w%20Alan%20Turing",
			location: "https://en.wikipedia.org/w/index.php?title=Special:Search&search=Alan%20Turing",
		},
		{
			name:     "unknown bang keeps full query",
			target:   "/search?q=%21zz%20hello",
			location: "https://duckduckgo.com/?q=%21zz%20hello",
		},
		{
			name:     "bare bang falls back",
			target:   "/search?q=%21g",
			location: "https://duckduckgo.com/?q=%21g",
		},
		{
			name:     "empty query",
			target:   "/search?q=",
			location: "https://duckduckgo.com/?q=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv.Handler(), tt.target)
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

func TestSuggestRedirects(t *testing.T) {
	srv := newTestServer(t, Options{})

	rec := do(t, srv.Handler(), "/suggest?q=%21g%20golang")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://duckduckgo.com/ac/?q=%21g%20golang&type=list", rec.Header().Get("Location"))

	rec = do(t, srv.Handler(), "/suggest?q=golang")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://duckduckgo.com/ac/?q=golang&type=list", rec.Header().Get("Location"))
}

func TestMissingQueryParameter(t *testing.T) {
	srv := newTestServer(t, Options{})

	for _, path := range []string{"/search", "/suggest", "/search?query=x"} {
		rec := do(t, srv.Handler(), path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestTrustedNetworkDefault(t *testing.T) {
	srv := New(newResolver(t, "BVSD-Staff"), Options{StaticDir: t.TempDir()}, zerolog.Nop())

	rec := do(t, srv.Handler(), "/search?q=weather")
	assert.Equal(t, "https://www.google.com/search?hl=en&q=weather", rec.Header().Get("Location"))
}

func TestSetResolver(t *testing.T) {
	srv := newTestServer(t, Options{})
	srv.SetResolver(newResolver(t, "BVSD"))

	rec := do(t, srv.Handler(), "/search?q=x")
	assert.Equal(t, "https://www.google.com/search?hl=en&q=x", rec.Header().Get("Location"))
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>banger</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "opensearch.xml"), []byte("<OpenSearchDescription/>"), 0o644))

	srv := newTestServer(t, Options{StaticDir: dir})

	rec := do(t, srv.Handler(), "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html>banger</html>", rec.Body.String())
	assert.Equal(t, htmlContentType, rec.Header().Get("Content-Type"))

	rec = do(t, srv.Handler(), "/opensearch.xml")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<OpenSearchDescription/>", rec.Body.String())
	assert.Equal(t, openSearchContentType, rec.Header().Get("Content-Type"))
}

func TestStaticFilesMissing(t *testing.T) {
	srv := newTestServer(t, Options{})

	assert.Equal(t, http.StatusNotFound, do(t, srv.Handler(), "/").Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv.Handler(), "/opensearch.xml").Code)
}

func TestUnknownPath(t *testing.T) {
	srv := newTestServer(t, Options{})

	assert.Equal(t, http.StatusNotFound, do(t, srv.Handler(), "/index.html").Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv.Handler(), "/nope").Code)
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(t, Options{RequestsPerSecond: 0.001, Burst: 2})

	assert.Equal(t, http.StatusSeeOther, do(t, srv.Handler(), "/search?q=a").Code)
	assert.Equal(t, http.StatusSeeOther, do(t, srv.Handler(), "/search?q=b").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, srv.Handler(), "/search?q=c").Code)
}

func TestRequestIDAndAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	srv := New(newResolver(t, ""), Options{StaticDir: t.TempDir()}, logger)

	rec := do(t, srv.Handler(), "/search?q=secret+words")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	out := buf.String()
	assert.Contains(t, out, `"path":"/search"`)
	assert.Contains(t, out, `"status":303`)
	assert.Contains(t, out, `"req_id"`)
	assert.NotContains(t, out, "secret")
}

func TestServeAndShutdown(t *testing.T) {
	srv := newTestServer(t, Options{ShutdownTimeout: time.Second})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, listener) }()

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	resp, err := client.Get("http://" + listener.Addr().String() + "/search?q=%21crates%20serde")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "https://crates.io/search?q=serde", resp.Header.Get("Location"))
	assert.Equal(t, listener.Addr().String(), srv.BoundAddr())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
