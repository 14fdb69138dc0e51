package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/taupy/internal/infrastructure/config"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/logging"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/taupy/internal/shared/paths"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>TauPy</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets", "app.js"), []byte("console.log('hi')"), 0o644))
	return root
}

func newTestServer(t *testing.T, root string, metrics *monitoring.Metrics) *Server {
	t.Helper()
	return New(Config{Root: root, Host: "127.0.0.1", Port: 0, Debug: true}, logging.NewNop(), metrics)
}

func get(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestServeIndexForRoot(t *testing.T) {
	srv := newTestServer(t, setupRoot(t), nil)

	for _, target := range []string{"/", "/index.html"} {
		w := get(t, srv.Handler(), http.MethodGet, target)
		assert.Equal(t, http.StatusOK, w.Code, target)
		assert.Equal(t, "<h1>TauPy</h1>", w.Body.String(), target)
	}
}

func TestServeNestedFile(t *testing.T) {
	srv := newTestServer(t, setupRoot(t), nil)

	w := get(t, srv.Handler(), http.MethodGet, "/assets/app.js")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log('hi')", w.Body.String())
	assert.Equal(t, "17", w.Header().Get("Content-Length"))
}

func TestServeIgnoresQueryString(t *testing.T) {
	srv := newTestServer(t, setupRoot(t), nil)

	w := get(t, srv.Handler(), http.MethodGet, "/assets/app.js?v=3")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServeNotFound(t *testing.T) {
	srv := newTestServer(t, setupRoot(t), nil)

	for _, target := range []string{"/missing.css", "/assets", "/assets/", "/../index.html"} {
		w := get(t, srv.Handler(), http.MethodGet, target)
		assert.Equal(t, http.StatusNotFound, w.Code, target)
		assert.Empty(t, w.Body.String(), target)
	}
}

func TestServeOtherMethodsNotFound(t *testing.T) {
	srv := newTestServer(t, setupRoot(t), nil)

	w := get(t, srv.Handler(), http.MethodPost, "/index.html")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestServeHead(t *testing.T) {
	srv := newTestServer(t, setupRoot(t), nil)

	w := get(t, srv.Handler(), http.MethodHead, "/index.html")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "14", w.Header().Get("Content-Length"))
}

func TestServeUnreadableIs500(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}

	root := setupRoot(t)
	locked := filepath.Join(root, "locked.js")
	require.NoError(t, os.WriteFile(locked, []byte("x"), 0o644))
	require.NoError(t, os.Chmod(locked, 0o000))

	srv := newTestServer(t, root, nil)
	w := get(t, srv.Handler(), http.MethodGet, "/locked.js")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Body.String())

	// The server keeps serving afterwards.
	w = get(t, srv.Handler(), http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServeRecordsMetrics(t *testing.T) {
	metrics := monitoring.NewMetrics()
	srv := newTestServer(t, setupRoot(t), metrics)

	get(t, srv.Handler(), http.MethodGet, "/")
	get(t, srv.Handler(), http.MethodGet, "/nope")

	s := metrics.Snapshot()
	assert.Equal(t, int64(2), s.TotalRequests)
	assert.Equal(t, int64(1), s.NotFound)
	assert.Equal(t, int64(14), s.BytesServed)
}

func TestStartServeShutdown(t *testing.T) {
	srv := newTestServer(t, setupRoot(t), nil)
	require.NoError(t, srv.Start())

	resp, err := http.Get("http://" + srv.Addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<h1>TauPy</h1>", string(body))
	assert.Empty(t, resp.Header.Get("Content-Type"))
	_, hasType := resp.Header["Content-Type"]
	assert.False(t, hasType)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case <-srv.Done():
	default:
		t.Fatal("serve loop still running after shutdown")
	}
	assert.NoError(t, srv.Err())
}

func TestStartBindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port

	srv := New(Config{Root: t.TempDir(), Host: "127.0.0.1", Port: uint16(port)}, logging.NewNop(), nil)
	err = srv.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bind asset server")
}

func TestShutdownBeforeStart(t *testing.T) {
	srv := newTestServer(t, t.TempDir(), nil)
	assert.NoError(t, srv.Shutdown(context.Background()))
	assert.Nil(t, srv.Addr())
}

func TestServeRelativeDistIndex(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.MkdirAll("assets", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("assets", "index.html"), []byte("assets index"), 0o644))

	root, err := paths.ResolveDist("assets")
	require.NoError(t, err)
	assert.Equal(t, "assets", root)

	app := config.DefaultApp()
	app.Dist = "assets"
	srv := New(FromApp(app, root, true), logging.NewNop(), nil)

	w := get(t, srv.Handler(), http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "assets index", w.Body.String())
	assert.Equal(t, "0.0.0.0:8000", FromApp(app, root, true).Addr())
}

func TestFromApp(t *testing.T) {
	app := config.DefaultApp()
	app.Port = 9100

	cfg := FromApp(app, "/srv/dist", false)
	assert.Equal(t, "0.0.0.0:9100", cfg.Addr())
	assert.Equal(t, "/srv/dist", cfg.Root)
}
