package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/projstat/internal/projstat"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestRouter_Healthz(t *testing.T) {
	rec := get(t, newRouter(projstat.Options{Path: t.TempDir()}), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_Stat(t *testing.T) {
	router := newRouter(projstat.Options{Path: newProject(t), Profile: projstat.ProfileWeb})

	rec := get(t, router, "/api/stat")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc jsonDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	assert.Contains(t, doc.Options.Ignore, "htaccess")
	assert.Equal(t, uint32(5), doc.Stat.Main.Files)
	assert.Equal(t, uint64(5), doc.Stat.Main.SourceLines)
}

func TestRouter_StatRescansEveryRequest(t *testing.T) {
	root := newProject(t)
	router := newRouter(projstat.Options{Path: root, Profile: projstat.ProfileWeb})

	var first jsonDocument
	require.NoError(t, json.Unmarshal(get(t, router, "/api/stat").Body.Bytes(), &first))

	writeProjectFile(t, root, "extra.js", "x\n")

	var second jsonDocument
	require.NoError(t, json.Unmarshal(get(t, router, "/api/stat").Body.Bytes(), &second))

	assert.Equal(t, first.Stat.Main.Files+1, second.Stat.Main.Files)
	assert.Equal(t, first.Stat.Main.SourceLines+1, second.Stat.Main.SourceLines)
}

func TestRouter_HTML(t *testing.T) {
	rec := get(t, newRouter(projstat.Options{Path: newProject(t)}), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
	assert.Contains(t, rec.Body.String(), `id="stat_source"`)
}

func TestRouter_ScanError(t *testing.T) {
	router := newRouter(projstat.Options{Path: filepath.Join(t.TempDir(), "missing")})

	for _, path := range []string{"/", "/api/stat"} {
		t.Run(path, func(t *testing.T) {
			rec := get(t, router, path)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body["error"], "not a directory")
		})
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	err := serve(ctx, "127.0.0.1:0", http.NotFoundHandler())
	require.NoError(t, err)
}
