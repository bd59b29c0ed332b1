package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewApp(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATABASE_URL", filepath.Join(dir, "test.db"))
	t.Setenv("STATIC_ROOT", filepath.Join(dir, "static"))

	app, err := NewApp()
	assert.NoError(t, err)

	t.Run("Homepage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("UnmatchedPath", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/no/such/page", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("EmptyCafeList", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cafes", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
