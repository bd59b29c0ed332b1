package staticmap_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"gocafe/pkg/staticmap"

	"github.com/stretchr/testify/assert"
)

func TestBuildMapURL(t *testing.T) {
	client, err := staticmap.NewClient(staticmap.Config{
		APIKey:     "test-key",
		StaticRoot: t.TempDir(),
	})
	assert.NoError(t, err)

	url := client.BuildMapURL("205 E 95th St", "New York", "NY")
	assert.Equal(t,
		"https://www.mapquestapi.com/staticmap/v5/map"+
			"?key=test-key"+
			"&center=205+E+95th+St,New+York,NY"+
			"&size=@2x&zoom=15"+
			"&locations=205+E+95th+St,New+York,NY",
		url)
}

func TestFetchAndStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "440+Grand+Ave,Oakland,CA", r.URL.Query().Get("center"))
		w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	root := t.TempDir()
	client, err := staticmap.NewClient(staticmap.Config{
		BaseURL:    server.URL,
		APIKey:     "test-key",
		StaticRoot: root,
	})
	assert.NoError(t, err)

	path, err := client.FetchAndStore(7, "440 Grand Ave", "Oakland", "CA")
	assert.NoError(t, err)
	assert.Equal(t, "/static/maps/7.jpg", path)

	stored, err := os.ReadFile(filepath.Join(root, "maps", "7.jpg"))
	assert.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(stored))

	assert.Equal(t, "/static/maps/7.jpg", client.MapPath(7))
}

func TestFetchAndStore_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer server.Close()

	root := t.TempDir()
	client, err := staticmap.NewClient(staticmap.Config{
		BaseURL:    server.URL,
		APIKey:     "bad-key",
		StaticRoot: root,
	})
	assert.NoError(t, err)

	// A declined request is not an error; the caller proceeds without a
	// map and no file is written.
	path, err := client.FetchAndStore(7, "440 Grand Ave", "Oakland", "CA")
	assert.NoError(t, err)
	assert.Equal(t, "", path)

	_, statErr := os.Stat(filepath.Join(root, "maps", "7.jpg"))
	assert.True(t, os.IsNotExist(statErr))
	assert.Equal(t, "", client.MapPath(7))
}

func TestFetchAndStore_Overwrites(t *testing.T) {
	body := "first"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	root := t.TempDir()
	client, err := staticmap.NewClient(staticmap.Config{
		BaseURL:    server.URL,
		APIKey:     "test-key",
		StaticRoot: root,
	})
	assert.NoError(t, err)

	_, err = client.FetchAndStore(3, "1 Main St", "Berkeley", "CA")
	assert.NoError(t, err)

	body = "second"
	_, err = client.FetchAndStore(3, "1 Main St", "Berkeley", "CA")
	assert.NoError(t, err)

	stored, err := os.ReadFile(filepath.Join(root, "maps", "3.jpg"))
	assert.NoError(t, err)
	assert.Equal(t, "second", string(stored))
}

func TestFetchAndStore_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client, err := staticmap.NewClient(staticmap.Config{
		BaseURL:    server.URL,
		APIKey:     "test-key",
		StaticRoot: t.TempDir(),
	})
	assert.NoError(t, err)

	_, err = client.FetchAndStore(1, "1 Main St", "Berkeley", "CA")
	assert.Error(t, err)
}
