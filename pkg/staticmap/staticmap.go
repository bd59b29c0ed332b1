// Package staticmap fetches pre-rendered map images from the MapQuest
// static map API and stores them under the application's static root.
package staticmap

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultBaseURL is the MapQuest static map endpoint.
const DefaultBaseURL = "https://www.mapquestapi.com/staticmap/v5/map"

// Config holds the settings for the static map client.
type Config struct {
	BaseURL    string // defaults to DefaultBaseURL
	APIKey     string
	StaticRoot string // directory served at /static; maps go in <root>/maps
}

// Client fetches and stores static map images.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new static map client and ensures the maps directory
// exists.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if err := os.MkdirAll(filepath.Join(config.StaticRoot, "maps"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create maps directory: %w", err)
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{},
	}, nil
}

// BuildMapURL returns the image-service URL for a location. The address,
// city and state are joined with commas into the center and locations
// parameters, with spaces escaped as '+'.
func (c *Client) BuildMapURL(address, city, state string) string {
	where := fmt.Sprintf("%s,%s,%s", plusEscape(address), plusEscape(city), plusEscape(state))
	return fmt.Sprintf("%s?key=%s&center=%s&size=@2x&zoom=15&locations=%s",
		c.config.BaseURL, c.config.APIKey, where, where)
}

// FetchAndStore issues a single GET for the location's map image and, on a
// success status, writes it to <static-root>/maps/<id>.jpg, overwriting any
// previous image for that id. It returns the public path of the stored
// image, or "" when the service responds with a non-success status. There
// is no retry.
func (c *Client) FetchAndStore(id uint, address, city, state string) (string, error) {
	url := c.BuildMapURL(address, city, state)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch map for cafe %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", nil
	}

	dest := filepath.Join(c.config.StaticRoot, "maps", fmt.Sprintf("%d.jpg", id))
	// Write to a temp file first so a half-written download never replaces
	// an existing map.
	tmp := dest + "." + uuid.New().String() + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("failed to create map file for cafe %d: %w", id, err)
	}
	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("failed to write map file for cafe %d: %w", id, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to close map file for cafe %d: %w", id, err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to store map file for cafe %d: %w", id, err)
	}

	return fmt.Sprintf("/static/maps/%d.jpg", id), nil
}

// MapPath returns the public path of a previously stored map image, or ""
// when no image exists for the id.
func (c *Client) MapPath(id uint) string {
	dest := filepath.Join(c.config.StaticRoot, "maps", fmt.Sprintf("%d.jpg", id))
	if _, err := os.Stat(dest); err != nil {
		return ""
	}
	return fmt.Sprintf("/static/maps/%d.jpg", id)
}

func plusEscape(s string) string {
	return strings.Join(strings.Fields(s), "+")
}
