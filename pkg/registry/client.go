package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Client talks to the ACR data plane (the registry itself, not ARM).
// Read-only: acrpipe only ever lists what the build service pushed.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client

	// Services
	Repositories RepositoriesService
	Tags         TagsService
}

// APIError represents an error response from the registry API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("registry API error (%d): %s -- %s", e.StatusCode, e.Message, string(e.Body))
}

// NewClient creates a registry client for the named ACR registry using
// environment variables for credentials:
//
//   - ACRPIPE_REGISTRY_USERNAME / ACRPIPE_REGISTRY_PASSWORD (admin or
//     token credentials with at least the repository read scope)
//   - ACRPIPE_REGISTRY_URL (optional) overrides the derived
//     https://<name>.azurecr.io endpoint
//   - ACRPIPE_REGISTRY_TIMEOUT_SECONDS (optional) HTTP client timeout
func NewClient(registryName string) (*Client, error) {
	name := strings.TrimSpace(registryName)
	if name == "" {
		return nil, errors.New("registry name must not be empty")
	}

	baseURL := os.Getenv("ACRPIPE_REGISTRY_URL")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.azurecr.io", name)
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, errors.New("invalid registry base URL: " + err.Error())
	}

	username := os.Getenv("ACRPIPE_REGISTRY_USERNAME")
	password := os.Getenv("ACRPIPE_REGISTRY_PASSWORD")
	if username == "" || password == "" {
		return nil, errors.New("ACRPIPE_REGISTRY_USERNAME and ACRPIPE_REGISTRY_PASSWORD must be set")
	}

	timeout := 10 * time.Second
	if timeoutStr := os.Getenv("ACRPIPE_REGISTRY_TIMEOUT_SECONDS"); timeoutStr != "" {
		if seconds, err := strconv.Atoi(timeoutStr); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}

	// Initialize services
	c.Repositories = &repositoriesService{client: c}
	c.Tags = &tagsService{client: c}

	return c, nil
}

// DoRequest sends a GET to the registry API and returns the response body.
// The path should be relative to the registry root (e.g. "/acr/v1/_catalog").
func (c *Client) DoRequest(ctx context.Context, path string) ([]byte, error) {
	fullURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request [GET %s]: %w", fullURL, err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed [GET %s]: %w", fullURL, err)
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       respData,
		}
	}

	return respData, nil
}

// pathEncode encodes a repository name for use in a URL path, preserving
// the "/" separators of namespaced repositories.
func pathEncode(s string) string {
	segments := strings.Split(s, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
