// ABOUTME: HTTP client interface used for upstream API calls and media downloads
// ABOUTME: Header-aware variant carries referer/user-agent/cookie required upstream

package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests.
// The abstraction keeps sources and the export service mockable in tests.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	Get(ctx context.Context, url string) (Response, error)

	// GetWithHeaders performs an HTTP GET with additional request
	// headers. Upstream endpoints reject requests missing the expected
	// referer and user-agent, and the comment API requires the session
	// cookie to be forwarded.
	GetWithHeaders(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body. The caller closes it.
	Body() io.ReadCloser

	// Header returns the value of the named header, or "" when absent.
	Header(key string) string
}
