package export

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"notegrab-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	mu      sync.Mutex
	calls   []string
	getFunc func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return m.GetWithHeaders(ctx, url, nil)
}

func (m *mockHTTPClient) GetWithHeaders(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()
	if m.getFunc != nil {
		return m.getFunc(ctx, url, headers)
	}
	return nil, errors.New("no response configured")
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockLogger is a no-op implementation of the interfaces.Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

// failingWriter always errors, forcing a fatal assembly failure
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}
