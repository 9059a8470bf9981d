package extract

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"notegrab-api/core/interfaces"
)

// mockStore is a mock implementation of the interfaces.Cache interface
type mockStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMockStore() *mockStore {
	return &mockStore{data: map[string][]byte{}}
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, errors.New("key not found")
	}
	return v, nil
}

func (m *mockStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// mockLogger is a no-op implementation of the interfaces.Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	mu       sync.Mutex
	getCalls int
	getFunc  func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return m.GetWithHeaders(ctx, url, nil)
}

func (m *mockHTTPClient) GetWithHeaders(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	m.mu.Lock()
	m.getCalls++
	m.mu.Unlock()
	if m.getFunc != nil {
		return m.getFunc(ctx, url, headers)
	}
	return nil, errors.New("no response configured")
}

func (m *mockHTTPClient) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getCalls
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

// mockPageFetcher is a mock implementation of the PageFetcher interface
type mockPageFetcher struct {
	mu        sync.Mutex
	fetches   int
	fetchFunc func(call int, url string) (*goquery.Document, error)
}

func (m *mockPageFetcher) FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	m.mu.Lock()
	m.fetches++
	call := m.fetches
	m.mu.Unlock()
	if m.fetchFunc != nil {
		return m.fetchFunc(call, url)
	}
	return nil, errors.New("no page configured")
}

func (m *mockPageFetcher) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches
}

// docFrom parses HTML into a goquery document for tests
func docFrom(html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		panic(err)
	}
	return doc
}
