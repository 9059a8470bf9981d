package handlers

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"notegrab-api/core/domain"
	"notegrab-api/core/interfaces"
)

// mockExtractionService is a mock implementation of the extraction service
type mockExtractionService struct {
	media    []domain.MediaItem
	note     *domain.NoteContent
	extended *domain.ExtendedNoteContent
}

func (m *mockExtractionService) ExtractMedia(ctx context.Context, noteURL string) []domain.MediaItem {
	return m.media
}

func (m *mockExtractionService) ExtractNoteContent(ctx context.Context, noteURL string) *domain.NoteContent {
	return m.note
}

func (m *mockExtractionService) ExtractExtendedContent(ctx context.Context, noteURL string) *domain.ExtendedNoteContent {
	return m.extended
}

// mockExportService is a mock implementation of the export service
type mockExportService struct {
	ok      bool
	archive []byte
	bundles []interfaces.ExportBundle
}

func (m *mockExportService) PackageAsArchive(ctx context.Context, w io.Writer, bundle interfaces.ExportBundle, onProgress func(interfaces.ExportProgress)) bool {
	m.bundles = append(m.bundles, bundle)
	if !m.ok {
		return false
	}
	w.Write(m.archive)
	return true
}

// mockStore is an in-memory Cache for wiring a real feed cache in tests
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
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, errors.New("key not found")
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
