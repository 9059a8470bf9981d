// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts consumed by the API handlers

package interfaces

import (
	"context"
	"io"

	"notegrab-api/core/domain"
)

// ExtractionService resolves a note URL into canonical extraction
// results. Methods never return errors: a source that fails is skipped
// in favor of the next strategy, and total exhaustion yields an empty
// or nil result, which callers treat as a normal negative outcome.
type ExtractionService interface {
	// ExtractMedia returns the note's media list, possibly empty.
	ExtractMedia(ctx context.Context, noteURL string) []domain.MediaItem

	// ExtractNoteContent returns the note's textual content, or nil
	// when no source produced anything beyond placeholders.
	ExtractNoteContent(ctx context.Context, noteURL string) *domain.NoteContent

	// ExtractExtendedContent returns content plus counts and comments,
	// or nil when ExtractNoteContent returns nil.
	ExtractExtendedContent(ctx context.Context, noteURL string) *domain.ExtendedNoteContent
}

// ExportProgress reports packaging progress after each unit of work
type ExportProgress struct {
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Status  string `json:"status"` // downloading, complete or error
}

// ExportBundle is everything the packaging service needs for one archive
type ExportBundle struct {
	ArchiveName string
	Media       []domain.MediaItem

	// Note is the basic textual content; ignored when Extended is set
	Note *domain.NoteContent

	// Extended, when set, adds the comment transcript and data dump
	Extended *domain.ExtendedNoteContent
}

// ExportService assembles extraction results into a downloadable archive
type ExportService interface {
	// PackageAsArchive writes a zip archive to w. Individual media
	// failures are skipped; only a fatal assembly failure yields false.
	PackageAsArchive(ctx context.Context, w io.Writer, bundle ExportBundle, onProgress func(ExportProgress)) bool
}
