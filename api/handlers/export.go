// ABOUTME: Packaging handler for the Huma API
// ABOUTME: Streams extraction results back as a zip archive download

package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/kennygrant/sanitize"

	"notegrab-api/api/dto/requests"
	"notegrab-api/core/domain"
	"notegrab-api/core/interfaces"
)

// ExportHandler handles archive packaging HTTP requests
type ExportHandler struct {
	extraction interfaces.ExtractionService
	export     interfaces.ExportService
}

// NewExportHandler creates a new packaging handler
func NewExportHandler(extraction interfaces.ExtractionService, export interfaces.ExportService) *ExportHandler {
	return &ExportHandler{
		extraction: extraction,
		export:     export,
	}
}

// RegisterRoutes registers the packaging route
func (h *ExportHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "packageNote",
		Method:      http.MethodPost,
		Path:        "/package",
		Summary:     "Package a note as a zip archive",
		Description: "Extracts the note's media and content, downloads every media item and returns a zip archive with the files, a markdown report and a JSON data dump",
		Tags:        []string{"Packaging"},
	}, h.Package)
}

// PackageInput defines the input for the Package operation
type PackageInput struct {
	Body requests.PackageRequest
}

// PackageOutput is the raw zip archive download
type PackageOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// Package handles the POST /package endpoint
func (h *ExportHandler) Package(ctx context.Context, input *PackageInput) (*PackageOutput, error) {
	media := h.extraction.ExtractMedia(ctx, input.Body.NoteURL)

	bundle := interfaces.ExportBundle{Media: media}
	var note *domain.NoteContent
	if input.Body.IncludeComments {
		bundle.Extended = h.extraction.ExtractExtendedContent(ctx, input.Body.NoteURL)
		if bundle.Extended != nil {
			note = &bundle.Extended.NoteContent
		}
	} else {
		note = h.extraction.ExtractNoteContent(ctx, input.Body.NoteURL)
		bundle.Note = note
	}

	if len(media) == 0 && note == nil {
		return nil, huma.Error404NotFound("nothing could be extracted for this note")
	}

	bundle.ArchiveName = archiveName(input.Body.ArchiveName, note)

	var buf bytes.Buffer
	if ok := h.export.PackageAsArchive(ctx, &buf, bundle, nil); !ok {
		return nil, huma.Error500InternalServerError("archive assembly failed")
	}

	return &PackageOutput{
		ContentType:        "application/zip",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", bundle.ArchiveName),
		Body:               buf.Bytes(),
	}, nil
}

// archiveName picks the archive file name: the caller's choice first,
// then the note title, then a generic fallback
func archiveName(requested string, note *domain.NoteContent) string {
	name := requested
	if name == "" && note != nil && note.Title != domain.PlaceholderTitle {
		name = note.Title
	}

	name = sanitize.BaseName(name)
	if name == "" {
		name = "note"
	}
	return name + ".zip"
}
