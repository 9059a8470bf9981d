// ABOUTME: Extraction handlers for the Huma API
// ABOUTME: Exposes media, content and extended-content extraction over HTTP

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"notegrab-api/api/dto/mappers"
	"notegrab-api/api/dto/requests"
	"notegrab-api/api/dto/responses"
	"notegrab-api/core/interfaces"
)

// ExtractHandler handles extraction HTTP requests
type ExtractHandler struct {
	extraction interfaces.ExtractionService
}

// NewExtractHandler creates a new extraction handler
func NewExtractHandler(extraction interfaces.ExtractionService) *ExtractHandler {
	return &ExtractHandler{
		extraction: extraction,
	}
}

// RegisterRoutes registers all extraction routes
func (h *ExtractHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "extractMedia",
		Method:      http.MethodPost,
		Path:        "/extract/media",
		Summary:     "Extract a note's media list",
		Description: "Resolves the note's images or video through the cached payload, the feed API and the page DOM, in that order",
		Tags:        []string{"Extraction"},
	}, h.ExtractMedia)

	huma.Register(api, huma.Operation{
		OperationID: "extractContent",
		Method:      http.MethodPost,
		Path:        "/extract/content",
		Summary:     "Extract a note's textual content",
		Tags:        []string{"Extraction"},
	}, h.ExtractContent)

	huma.Register(api, huma.Operation{
		OperationID: "extractExtended",
		Method:      http.MethodPost,
		Path:        "/extract/extended",
		Summary:     "Extract content with statistics and comments",
		Tags:        []string{"Extraction"},
	}, h.ExtractExtended)
}

// ExtractInput defines the input for all extraction operations
type ExtractInput struct {
	Body requests.ExtractRequest
}

// ExtractMediaOutput defines the output for the ExtractMedia operation
type ExtractMediaOutput struct {
	Body responses.MediaExtractionResponse
}

// ExtractMedia handles the POST /extract/media endpoint.
// Exhausting every source is a normal negative outcome, reported as a
// success:false body rather than an HTTP error.
func (h *ExtractHandler) ExtractMedia(ctx context.Context, input *ExtractInput) (*ExtractMediaOutput, error) {
	media := h.extraction.ExtractMedia(ctx, input.Body.NoteURL)

	if len(media) == 0 {
		return &ExtractMediaOutput{
			Body: responses.MediaExtractionResponse{
				Success: false,
				Error:   "no media could be extracted from any source",
			},
		}, nil
	}

	return &ExtractMediaOutput{
		Body: responses.MediaExtractionResponse{
			Success: true,
			Media:   mappers.ToMediaItemResponses(media),
		},
	}, nil
}

// ExtractContentOutput defines the output for the ExtractContent operation
type ExtractContentOutput struct {
	Body responses.ContentExtractionResponse
}

// ExtractContent handles the POST /extract/content endpoint
func (h *ExtractHandler) ExtractContent(ctx context.Context, input *ExtractInput) (*ExtractContentOutput, error) {
	note := h.extraction.ExtractNoteContent(ctx, input.Body.NoteURL)

	if note == nil {
		return &ExtractContentOutput{
			Body: responses.ContentExtractionResponse{
				Success: false,
				Error:   "no content could be extracted from any source",
			},
		}, nil
	}

	return &ExtractContentOutput{
		Body: responses.ContentExtractionResponse{
			Success: true,
			Note:    mappers.ToNoteResponse(note),
		},
	}, nil
}

// ExtractExtendedOutput defines the output for the ExtractExtended operation
type ExtractExtendedOutput struct {
	Body responses.ExtendedExtractionResponse
}

// ExtractExtended handles the POST /extract/extended endpoint
func (h *ExtractHandler) ExtractExtended(ctx context.Context, input *ExtractInput) (*ExtractExtendedOutput, error) {
	ext := h.extraction.ExtractExtendedContent(ctx, input.Body.NoteURL)

	if ext == nil {
		return &ExtractExtendedOutput{
			Body: responses.ExtendedExtractionResponse{
				Success: false,
				Error:   "no content could be extracted from any source",
			},
		}, nil
	}

	return &ExtractExtendedOutput{
		Body: responses.ExtendedExtractionResponse{
			Success: true,
			Note:    mappers.ToExtendedNoteResponse(ext),
		},
	}, nil
}
