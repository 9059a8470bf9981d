// ABOUTME: Feed cache handlers for the Huma API
// ABOUTME: Accepts intercepted feed payloads and exposes cache status and clearing

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"notegrab-api/api/dto/mappers"
	"notegrab-api/api/dto/responses"
	"notegrab-api/core/feedcache"
)

// cacheReadRetryDelay is the pause before the single re-read when the
// cache is empty. A client that has just navigated typically publishes
// the intercepted payload within this window.
const cacheReadRetryDelay = 300 * time.Millisecond

// FeedCacheHandler handles feed cache HTTP requests
type FeedCacheHandler struct {
	cache *feedcache.Cache
}

// NewFeedCacheHandler creates a new feed cache handler
func NewFeedCacheHandler(cache *feedcache.Cache) *FeedCacheHandler {
	return &FeedCacheHandler{
		cache: cache,
	}
}

// RegisterRoutes registers all feed cache routes
func (h *FeedCacheHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "putFeedCache",
		Method:      http.MethodPut,
		Path:        "/feedcache",
		Summary:     "Store an intercepted feed payload",
		Description: "Replaces the cached payload; the previous payload is discarded without merging",
		Tags:        []string{"Feed cache"},
	}, h.Put)

	huma.Register(api, huma.Operation{
		OperationID: "getFeedCache",
		Method:      http.MethodGet,
		Path:        "/feedcache",
		Summary:     "Inspect the cached feed payload",
		Tags:        []string{"Feed cache"},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "clearFeedCache",
		Method:      http.MethodDelete,
		Path:        "/feedcache",
		Summary:     "Clear the cached feed payload",
		Tags:        []string{"Feed cache"},
	}, h.Clear)
}

// PutInput carries the raw intercepted payload body
type PutInput struct {
	RawBody []byte `contentType:"application/json"`
}

// PutOutput defines the output for the Put operation
type PutOutput struct {
	Body responses.AckResponse
}

// Put handles the PUT /feedcache endpoint
func (h *FeedCacheHandler) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
	if err := h.cache.Put(ctx, input.RawBody); err != nil {
		return nil, toHumaError(err)
	}

	return &PutOutput{
		Body: responses.AckResponse{Success: true},
	}, nil
}

// GetInput defines the input for the Get operation
type GetInput struct{}

// GetOutput defines the output for the Get operation
type GetOutput struct {
	Body responses.FeedCacheResponse
}

// Get handles the GET /feedcache endpoint. When the cache is empty it
// waits briefly and re-reads once before reporting a miss, covering the
// window between page navigation and payload publication.
func (h *FeedCacheHandler) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	payload := h.cache.GetAsync(ctx)
	if payload == nil {
		select {
		case <-time.After(cacheReadRetryDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		payload = h.cache.GetAsync(ctx)
	}

	if payload == nil {
		return &GetOutput{
			Body: responses.FeedCacheResponse{
				Success: false,
				Error:   "feed cache is empty",
			},
		}, nil
	}

	capturedAt := ""
	if at := h.cache.CapturedAt(); !at.IsZero() {
		capturedAt = at.Format(time.RFC3339)
	}

	return &GetOutput{
		Body: responses.FeedCacheResponse{
			Success:    true,
			Items:      mappers.ToFeedCacheItems(payload),
			CapturedAt: capturedAt,
		},
	}, nil
}

// ClearInput defines the input for the Clear operation
type ClearInput struct{}

// ClearOutput defines the output for the Clear operation
type ClearOutput struct {
	Body responses.AckResponse
}

// Clear handles the DELETE /feedcache endpoint
func (h *FeedCacheHandler) Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error) {
	if err := h.cache.Clear(ctx); err != nil {
		return nil, toHumaError(err)
	}

	return &ClearOutput{
		Body: responses.AckResponse{Success: true},
	}, nil
}
