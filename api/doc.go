// Package api provides the HTTP API layer for the NoteGrab application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type ExtractRequest struct {
//	    NoteURL string `json:"note_url" required:"true" format:"uri"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling (when configured)
//
// # Usage Example
//
//	// Create API with middleware
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	// Register handlers
//	extractHandler := handlers.NewExtractHandler(extractionService)
//	extractHandler.RegisterRoutes(humaAPI)
//
//	// Start server
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Request validation failures use Huma's RFC 7807 error format. Extraction
// misses are not HTTP errors: every source being exhausted is a normal
// outcome, reported as a 200 with a success=false envelope:
//
//	{
//	    "success": false,
//	    "error": "no media could be extracted from this note"
//	}
//
// Only cache validation errors, upstream failures during packaging, and
// internal faults map to 4xx/5xx status codes.
//
package api
