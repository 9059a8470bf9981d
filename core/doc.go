// Package core contains the business logic for the NoteGrab API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (NoteContent, MediaItem, CommentItem, FeedPayload)
// - extract: Multi-source extraction orchestrator and its data sources
// - normalize: Converts raw feed payloads into domain models
// - dom: DOM scraping fallbacks over parsed note pages
// - export: Zip packaging of extraction results
// - feedcache: Two-tier storage for intercepted feed payloads
// - noteid: Note URL parsing and identity matching
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, pages, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies in the orchestration layer
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "notegrab-api/core/extract"
//	    "notegrab-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	service := extract.NewService(deps, feedCache, pageFetcher, cfg)
//
//	// Extract media, falling through sources as needed
//	media := service.ExtractMedia(ctx, noteURL)
//
package core
