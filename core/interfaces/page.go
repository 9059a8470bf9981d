// ABOUTME: Page fetcher interface producing a queryable document for a note page
// ABOUTME: The DOM extraction source polls this to wait for media-bearing markup

package interfaces

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// PageFetcher retrieves the live note page as a queryable document.
// Each call fetches a fresh snapshot; the DOM source calls it repeatedly
// while waiting for expected selectors to appear.
type PageFetcher interface {
	FetchDocument(ctx context.Context, url string) (*goquery.Document, error)
}
