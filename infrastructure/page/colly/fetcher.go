// ABOUTME: Page fetcher implementation using colly to retrieve note pages
// ABOUTME: Returns parsed goquery documents for the DOM extraction fallback

package colly

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"

	"notegrab-api/core/interfaces"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	maxBodySize      = 10 * 1024 * 1024
	requestTimeout   = 10 * time.Second
)

// Fetcher implements the PageFetcher interface using colly
type Fetcher struct {
	headers map[string]string
	logger  interfaces.Logger
}

// NewFetcher creates a page fetcher. The headers are sent with every
// page request; note pages served without the expected referer and
// cookies render a login wall instead of content.
func NewFetcher(headers map[string]string, logger interfaces.Logger) *Fetcher {
	return &Fetcher{
		headers: headers,
		logger:  logger,
	}
}

// FetchDocument retrieves the page at url and parses it
func (f *Fetcher) FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := colly.NewCollector(
		colly.UserAgent(defaultUserAgent),
		colly.MaxBodySize(maxBodySize),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(requestTimeout)

	c.OnRequest(func(r *colly.Request) {
		for key, value := range f.headers {
			r.Headers.Set(key, value)
		}
	})

	var body []byte
	var status int
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
		status = r.StatusCode
	})

	var visitErr error
	c.OnError(func(r *colly.Response, err error) {
		visitErr = err
		if f.logger != nil {
			f.logger.Debug("page fetch failed", map[string]interface{}{
				"url":    url,
				"status": r.StatusCode,
				"error":  err.Error(),
			})
		}
	})

	if err := c.Visit(url); err != nil {
		return nil, err
	}
	if visitErr != nil {
		return nil, visitErr
	}
	if len(body) == 0 {
		return nil, errors.New("empty page body")
	}
	if status >= 300 {
		return nil, fmt.Errorf("page returned status %d", status)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	return doc, nil
}
