// ABOUTME: Source implementations backing the orchestrator's strategies
// ABOUTME: Cached payload, fresh payload fetch, comment API paging, DOM selector wait

package extract

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"notegrab-api/core/dom"
	"notegrab-api/core/domain"
	"notegrab-api/core/errors"
	"notegrab-api/core/normalize"
)

// cachedPayload returns the Source Cache payload, consulting the
// in-process copy first and the durable store second.
func (s *Service) cachedPayload(ctx context.Context, id string) (*domain.FeedPayload, error) {
	if id == "" {
		return nil, errors.ErrSourceUnavailable
	}

	payload := s.cache.GetSync()
	if payload == nil {
		payload = s.cache.GetAsync(ctx)
	}
	if payload == nil {
		return nil, errors.ErrSourceUnavailable
	}
	return payload, nil
}

// fetchFreshPayload performs a best-effort direct fetch of the feed
// payload. With no endpoint configured this source is a no-op.
func (s *Service) fetchFreshPayload(ctx context.Context, id string) (*domain.FeedPayload, error) {
	if s.cfg.FeedAPIURL == "" || id == "" {
		return nil, errors.ErrSourceUnavailable
	}

	resp, err := s.deps.HTTPClient.GetWithHeaders(ctx, s.cfg.FeedAPIURL, s.cfg.PageHeaders)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "feed fetch failed",
			API:        "feed",
		}
	}

	raw, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	payload, err := domain.ParseFeedPayload(raw)
	if err != nil {
		return nil, err
	}
	if !payload.HasItems() {
		return nil, errors.ErrSourceUnavailable
	}
	return payload, nil
}

// waitForMediaDocument polls the note page until a media-bearing
// selector appears, bounded by the configured timeout. On timeout the
// latest snapshot is used anyway. A settle delay follows the first
// match so lazily rendered elements get a chance to attach before the
// final snapshot is taken.
func (s *Service) waitForMediaDocument(ctx context.Context, noteURL string) *goquery.Document {
	deadline := time.Now().Add(s.cfg.DOMWaitTimeout)

	var doc *goquery.Document
	for {
		d, err := s.pages.FetchDocument(ctx, noteURL)
		if err == nil && d != nil {
			doc = d
			if dom.HasMedia(d) {
				break
			}
		}
		if time.Now().After(deadline) {
			break
		}
		if !sleepCtx(ctx, s.cfg.DOMPollInterval) {
			return doc
		}
	}

	if !sleepCtx(ctx, s.cfg.DOMSettleDelay) {
		return doc
	}
	if d, err := s.pages.FetchDocument(ctx, noteURL); err == nil && d != nil {
		doc = d
	}
	return doc
}

// fetchComments pages through the comment API. The token comes from
// the note URL's query string; without it this source is skipped
// outright, never retried.
func (s *Service) fetchComments(ctx context.Context, id, token string) ([]domain.CommentItem, error) {
	if s.cfg.CommentAPIURL == "" || id == "" || token == "" {
		return nil, errors.ErrSourceUnavailable
	}

	comments := []domain.CommentItem{}
	cursor := ""
	for page := 0; page < maxCommentPages; page++ {
		data, err := s.fetchCommentPage(ctx, id, token, cursor)
		if err != nil {
			// A mid-pagination failure keeps what was already fetched.
			if len(comments) > 0 {
				return comments, nil
			}
			return nil, err
		}

		comments = append(comments, normalize.Comments(&domain.CommentPagePayload{Data: data})...)
		if data == nil || !data.HasMore || data.Cursor == "" {
			break
		}
		cursor = data.Cursor
	}
	return comments, nil
}

// fetchCommentPage requests one page of comments
func (s *Service) fetchCommentPage(ctx context.Context, id, token, cursor string) (*domain.CommentPageData, error) {
	endpoint, err := url.Parse(s.cfg.CommentAPIURL)
	if err != nil {
		return nil, err
	}
	q := endpoint.Query()
	q.Set("note_id", id)
	q.Set(sessionTokenParam, token)
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	endpoint.RawQuery = q.Encode()

	resp, err := s.deps.HTTPClient.GetWithHeaders(ctx, endpoint.String(), s.cfg.PageHeaders)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "comment page fetch failed",
			API:        "comment-page",
		}
	}

	var payload domain.CommentPagePayload
	if err := json.NewDecoder(resp.Body()).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// sleepCtx sleeps for d unless ctx is done first.
// Returns false when the context ended the sleep early.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
