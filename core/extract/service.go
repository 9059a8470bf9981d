// ABOUTME: Extraction orchestrator trying sources in priority order with DOM as terminal fallback
// ABOUTME: Cache payload first, fresh fetch second, live page scrape last

package extract

import (
	"context"
	"net/url"
	"time"

	"notegrab-api/core/dom"
	"notegrab-api/core/domain"
	"notegrab-api/core/feedcache"
	"notegrab-api/core/interfaces"
	"notegrab-api/core/noteid"
	"notegrab-api/core/normalize"
	"notegrab-api/pkg/utils/text"
)

// Config tunes the orchestrator's sources
type Config struct {
	// FeedAPIURL is the endpoint for a fresh feed-payload fetch.
	// Empty disables the fresh-fetch source entirely.
	FeedAPIURL string

	// CommentAPIURL is the comment-page endpoint
	CommentAPIURL string

	// CDNHostMarker identifies CDN-hosted images during DOM extraction
	CDNHostMarker string

	// PageHeaders are sent with every upstream request
	PageHeaders map[string]string

	// DOM wait tuning; zero values take the defaults below
	DOMWaitTimeout  time.Duration
	DOMPollInterval time.Duration
	DOMSettleDelay  time.Duration
}

const (
	defaultDOMWaitTimeout  = 3000 * time.Millisecond
	defaultDOMPollInterval = 200 * time.Millisecond
	defaultDOMSettleDelay  = 500 * time.Millisecond

	// sessionTokenParam names the URL query parameter carrying the
	// session token the comment API requires.
	sessionTokenParam = "xsec_token"

	// maxCommentPages bounds cursor pagination on the comment API
	maxCommentPages = 5
)

// Service implements interfaces.ExtractionService
type Service struct {
	deps  interfaces.Dependencies
	cache *feedcache.Cache
	pages interfaces.PageFetcher
	cfg   Config
}

// NewService creates the extraction orchestrator
func NewService(deps interfaces.Dependencies, cache *feedcache.Cache, pages interfaces.PageFetcher, cfg Config) *Service {
	if cfg.DOMWaitTimeout <= 0 {
		cfg.DOMWaitTimeout = defaultDOMWaitTimeout
	}
	if cfg.DOMPollInterval <= 0 {
		cfg.DOMPollInterval = defaultDOMPollInterval
	}
	if cfg.DOMSettleDelay <= 0 {
		cfg.DOMSettleDelay = defaultDOMSettleDelay
	}
	return &Service{
		deps:  deps,
		cache: cache,
		pages: pages,
		cfg:   cfg,
	}
}

// ExtractMedia resolves the note's media list.
// Priority: cached payload, fresh payload fetch, live page scrape.
// The result may be empty and is never accompanied by an error.
func (s *Service) ExtractMedia(ctx context.Context, noteURL string) []domain.MediaItem {
	id, _ := noteid.ResolveURL(noteURL)

	strategies := []strategy[[]domain.MediaItem]{
		{name: "cache", attempt: func(ctx context.Context) ([]domain.MediaItem, error) {
			payload, err := s.cachedPayload(ctx, id)
			if err != nil {
				return nil, err
			}
			return normalize.MediaItems(payload, id), nil
		}},
		{name: "fresh-fetch", attempt: func(ctx context.Context) ([]domain.MediaItem, error) {
			payload, err := s.fetchFreshPayload(ctx, id)
			if err != nil {
				return nil, err
			}
			return normalize.MediaItems(payload, id), nil
		}},
		{name: "dom", attempt: func(ctx context.Context) ([]domain.MediaItem, error) {
			doc := s.waitForMediaDocument(ctx, noteURL)
			return dom.ExtractMedia(doc, s.cfg.CDNHostMarker), nil
		}},
	}

	items, ok := firstAccepted(ctx, s.deps.Logger, "media", strategies, func(items []domain.MediaItem) bool {
		return len(items) > 0
	})
	if !ok {
		return []domain.MediaItem{}
	}
	return items
}

// ExtractNoteContent resolves the note's textual content, or nil.
func (s *Service) ExtractNoteContent(ctx context.Context, noteURL string) *domain.NoteContent {
	id, _ := noteid.ResolveURL(noteURL)

	strategies := []strategy[*domain.NoteContent]{
		{name: "cache", attempt: func(ctx context.Context) (*domain.NoteContent, error) {
			payload, err := s.cachedPayload(ctx, id)
			if err != nil {
				return nil, err
			}
			return normalize.NoteContent(payload, id, noteURL), nil
		}},
		{name: "dom", attempt: func(ctx context.Context) (*domain.NoteContent, error) {
			doc, err := s.pages.FetchDocument(ctx, noteURL)
			if err != nil {
				return nil, err
			}
			content := dom.ExtractContent(doc, noteURL)
			if content.IsAllPlaceholder() {
				// Nothing beyond placeholders counts as a miss.
				return nil, nil
			}
			return content, nil
		}},
	}

	content, ok := firstAccepted(ctx, s.deps.Logger, "content", strategies, func(c *domain.NoteContent) bool {
		return c != nil
	})
	if !ok {
		return nil
	}
	return content
}

// ExtractExtendedContent resolves content plus counts and comments.
// Returns nil exactly when ExtractNoteContent does.
func (s *Service) ExtractExtendedContent(ctx context.Context, noteURL string) *domain.ExtendedNoteContent {
	base := s.ExtractNoteContent(ctx, noteURL)
	if base == nil {
		return nil
	}

	id, _ := noteid.ResolveURL(noteURL)
	token := sessionToken(noteURL)

	strategies := []strategy[[]domain.CommentItem]{
		{name: "comment-api", attempt: func(ctx context.Context) ([]domain.CommentItem, error) {
			return s.fetchComments(ctx, id, token)
		}},
		{name: "dom", attempt: func(ctx context.Context) ([]domain.CommentItem, error) {
			doc, err := s.pages.FetchDocument(ctx, noteURL)
			if err != nil {
				return nil, err
			}
			return dom.ExtractComments(doc), nil
		}},
	}

	comments, ok := firstAccepted(ctx, s.deps.Logger, "comments", strategies, func(items []domain.CommentItem) bool {
		return len(items) > 0
	})
	if !ok {
		comments = []domain.CommentItem{}
	}

	return &domain.ExtendedNoteContent{
		NoteContent: *base,
		WordCount:   text.CountNonWhitespace(base.Content),
		CharCount:   text.CountRunes(base.Content),
		Comments:    comments,
		ExtractedAt: time.Now(),
	}
}

// sessionToken pulls the comment-API session token out of the note URL
func sessionToken(noteURL string) string {
	u, err := url.Parse(noteURL)
	if err != nil {
		return ""
	}
	return u.Query().Get(sessionTokenParam)
}
