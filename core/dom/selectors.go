// ABOUTME: Ordered candidate-selector lists and first-match-wins helpers
// ABOUTME: Page markup shifts between app versions, so every query tries several selectors

package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Candidate selectors, tried in order. Earlier entries match the
// current page markup; later ones cover older layouts.
var (
	titleSelectors = []string{
		"#detail-title",
		".note-content .title",
		"h1.title",
	}

	authorSelectors = []string{
		".author-container .username",
		".author-wrapper .name",
		".user-nickname",
	}

	contentSelectors = []string{
		"#detail-desc",
		".note-content .desc",
		".desc .note-text",
	}

	// mediaSelectors are the media-bearing elements the DOM source
	// waits for before scraping.
	mediaSelectors = []string{
		".swiper-slide img",
		".note-slider-img",
		".media-container img",
		".img-container img",
		"video",
	}

	commentSelectors = []string{
		".comment-item",
		".comments-container .comment",
		".parent-comment",
		"[class*=\"comment-item\"]",
	}

	commentAuthorSelectors = []string{
		".author .name",
		".user-info .name",
		".nickname",
	}
)

// firstText returns the trimmed text of the first selector that yields
// a non-empty result.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		text := strings.TrimSpace(doc.Find(sel).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}

// firstSelection returns the matches of the first selector that yields
// any, or nil.
func firstSelection(doc *goquery.Document, selectors []string) *goquery.Selection {
	for _, sel := range selectors {
		if s := doc.Find(sel); s.Length() > 0 {
			return s
		}
	}
	return nil
}

// HasMedia reports whether any media-bearing selector matches.
// The extraction orchestrator polls this while waiting for lazily
// rendered markup to attach.
func HasMedia(doc *goquery.Document) bool {
	if doc == nil {
		return false
	}
	for _, sel := range mediaSelectors {
		if doc.Find(sel).Length() > 0 {
			return true
		}
	}
	return false
}

// attrOr returns the first non-empty attribute among names
func attrOr(s *goquery.Selection, names ...string) string {
	for _, name := range names {
		if v, ok := s.Attr(name); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
