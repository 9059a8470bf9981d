// ABOUTME: DOM comment extraction for the terminal fallback source
// ABOUTME: Best-effort scrape; ids are synthesized and timestamps are the extraction time

package dom

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"notegrab-api/core/domain"
)

// minCommentLength filters out icon labels and stray whitespace nodes
// that match the broad comment selectors.
const minCommentLength = 2

// ExtractComments scrapes comment-like elements from the note page.
// DOM comments have no machine-readable ids, timestamps or like counts:
// ids are synthesized sequentially, the timestamp is the extraction
// time, likes are zero and replies are not recovered.
func ExtractComments(doc *goquery.Document) []domain.CommentItem {
	items := []domain.CommentItem{}
	if doc == nil {
		return items
	}

	sel := firstSelection(doc, commentSelectors)
	if sel == nil {
		return items
	}

	now := time.Now()
	sel.Each(func(_ int, el *goquery.Selection) {
		content := commentBody(el)
		if len([]rune(content)) < minCommentLength {
			return
		}

		author := firstElementText(el, commentAuthorSelectors)
		if author == "" {
			author = "anonymous"
		}

		items = append(items, domain.CommentItem{
			ID:         fmt.Sprintf("dom_comment_%d", len(items)+1),
			Author:     author,
			Content:    content,
			CreateTime: now,
			LikeCount:  0,
		})
	})

	return items
}

// commentBody extracts the comment text, preferring a dedicated content
// element over the element's full text.
func commentBody(el *goquery.Selection) string {
	for _, sel := range []string{".content .note-text", ".comment-text", ".content"} {
		if text := strings.TrimSpace(el.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return strings.TrimSpace(el.Text())
}

// firstElementText is firstText scoped to one element
func firstElementText(el *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(el.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}
