// ABOUTME: DOM content extraction with readability as the terminal fallback
// ABOUTME: Selector lists first, og: metadata second, go-readability last

package dom

import (
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"notegrab-api/core/domain"
)

// ExtractContent scrapes the note page for its textual content.
// Every field falls back to its placeholder; callers decide whether an
// all-placeholder result counts as a miss.
func ExtractContent(doc *goquery.Document, noteURL string) *domain.NoteContent {
	if doc == nil {
		return &domain.NoteContent{
			Title:   domain.PlaceholderTitle,
			Author:  domain.PlaceholderAuthor,
			Content: domain.PlaceholderContent,
			URL:     noteURL,
		}
	}

	title := firstText(doc, titleSelectors)
	if title == "" {
		title = metaContent(doc, "og:title")
	}

	author := firstText(doc, authorSelectors)

	content := contentText(doc)
	if content == "" {
		content = metaContent(doc, "og:description")
	}

	if title == "" && author == "" && content == "" {
		if article, ok := readabilityFallback(doc, noteURL); ok {
			title = article.Title
			author = article.Byline
			content = strings.TrimSpace(article.TextContent)
		}
	}

	return &domain.NoteContent{
		Title:   domain.OrPlaceholder(title, domain.PlaceholderTitle),
		Author:  domain.OrPlaceholder(author, domain.PlaceholderAuthor),
		Content: domain.OrPlaceholder(content, domain.PlaceholderContent),
		URL:     noteURL,
	}
}

// contentText extracts the note body. The body element carries markup
// (hashtag links, line breaks), so its HTML is converted to markdown
// rather than flattened with Text().
func contentText(doc *goquery.Document) string {
	sel := firstSelection(doc, contentSelectors)
	if sel == nil {
		return ""
	}

	html, err := sel.First().Html()
	if err != nil || strings.TrimSpace(html) == "" {
		return strings.TrimSpace(sel.First().Text())
	}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(html)
	if err != nil {
		return strings.TrimSpace(sel.First().Text())
	}
	return strings.TrimSpace(markdown)
}

// metaContent reads a meta tag's content by property name
func metaContent(doc *goquery.Document, property string) string {
	content, _ := doc.Find("meta[property='" + property + "']").First().Attr("content")
	return strings.TrimSpace(content)
}

// readabilityFallback runs go-readability over the full page
func readabilityFallback(doc *goquery.Document, noteURL string) (readability.Article, bool) {
	html, err := doc.Html()
	if err != nil {
		return readability.Article{}, false
	}

	pageURL, err := url.Parse(noteURL)
	if err != nil {
		pageURL = &url.URL{}
	}

	article, err := readability.FromReader(strings.NewReader(html), pageURL)
	if err != nil {
		return readability.Article{}, false
	}
	return article, true
}
