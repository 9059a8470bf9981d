// ABOUTME: DOM media extraction for the terminal fallback source
// ABOUTME: Filters to CDN-hosted images, dedupes and derives original-quality URLs

package dom

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"notegrab-api/core/domain"
	"notegrab-api/core/normalize"
)

// sizeSuffixPattern matches inline _WxH. rendition suffixes in CDN
// paths, e.g. photo_640x640.jpg.
var sizeSuffixPattern = regexp.MustCompile(`_\d+[xX]\d+\.`)

// ExtractMedia scrapes the note page for media assets.
// A page with a video element yields the single video; otherwise every
// CDN-hosted image is returned once, in document order. The result is
// possibly empty, never nil.
func ExtractMedia(doc *goquery.Document, cdnHostMarker string) []domain.MediaItem {
	if doc == nil {
		return []domain.MediaItem{}
	}

	if videoURL := findVideoURL(doc); videoURL != "" {
		return []domain.MediaItem{{
			URL:      videoURL,
			Type:     domain.MediaTypeVideo,
			Filename: "video_1.mp4",
		}}
	}

	items := []domain.MediaItem{}
	seen := map[string]bool{}

	images := firstSelection(doc, []string{
		".swiper-slide img",
		".note-slider-img",
		".media-container img",
		".img-container img",
		"img",
	})
	if images == nil {
		return items
	}

	images.Each(func(_ int, img *goquery.Selection) {
		src := attrOr(img, "src", "data-src")
		if src == "" || !strings.Contains(src, cdnHostMarker) {
			return
		}
		url := OriginalQualityURL(src)
		if seen[url] {
			return
		}
		seen[url] = true
		items = append(items, domain.MediaItem{
			URL:      url,
			Type:     domain.MediaTypeImage,
			Filename: fmt.Sprintf("image_%d.%s", len(items)+1, normalize.ImageExt(url)),
		})
	})

	return items
}

// findVideoURL returns the page's video stream URL, if any.
// The URL is kept exactly as the page carries it; query parameters are
// signing tokens.
func findVideoURL(doc *goquery.Document) string {
	var url string
	doc.Find("video").EachWithBreak(func(_ int, v *goquery.Selection) bool {
		url = attrOr(v, "src")
		if url == "" {
			url = attrOr(v.Find("source").First(), "src")
		}
		return url == ""
	})
	return url
}

// OriginalQualityURL rewrites a CDN image URL to its original-quality
// form: the query string is dropped and inline _WxH. size suffixes are
// removed from the path.
func OriginalQualityURL(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[:i]
	}
	return sizeSuffixPattern.ReplaceAllString(raw, ".")
}
