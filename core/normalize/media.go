// ABOUTME: Media normalizer mapping the raw feed payload to canonical MediaItems
// ABOUTME: Pure and defensive; malformed payloads yield an empty list, never a panic

package normalize

import (
	"fmt"
	"strings"

	"notegrab-api/core/domain"
)

// MediaItems maps the payload item matching id to its media list.
// Video notes yield the single best stream; image notes yield one item
// per image in source order, numbered image_1..image_N.
func MediaItems(payload *domain.FeedPayload, id string) []domain.MediaItem {
	item := payload.FindItem(id)
	if item == nil || item.NoteCard == nil {
		return []domain.MediaItem{}
	}
	card := item.NoteCard

	if video := bestVideoStream(card.Video); video != "" {
		return []domain.MediaItem{{
			URL:      video,
			Type:     domain.MediaTypeVideo,
			Filename: "video_1.mp4",
		}}
	}

	return imageItems(card.ImageList)
}

// imageItems builds one MediaItem per image, preferring the
// quality-marked variant over the default URL.
func imageItems(images []domain.ImageInfo) []domain.MediaItem {
	items := make([]domain.MediaItem, 0, len(images))
	for _, img := range images {
		url := bestImageURL(img)
		if url == "" {
			continue
		}
		items = append(items, domain.MediaItem{
			URL:      url,
			Type:     domain.MediaTypeImage,
			Filename: fmt.Sprintf("image_%d.%s", len(items)+1, ImageExt(url)),
		})
	}
	return items
}

// bestImageURL picks the variant tagged with the default-quality scene,
// falling back to the image's default URL.
func bestImageURL(img domain.ImageInfo) string {
	for _, variant := range img.InfoList {
		if variant.ImageScene == domain.ImageSceneDefault && variant.URL != "" {
			return variant.URL
		}
	}
	return img.URLDefault
}

// ImageExt infers an image file extension from the URL by substring
// match. Unknown formats fall back to webp, which is what the CDN
// serves by default.
func ImageExt(url string) string {
	lower := strings.ToLower(url)
	switch {
	case strings.Contains(lower, ".jpg"), strings.Contains(lower, ".jpeg"):
		return "jpg"
	case strings.Contains(lower, ".png"):
		return "png"
	default:
		return "webp"
	}
}

// bestVideoStream selects the single highest-resolution stream.
// The h264 family is preferred whenever it has entries; h265 is only
// consulted otherwise. Within a family the largest width*height wins,
// with ties going to the earliest entry. The returned URL is used
// byte-for-byte: its query string carries signing tokens the upstream
// server validates.
func bestVideoStream(video *domain.VideoInfo) string {
	if video == nil || video.Media == nil || video.Media.Stream == nil {
		return ""
	}

	streams := video.Media.Stream.H264
	if len(streams) == 0 {
		streams = video.Media.Stream.H265
	}

	best := ""
	bestArea := -1
	for _, s := range streams {
		if s.MasterURL == "" {
			continue
		}
		area := s.Width * s.Height
		if area > bestArea {
			best = s.MasterURL
			bestArea = area
		}
	}
	return best
}
