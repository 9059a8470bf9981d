// ABOUTME: MediaItem domain model represents one downloadable media asset of a note
// ABOUTME: Filenames are assigned during normalization and are unique within a batch

package domain

// MediaType distinguishes the two kinds of media a note can carry
type MediaType string

const (
	// MediaTypeImage marks a still image asset
	MediaTypeImage MediaType = "image"

	// MediaTypeVideo marks a video stream asset
	MediaTypeVideo MediaType = "video"
)

// MediaItem represents a single extracted media asset
type MediaItem struct {
	// URL is the absolute, fetchable location of the asset.
	// Query parameters carry upstream signing tokens and must be
	// preserved byte-for-byte.
	URL string `json:"url"`

	// Type is either image or video
	Type MediaType `json:"type"`

	// Filename is the name the asset gets inside an export batch.
	// Images are numbered image_<n> in source order, video is video_1.
	Filename string `json:"filename"`
}

// IsValid checks if the media item has all required fields
func (m *MediaItem) IsValid() bool {
	if m.URL == "" {
		return false
	}

	if m.Type != MediaTypeImage && m.Type != MediaTypeVideo {
		return false
	}

	return m.Filename != ""
}
