// ABOUTME: Wire-format models for the upstream note-feed and comment-page payloads
// ABOUTME: Mirrors the upstream JSON shape; all fields are optional and may be missing

package domain

import "encoding/json"

// Item kind and image-variant tags used by the upstream feed payload.
const (
	// ModelTypeNote is the item-kind tag a feed item must carry to be
	// treated as a note. Matched exactly.
	ModelTypeNote = "note"

	// ImageSceneDefault tags the high-quality image variant inside an
	// image's variant list.
	ImageSceneDefault = "WB_DFT"
)

// FeedPayload is the raw note-feed API response body
type FeedPayload struct {
	Items []FeedItem `json:"items"`
}

// HasItems reports whether the payload parsed into at least one item.
// Payloads failing this are treated as a cache miss everywhere.
func (p *FeedPayload) HasItems() bool {
	return p != nil && len(p.Items) > 0
}

// FindItem returns the item whose id matches, or nil
func (p *FeedPayload) FindItem(id string) *FeedItem {
	if p == nil || id == "" {
		return nil
	}
	for i := range p.Items {
		if p.Items[i].ID == id {
			return &p.Items[i]
		}
	}
	return nil
}

// ParseFeedPayload decodes raw bytes into a FeedPayload
func ParseFeedPayload(data []byte) (*FeedPayload, error) {
	var payload FeedPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FeedItem is one entry in the feed payload's item list
type FeedItem struct {
	ID        string    `json:"id"`
	ModelType string    `json:"model_type"`
	NoteCard  *NoteCard `json:"note_card"`
}

// NoteCard carries the note's text, author and media descriptors
type NoteCard struct {
	DisplayTitle string      `json:"display_title"`
	Desc         string      `json:"desc"`
	User         *UserInfo   `json:"user"`
	ImageList    []ImageInfo `json:"image_list"`
	Video        *VideoInfo  `json:"video"`
}

// UserInfo identifies the note's author
type UserInfo struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
}

// ImageInfo describes one image with its quality variants
type ImageInfo struct {
	URLDefault string         `json:"url_default"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	InfoList   []ImageVariant `json:"info_list"`
}

// ImageVariant is one quality-tagged rendition of an image
type ImageVariant struct {
	ImageScene string `json:"image_scene"`
	URL        string `json:"url"`
}

// VideoInfo wraps the note's video media descriptor
type VideoInfo struct {
	Media *VideoMedia `json:"media"`
}

// VideoMedia holds the stream lists per codec family
type VideoMedia struct {
	Stream *VideoStreams `json:"stream"`
}

// VideoStreams lists the available streams by codec family.
// H264 is the primary family and preferred over H265 whenever it is
// non-empty.
type VideoStreams struct {
	H264 []VideoStream `json:"h264"`
	H265 []VideoStream `json:"h265"`
}

// VideoStream is one encoded rendition of the note's video
type VideoStream struct {
	// MasterURL includes signing tokens in its query string and must
	// never be rewritten.
	MasterURL string `json:"master_url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// CommentPagePayload is the raw comment-page API response body
type CommentPagePayload struct {
	Code    int              `json:"code"`
	Success bool             `json:"success"`
	Data    *CommentPageData `json:"data"`
}

// CommentPageData is the data envelope of a comment-page response
type CommentPageData struct {
	Comments []RawComment `json:"comments"`
	Cursor   string       `json:"cursor"`
	HasMore  bool         `json:"has_more"`
}

// RawComment is one comment as delivered by the comment API.
// LikeCount arrives as a string and may carry shorthand like "1.2k".
type RawComment struct {
	ID          string       `json:"id"`
	Content     string       `json:"content"`
	CreateTime  int64        `json:"create_time"`
	LikeCount   string       `json:"like_count"`
	IPLocation  string       `json:"ip_location"`
	UserInfo    *UserInfo    `json:"user_info"`
	SubComments []RawComment `json:"sub_comments"`
}
