// ABOUTME: Response DTOs for extraction and cache operations
// ABOUTME: Every body carries the success flag; failures carry an error message

package responses

// MediaItemResponse is one downloadable media entry
type MediaItemResponse struct {
	URL      string `json:"url" doc:"Direct media URL"`
	Type     string `json:"type" doc:"Media type: image or video"`
	Filename string `json:"filename" doc:"Suggested download filename"`
}

// MediaExtractionResponse is the body for POST /extract/media
type MediaExtractionResponse struct {
	Success bool                `json:"success"`
	Media   []MediaItemResponse `json:"media,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// NoteResponse is the basic textual content of a note
type NoteResponse struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
	URL     string `json:"url,omitempty"`
}

// ContentExtractionResponse is the body for POST /extract/content
type ContentExtractionResponse struct {
	Success bool          `json:"success"`
	Note    *NoteResponse `json:"note,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// CommentReplyResponse is a nested reply under a comment. Replies carry
// no upstream identifier of their own; they are ordered under their parent.
type CommentReplyResponse struct {
	Author     string `json:"author"`
	Content    string `json:"content"`
	CreateTime string `json:"create_time,omitempty" doc:"RFC 3339 timestamp"`
	LikeCount  int    `json:"like_count"`
}

// CommentResponse is one top-level comment with its replies
type CommentResponse struct {
	ID         string                 `json:"id"`
	Author     string                 `json:"author"`
	Content    string                 `json:"content"`
	CreateTime string                 `json:"create_time,omitempty" doc:"RFC 3339 timestamp"`
	LikeCount  int                    `json:"like_count"`
	IPLocation string                 `json:"ip_location,omitempty"`
	Replies    []CommentReplyResponse `json:"replies,omitempty"`
}

// ExtendedNoteResponse adds statistics and comments to the note content
type ExtendedNoteResponse struct {
	NoteResponse
	WordCount   int               `json:"word_count" doc:"Non-whitespace character count"`
	CharCount   int               `json:"char_count"`
	Comments    []CommentResponse `json:"comments"`
	ExtractedAt string            `json:"extracted_at" doc:"RFC 3339 timestamp"`
}

// ExtendedExtractionResponse is the body for POST /extract/extended
type ExtendedExtractionResponse struct {
	Success bool                  `json:"success"`
	Note    *ExtendedNoteResponse `json:"note,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// AckResponse is the body for operations with no payload to return
type AckResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// FeedCacheItemResponse summarizes one cached feed item
type FeedCacheItemResponse struct {
	ID        string `json:"id"`
	ModelType string `json:"model_type"`
	Title     string `json:"title,omitempty"`
}

// FeedCacheResponse is the body for GET /feedcache
type FeedCacheResponse struct {
	Success    bool                    `json:"success"`
	Items      []FeedCacheItemResponse `json:"items,omitempty"`
	CapturedAt string                  `json:"captured_at,omitempty" doc:"RFC 3339 capture timestamp"`
	Error      string                  `json:"error,omitempty"`
}
