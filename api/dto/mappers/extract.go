// ABOUTME: Mappers converting domain extraction models to response DTOs
// ABOUTME: Keeps API wire shapes decoupled from the core domain types

package mappers

import (
	"time"

	"notegrab-api/api/dto/responses"
	"notegrab-api/core/domain"
)

// ToMediaItemResponses converts media items to their response form
func ToMediaItemResponses(items []domain.MediaItem) []responses.MediaItemResponse {
	out := make([]responses.MediaItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, responses.MediaItemResponse{
			URL:      item.URL,
			Type:     string(item.Type),
			Filename: item.Filename,
		})
	}
	return out
}

// ToNoteResponse converts note content to its response form
func ToNoteResponse(note *domain.NoteContent) *responses.NoteResponse {
	if note == nil {
		return nil
	}
	return &responses.NoteResponse{
		Title:   note.Title,
		Author:  note.Author,
		Content: note.Content,
		URL:     note.URL,
	}
}

// ToExtendedNoteResponse converts extended content to its response form
func ToExtendedNoteResponse(ext *domain.ExtendedNoteContent) *responses.ExtendedNoteResponse {
	if ext == nil {
		return nil
	}

	comments := make([]responses.CommentResponse, 0, len(ext.Comments))
	for _, c := range ext.Comments {
		comments = append(comments, toCommentResponse(c))
	}

	return &responses.ExtendedNoteResponse{
		NoteResponse: *ToNoteResponse(&ext.NoteContent),
		WordCount:    ext.WordCount,
		CharCount:    ext.CharCount,
		Comments:     comments,
		ExtractedAt:  ext.ExtractedAt.Format(time.RFC3339),
	}
}

func toCommentResponse(c domain.CommentItem) responses.CommentResponse {
	replies := make([]responses.CommentReplyResponse, 0, len(c.Replies))
	for _, r := range c.Replies {
		replies = append(replies, responses.CommentReplyResponse{
			Author:     r.Author,
			Content:    r.Content,
			CreateTime: formatTime(r.CreateTime),
			LikeCount:  r.LikeCount,
		})
	}

	return responses.CommentResponse{
		ID:         c.ID,
		Author:     c.Author,
		Content:    c.Content,
		CreateTime: formatTime(c.CreateTime),
		LikeCount:  c.LikeCount,
		IPLocation: c.IPLocation,
		Replies:    replies,
	}
}

// formatTime renders a timestamp as RFC 3339, or "" for the zero value
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// ToFeedCacheItems summarizes cached payload items for the status endpoint
func ToFeedCacheItems(payload *domain.FeedPayload) []responses.FeedCacheItemResponse {
	if payload == nil {
		return nil
	}
	out := make([]responses.FeedCacheItemResponse, 0, len(payload.Items))
	for _, item := range payload.Items {
		entry := responses.FeedCacheItemResponse{
			ID:        item.ID,
			ModelType: item.ModelType,
		}
		if item.NoteCard != nil {
			entry.Title = item.NoteCard.DisplayTitle
		}
		out = append(out, entry)
	}
	return out
}
