// ABOUTME: Comment domain models for note comments and their replies
// ABOUTME: API-sourced comments keep upstream ids, DOM-sourced ones get synthesized ids

package domain

import "time"

// CommentItem represents one top-level comment on a note
type CommentItem struct {
	// ID uniquely identifies the comment within one extraction
	ID string `json:"id"`

	// Author is the commenter's display name
	Author string `json:"author"`

	// Content is the comment body text
	Content string `json:"content"`

	// CreateTime is when the comment was posted. DOM-sourced comments
	// carry the extraction time because the page does not expose a
	// machine-readable timestamp.
	CreateTime time.Time `json:"createTime"`

	// LikeCount is never negative
	LikeCount int `json:"likeCount"`

	// IPLocation is the coarse location label, may be empty
	IPLocation string `json:"ipLocation,omitempty"`

	// Replies holds nested replies in source order
	Replies []CommentReply `json:"replies,omitempty"`
}

// CommentReply represents a nested reply under a top-level comment
type CommentReply struct {
	Author     string    `json:"author"`
	Content    string    `json:"content"`
	CreateTime time.Time `json:"createTime"`
	LikeCount  int       `json:"likeCount"`
}
