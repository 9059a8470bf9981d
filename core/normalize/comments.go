// ABOUTME: Comment normalizer mapping the comment-page payload to canonical CommentItems
// ABOUTME: API-sourced comments keep their upstream ids and nested replies

package normalize

import (
	"time"

	"notegrab-api/core/domain"
	"notegrab-api/pkg/utils/parse"
)

// Comments maps a comment-page payload to canonical comments.
// A payload without a data envelope yields an empty list.
func Comments(payload *domain.CommentPagePayload) []domain.CommentItem {
	if payload == nil || payload.Data == nil {
		return []domain.CommentItem{}
	}

	items := make([]domain.CommentItem, 0, len(payload.Data.Comments))
	for _, raw := range payload.Data.Comments {
		if raw.Content == "" {
			continue
		}
		item := domain.CommentItem{
			ID:         raw.ID,
			Author:     commentAuthor(raw.UserInfo),
			Content:    raw.Content,
			CreateTime: commentTime(raw.CreateTime),
			LikeCount:  parse.CountOrZero(raw.LikeCount),
			IPLocation: raw.IPLocation,
		}
		for _, sub := range raw.SubComments {
			if sub.Content == "" {
				continue
			}
			item.Replies = append(item.Replies, domain.CommentReply{
				Author:     commentAuthor(sub.UserInfo),
				Content:    sub.Content,
				CreateTime: commentTime(sub.CreateTime),
				LikeCount:  parse.CountOrZero(sub.LikeCount),
			})
		}
		items = append(items, item)
	}
	return items
}

func commentAuthor(user *domain.UserInfo) string {
	if user == nil || user.Nickname == "" {
		return "anonymous"
	}
	return user.Nickname
}

// commentTime converts the upstream epoch-millisecond stamp
func commentTime(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
