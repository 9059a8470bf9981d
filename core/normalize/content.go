// ABOUTME: Content normalizer mapping the raw feed payload to canonical NoteContent
// ABOUTME: Only items tagged as notes qualify; missing fields get placeholders

package normalize

import (
	"notegrab-api/core/domain"
)

// NoteContent maps the payload item matching id to its textual content.
// Returns nil when the item is missing or its kind tag is not exactly
// "note". Fields are never empty strings; see the domain placeholders.
func NoteContent(payload *domain.FeedPayload, id, noteURL string) *domain.NoteContent {
	item := payload.FindItem(id)
	if item == nil || item.ModelType != domain.ModelTypeNote || item.NoteCard == nil {
		return nil
	}
	card := item.NoteCard

	author := ""
	if card.User != nil {
		author = card.User.Nickname
	}

	return &domain.NoteContent{
		Title:   domain.OrPlaceholder(card.DisplayTitle, domain.PlaceholderTitle),
		Author:  domain.OrPlaceholder(author, domain.PlaceholderAuthor),
		Content: domain.OrPlaceholder(card.Desc, domain.PlaceholderContent),
		URL:     noteURL,
	}
}
