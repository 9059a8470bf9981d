// ABOUTME: NoteContent domain models for extracted note text
// ABOUTME: Empty fields are replaced by placeholders so display is never blank

package domain

import "time"

// Placeholder values used when a source cannot supply a field.
// Downstream display relies on these never being empty strings.
const (
	PlaceholderTitle   = "untitled"
	PlaceholderAuthor  = "unknown author"
	PlaceholderContent = "no content"
)

// NoteContent represents the textual content of a note
type NoteContent struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// IsAllPlaceholder reports whether every field carries its placeholder,
// i.e. no real content was found.
func (n *NoteContent) IsAllPlaceholder() bool {
	return n.Title == PlaceholderTitle &&
		n.Author == PlaceholderAuthor &&
		n.Content == PlaceholderContent
}

// OrPlaceholder returns s unless it is empty, in which case the
// placeholder is returned instead.
func OrPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// ExtendedNoteContent is NoteContent enriched with computed counts,
// the note's comments and a capture timestamp.
type ExtendedNoteContent struct {
	NoteContent

	// WordCount is the number of non-whitespace characters in Content
	WordCount int `json:"wordCount"`

	// CharCount is the total number of characters in Content
	CharCount int `json:"charCount"`

	// Comments holds the note's comments in source order
	Comments []CommentItem `json:"comments"`

	// ExtractedAt is when the extraction completed
	ExtractedAt time.Time `json:"extractedAt"`
}
