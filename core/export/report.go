// ABOUTME: Human-readable markdown report for exported note content
// ABOUTME: The full comment transcript is included; display previews may truncate, exports never do

package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"notegrab-api/core/domain"
	"notegrab-api/core/interfaces"
)

// BuildReport renders note content as a markdown document.
// With extended content the report gains content statistics and the
// complete comment transcript, nested replies included.
func BuildReport(note *domain.NoteContent, extended *domain.ExtendedNoteContent) string {
	base := note
	if extended != nil {
		base = &extended.NoteContent
	}
	if base == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(base.Title)
	b.WriteString("\n\n")

	meta := []string{
		fmt.Sprintf("**Author:** %s", base.Author),
	}
	if base.URL != "" {
		meta = append(meta, fmt.Sprintf("**Source:** %s", base.URL))
	}
	if extended != nil {
		meta = append(meta, fmt.Sprintf("**Extracted:** %s", extended.ExtractedAt.Format(time.RFC3339)))
	}
	b.WriteString(strings.Join(meta, " | "))
	b.WriteString("\n\n---\n\n")

	b.WriteString(base.Content)
	b.WriteString("\n")

	if extended != nil {
		fmt.Fprintf(&b, "\n**Characters:** %d | **Non-whitespace:** %d\n", extended.CharCount, extended.WordCount)
		writeCommentTranscript(&b, extended.Comments)
	}

	return b.String()
}

// writeCommentTranscript renders every comment and reply
func writeCommentTranscript(b *strings.Builder, comments []domain.CommentItem) {
	fmt.Fprintf(b, "\n## Comments (%d)\n\n", len(comments))
	if len(comments) == 0 {
		b.WriteString("No comments were captured.\n")
		return
	}

	for i, c := range comments {
		fmt.Fprintf(b, "%d. **%s**", i+1, c.Author)
		if c.IPLocation != "" {
			fmt.Fprintf(b, " (%s)", c.IPLocation)
		}
		if !c.CreateTime.IsZero() {
			fmt.Fprintf(b, " at %s", c.CreateTime.Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(b, " · %d likes\n", c.LikeCount)
		fmt.Fprintf(b, "   %s\n", c.Content)

		for _, r := range c.Replies {
			fmt.Fprintf(b, "   - **%s**", r.Author)
			if !r.CreateTime.IsZero() {
				fmt.Fprintf(b, " at %s", r.CreateTime.Format("2006-01-02 15:04"))
			}
			fmt.Fprintf(b, ": %s", r.Content)
			if r.LikeCount > 0 {
				fmt.Fprintf(b, " (%d likes)", r.LikeCount)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

// buildDataDump serializes the bundle's textual content as JSON
func buildDataDump(bundle interfaces.ExportBundle) ([]byte, error) {
	if bundle.Extended != nil {
		return json.MarshalIndent(bundle.Extended, "", "  ")
	}
	return json.MarshalIndent(bundle.Note, "", "  ")
}
