// ABOUTME: Request DTOs for extraction and packaging operations
// ABOUTME: Defines the JSON bodies accepted by the extract and package endpoints

package requests

// ExtractRequest identifies the note to extract from
type ExtractRequest struct {
	// NoteURL is the note page URL, including any session token the
	// platform appended to it
	NoteURL string `json:"note_url" required:"true" format:"uri" doc:"Note page URL to extract from"`
}

// PackageRequest identifies the note to package as an archive
type PackageRequest struct {
	NoteURL string `json:"note_url" required:"true" format:"uri" doc:"Note page URL to package"`

	// ArchiveName overrides the archive file name; the note title is
	// used when empty
	ArchiveName string `json:"archive_name,omitempty" doc:"Archive file name without extension"`

	// IncludeComments switches the text entry to the extended report
	// with the full comment transcript
	IncludeComments bool `json:"include_comments,omitempty" doc:"Include the comment transcript in the report"`
}
