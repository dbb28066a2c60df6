package domain

import "fmt"

// ContentType is the kind of study artifact a user asks for. It determines
// which generation contract is invoked and how the raw result is interpreted.
type ContentType string

// Known content types.
const (
	ContentTypeNotes      ContentType = "Notes"
	ContentTypeSummary    ContentType = "Summary"
	ContentTypeMCQ        ContentType = "MCQ"
	ContentTypeFlashcards ContentType = "Flashcards"
)

// ContentTypes lists every known content type in display order.
var ContentTypes = []ContentType{
	ContentTypeNotes,
	ContentTypeSummary,
	ContentTypeMCQ,
	ContentTypeFlashcards,
}

// Valid reports whether c is one of the four known tags.
func (c ContentType) Valid() bool {
	switch c {
	case ContentTypeNotes, ContentTypeSummary, ContentTypeMCQ, ContentTypeFlashcards:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c ContentType) String() string {
	return string(c)
}

// ParseContentType resolves one of the four tags. Matching is exact.
func ParseContentType(s string) (ContentType, error) {
	if ct := ContentType(s); ct.Valid() {
		return ct, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidContentType, s)
}
