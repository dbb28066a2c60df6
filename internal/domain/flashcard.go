package domain

// Flashcard is a single term/definition pair parsed from generated text.
// Both fields are always non-empty.
type Flashcard struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}
