package content

import (
	"regexp"
	"strings"

	"github.com/phrazzld/studysmart/internal/domain"
)

var (
	// flashcardDelimiter matches colon, en-dash and hyphen. Every occurrence
	// splits the line; the definition is stitched back together with ":".
	flashcardDelimiter = regexp.MustCompile(`[:–-]`)

	// listPrefix matches a leading "N." numbering with optional spaces.
	listPrefix = regexp.MustCompile(`^\d+\.\s*`)
)

// ParseFlashcards converts newline-delimited "term: definition" lines into
// flashcards, in input order. Lines without a delimiter, or with an empty term
// or definition, are skipped.
//
// Hyphens and en-dashes inside a definition come back as colons
// ("Term - part-one" yields the definition "part:one").
func ParseFlashcards(text string) []domain.Flashcard {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	cards := make([]domain.Flashcard, 0, len(lines))

	for _, line := range lines {
		parts := flashcardDelimiter.Split(line, -1)
		if len(parts) < 2 {
			continue
		}

		term := strings.TrimSpace(listPrefix.ReplaceAllString(parts[0], ""))
		definition := strings.TrimSpace(strings.Join(parts[1:], ":"))
		if term == "" || definition == "" {
			continue
		}

		cards = append(cards, domain.Flashcard{Term: term, Definition: definition})
	}

	return cards
}
