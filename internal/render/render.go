// Package render interprets a stored generation for display. It is the
// replay path: the same parsers that handle fresh content turn a
// HistoryItem back into notes lines, a quiz or a flashcard deck.
package render

import (
	"strings"

	"github.com/phrazzld/studysmart/internal/content"
	"github.com/phrazzld/studysmart/internal/domain"
)

// Messages shown in place of an artifact that could not be interpreted.
const (
	MessageQuizUnparseable    = "Failed to parse quiz data."
	MessageNoFlashcards       = "Could not parse flashcards from the generated content."
	MessageUnknownContentType = "Unsupported content type."
)

// Artifact is a structured, display-ready interpretation of generated content.
// Exactly one of Lines, Quiz and Flashcards is populated unless Message is set.
type Artifact struct {
	Type       domain.ContentType `json:"type"`
	Topic      string             `json:"topic"`
	Lines      []string           `json:"lines,omitempty"`
	Quiz       *domain.Quiz       `json:"quiz,omitempty"`
	Flashcards []domain.Flashcard `json:"flashcards,omitempty"`
	Message    string             `json:"message,omitempty"`
}

// Degraded reports whether the content could not be interpreted.
func (a *Artifact) Degraded() bool {
	return a.Message != ""
}

// plain trims s. Artifact text is kept verbatim; escaping belongs to
// whatever renders it.
func plain(s string) string {
	return strings.TrimSpace(s)
}

// Render interprets item according to its content type.
func Render(item domain.HistoryItem) *Artifact {
	return RenderContent(item.Topic, item.Type, item.Content)
}

// RenderContent interprets raw generated text of the given type.
func RenderContent(topic string, ct domain.ContentType, text string) *Artifact {
	a := &Artifact{Type: ct, Topic: topic}

	switch ct {
	case domain.ContentTypeNotes, domain.ContentTypeSummary:
		a.Lines = renderLines(text)
	case domain.ContentTypeMCQ:
		// An empty quiz degrades the same way as undecodable JSON.
		q, err := content.ParseQuiz(text)
		if err != nil {
			a.Message = MessageQuizUnparseable
			return a
		}
		a.Quiz = renderQuiz(q)
	case domain.ContentTypeFlashcards:
		cards := renderFlashcards(text)
		if len(cards) == 0 {
			a.Message = MessageNoFlashcards
			return a
		}
		a.Flashcards = cards
	default:
		a.Message = MessageUnknownContentType
	}
	return a
}

func renderLines(text string) []string {
	raw := content.NoteLines(text)
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = plain(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func renderQuiz(q *domain.Quiz) *domain.Quiz {
	out := &domain.Quiz{Questions: make([]domain.MCQQuestion, 0, len(q.Questions))}
	for _, question := range q.Questions {
		options := make([]string, len(question.Options))
		for i, opt := range question.Options {
			options[i] = plain(opt)
		}
		out.Questions = append(out.Questions, domain.MCQQuestion{
			Question:      plain(question.Question),
			Options:       options,
			CorrectAnswer: plain(question.CorrectAnswer),
		})
	}
	return out
}

func renderFlashcards(text string) []domain.Flashcard {
	parsed := content.ParseFlashcards(text)
	cards := make([]domain.Flashcard, 0, len(parsed))
	for _, card := range parsed {
		term, definition := plain(card.Term), plain(card.Definition)
		if term == "" || definition == "" {
			continue
		}
		cards = append(cards, domain.Flashcard{Term: term, Definition: definition})
	}
	return cards
}
