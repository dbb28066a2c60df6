// Package domain contains the core study-aid entities: the content types a
// user can request, the structured artifacts produced from generated text
// (flashcards, multiple-choice quizzes), history records and quiz results.
// It is independent of any specific infrastructure or delivery mechanism.
package domain
