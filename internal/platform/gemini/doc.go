// Package gemini provides an implementation of the generation.Generator
// interface that uses Google's Gemini API to write notes, summaries,
// flashcards and multiple-choice quizzes.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's domain logic to Google's external Gemini AI
// service without exposing the details of the service to the core.
//
// Key components:
//
// 1. Generator:
//   - Implements the generation.Generator interface
//   - Handles communication with the Gemini API through google.golang.org/genai
//
// 2. Prompt Management:
//   - Prompt templates are embedded, one per contract
//   - A template directory from configuration can replace them
//
// 3. Response Processing:
//   - Requests JSON output constrained by a response schema per contract
//   - Decodes and validates responses against the contract structs
//
// 4. Error Handling:
//   - Retries transient errors with exponential backoff and jitter
//   - Translates API failures into generation package errors
//   - Treats safety blocks and schema violations as permanent
package gemini
