// Package service contains the application-specific use cases. It turns a
// topic and content type into generated study material through the
// generation port, and derives study statistics from the history and quiz
// results.
//
// Key components:
//
// 1. ContentService:
//   - Dispatches each content type to the matching generation contract
//   - Normalizes every result to a single content string
//   - Converts every LLM failure into a GenerationError, never a panic
//
// 2. StatsService:
//   - Summarizes history and quiz results for the dashboard
//
// The service layer depends on the generation port and domain types, never
// on a specific LLM or storage implementation.
package service
