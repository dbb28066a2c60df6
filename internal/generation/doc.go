// Package generation defines the boundary between the study aid and the
// external AI/LLM service (Gemini) used for content generation.
//
// The Generator interface exposes the two generation contracts: free-text
// learning content (notes, summary, flashcards) and a structured
// multiple-choice quiz. Each contract has explicit input and output structs
// that are validated before a response is trusted, so adapters never hand
// unchecked model output to the rest of the application.
package generation
