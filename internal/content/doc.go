// Package content interprets free-form text returned by the generator into
// structured study artifacts.
//
// Interpretation is lossy by design: flashcard lines that cannot be split
// into a term and a definition are dropped rather than reported, so a noisy
// response degrades to fewer cards instead of an error. Only a quiz payload
// whose structural encoding is broken is reported, via ErrQuizUnparseable.
//
// The line-oriented rules here are coupled to the generation prompts, which
// ask for one point per line and no markup.
package content
