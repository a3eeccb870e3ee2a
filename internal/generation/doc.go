// Package generation orchestrates model calls that turn study material into
// validated flashcards, including output parsing, repair, and the
// guaranteed-count retry loop.
package generation
