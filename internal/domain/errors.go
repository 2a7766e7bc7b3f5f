package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrModelUnavailable marks an unreachable embedding backend.
	// Fatal to the whole run: no partial results are usable without vectors.
	ErrModelUnavailable = errors.New("embedding model unavailable")

	// ErrDimensionMismatch is returned when a vector does not match the
	// collection's configured dimension. Fatal to that operation only.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrNoResults is the retriever's "no relevant context" signal.
	// It is a valid terminal state, not a failure.
	ErrNoResults = errors.New("no relevant context found")

	// ErrServiceFailure marks a failed language-model call.
	ErrServiceFailure = errors.New("language model request failed")
)

// ExtractionFailure records a file that could not be converted to text.
// Failures are collected, not raised: a bad file never aborts ingestion.
type ExtractionFailure struct {
	Path string
	Type FileType
	Err  error
}

func (f ExtractionFailure) Error() string {
	return fmt.Sprintf("extract %s (%s): %v", f.Path, f.Type, f.Err)
}

func (f ExtractionFailure) Unwrap() error { return f.Err }
