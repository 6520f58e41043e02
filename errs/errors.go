// Package errs defines the sentinel errors shared across hufftext packages.
//
// Callers match them with errors.Is; packages wrap them with fmt.Errorf("%w: ...")
// to attach context while keeping the sentinel identity.
package errs

import "errors"

var (
	// ErrIncompleteCode indicates that a strict decode discarded bits that
	// never resolved to a code, either at the end of the input or where a
	// literal character cut a partial code short.
	ErrIncompleteCode = errors.New("incomplete code")

	// ErrUnknownCompression indicates an unsupported or invalid compression type.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrEmptyText indicates an operation that requires a non-empty text input.
	ErrEmptyText = errors.New("empty text")

	// ErrCorpusCollision indicates that two different training corpora hashed
	// to the same 64-bit identifier.
	ErrCorpusCollision = errors.New("training corpus hash collision")
)
