package storage

import "errors"

// Sentinel errors returned by ScoreStore implementations.
var (
	// ErrNotFound is returned when a wallet has no score in the store.
	ErrNotFound = errors.New("score not found")

	// ErrDuplicateKey is returned when a wallet is scored twice in one run.
	ErrDuplicateKey = errors.New("duplicate wallet: already scored in this run")

	// ErrInvalidInput is returned for a nil score or an empty wallet id.
	ErrInvalidInput = errors.New("invalid score input")
)
