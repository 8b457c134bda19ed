package domain

import "errors"

// Domain errors - used across all layers.
var (
	// ErrDataDirNotFound indicates the configured data root is missing
	// or is not a directory. Always fatal at startup.
	ErrDataDirNotFound = errors.New("data directory not found")

	// ErrPoolShutdown indicates a submit/enqueue was attempted after
	// the owning pool was shut down.
	ErrPoolShutdown = errors.New("pool has been shut down")

	// ErrEmptyPhrase indicates a search phrase tokenized to zero words.
	ErrEmptyPhrase = errors.New("phrase has no searchable words")
)
