package ingest

import "errors"

var (
	// ErrSplitterRequired is returned when a splitter is not provided.
	ErrSplitterRequired = errors.New("splitter required")

	// ErrSinkRequired is returned when an indexing sink is not provided.
	ErrSinkRequired = errors.New("indexing sink required")
)
