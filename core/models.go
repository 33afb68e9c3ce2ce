package core

import "maps"

// Document is one unit of text content plus metadata. A freshly loaded
// document corresponds to one source file; fragments produced by splitting
// are themselves Documents whose content is a slice of a coarse window.
type Document struct {
	Content  string
	Metadata map[string]any
}

// NewDocument creates a Document with the given content and metadata.
func NewDocument(content string, metadata map[string]any) Document {
	return Document{Content: content, Metadata: metadata}
}

// CloneMetadata returns an independent copy of the document's metadata.
// Fragments never share a metadata map with their source document.
func (d Document) CloneMetadata() map[string]any {
	return maps.Clone(d.Metadata)
}

// OutcomeStatus is the terminal state of one source file in a run.
type OutcomeStatus int

const (
	// StatusSuccess means every batch of the file was indexed.
	StatusSuccess OutcomeStatus = iota + 1
	// StatusFailure means the file was abandoned after a load, split,
	// or indexing error.
	StatusFailure
)

// Outcome records the terminal state of one source file for a run.
// Reason is empty on success and carries the triggering error text on failure.
type Outcome struct {
	Source string
	Status OutcomeStatus
	Reason string
}

// Succeeded creates a success outcome for a source file.
func Succeeded(source string) Outcome {
	return Outcome{Source: source, Status: StatusSuccess}
}

// Failed creates a failure outcome carrying the error's description.
func Failed(source string, err error) Outcome {
	return Outcome{Source: source, Status: StatusFailure, Reason: err.Error()}
}

// Failed reports whether the outcome is a failure.
func (o Outcome) Failed() bool {
	return o.Status == StatusFailure
}
