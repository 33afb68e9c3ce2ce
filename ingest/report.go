package ingest

import (
	"fmt"
	"io"

	"github.com/halcyonlabs/textindex/core"
)

// Report collects per-file outcomes for one pipeline run, in processing order.
type Report struct {
	outcomes []core.Outcome
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends one file's outcome.
func (r *Report) Add(o core.Outcome) {
	r.outcomes = append(r.outcomes, o)
}

// Outcomes returns all outcomes in processing order.
func (r *Report) Outcomes() []core.Outcome {
	return r.outcomes
}

// Succeeded returns the outcomes of files that indexed completely.
func (r *Report) Succeeded() []core.Outcome {
	var out []core.Outcome
	for _, o := range r.outcomes {
		if !o.Failed() {
			out = append(out, o)
		}
	}
	return out
}

// Failed returns the outcomes of files that were abandoned.
func (r *Report) Failed() []core.Outcome {
	var out []core.Outcome
	for _, o := range r.outcomes {
		if o.Failed() {
			out = append(out, o)
		}
	}
	return out
}

// Write renders the run summary: successful paths first, then failed paths
// with their reasons.
func (r *Report) Write(w io.Writer) {
	fmt.Fprintf(w, "\nSuccessfully processed files:\n")
	for _, o := range r.Succeeded() {
		fmt.Fprintln(w, o.Source)
	}

	fmt.Fprintf(w, "\nFailed files:\n")
	for _, o := range r.Failed() {
		fmt.Fprintf(w, "%s: %s\n", o.Source, o.Reason)
	}
}
