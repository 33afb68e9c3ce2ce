// Package ingest drives documents through the indexing pipeline.
//
// The Pipeline walks a directory tree for text files and, one file at a
// time, loads the content, splits it into bounded fragments, and submits
// the fragments to a Sink in fixed-size batches. Failures are isolated per
// file: a load, split, or indexing error records a failure outcome for that
// file and the run moves on. The run's Report carries exactly one outcome
// per processed file.
//
// Processing is strictly sequential. There are no retries; a file either
// indexes completely or is recorded as failed, and batches already accepted
// by the sink are not rolled back.
package ingest
