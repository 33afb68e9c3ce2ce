package ingest

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/halcyonlabs/textindex/core"
	"github.com/halcyonlabs/textindex/split"
)

// sourceExt is the file extension that marks a candidate source document.
const sourceExt = ".txt"

// Sink persists a batch of fragments into a search index. Implementations
// carry their own embedding and connection context; an error fails the
// batch's owning document.
type Sink interface {
	Index(ctx context.Context, batch []core.Document) error
}

// Pipeline drives source files through split, batch, and index stages,
// isolating failures per file.
type Pipeline struct {
	splitter  *split.Splitter
	sink      Sink
	batchSize int
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithBatchSize sets the number of fragments submitted to the sink per batch.
// Default is DefaultBatchSize.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) {
		if size > 0 {
			p.batchSize = size
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(splitter *split.Splitter, sink Sink, opts ...Option) (*Pipeline, error) {
	if splitter == nil {
		return nil, ErrSplitterRequired
	}
	if sink == nil {
		return nil, ErrSinkRequired
	}

	p := &Pipeline{
		splitter:  splitter,
		sink:      sink,
		batchSize: DefaultBatchSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Run walks root for source files and processes each one in turn. Every
// processed file gets exactly one outcome in the returned report; a failure
// on one file never aborts the rest of the run.
//
// Within a single directory, scanning stops at the first file that indexes
// successfully: later candidates in that directory are skipped, while failed
// attempts keep the scan going. Batches already accepted by the sink before
// a failure are not rolled back, so a failed file may leave partial index
// state behind.
func (p *Pipeline) Run(ctx context.Context, root string) (*Report, error) {
	report := NewReport()

	// Directories in which a file has already been indexed successfully.
	done := make(map[string]bool)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), sourceExt) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		dir := filepath.Dir(path)
		if done[dir] {
			return nil
		}

		p.logger.Info("processing file", "path", path)
		outcome := p.processFile(ctx, path)
		report.Add(outcome)

		if outcome.Failed() {
			p.logger.Error("failed to process file", "path", path, "reason", outcome.Reason)
		} else {
			p.logger.Info("successfully processed file", "path", path)
			done[dir] = true
		}
		return nil
	})
	if err != nil {
		return report, err
	}

	return report, nil
}

// processFile takes one file through load, split, and batched indexing,
// converting any stage's error into the file's outcome.
func (p *Pipeline) processFile(ctx context.Context, path string) core.Outcome {
	doc, err := LoadTextFile(path)
	if err != nil {
		return core.Failed(path, err)
	}

	fragments := p.splitter.Split(doc)
	if len(fragments) == 0 {
		return core.Failed(path, core.ErrNoFragments)
	}

	it := NewBatchIterator(fragments, p.batchSize)
	err = it.ForEach(ctx, func(batch []core.Document) error {
		return p.sink.Index(ctx, batch)
	})
	if err != nil {
		// Remaining batches were abandoned by ForEach; the file is failed
		// as a whole even if earlier batches were accepted.
		return core.Failed(path, err)
	}

	return core.Succeeded(path)
}
