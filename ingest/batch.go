// Copyright 2025 Halcyon Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingest

import (
	"context"

	"github.com/halcyonlabs/textindex/core"
)

const (
	// DefaultBatchSize is the default number of fragments submitted per batch.
	DefaultBatchSize = 100
)

// BatchIterator yields an ordered fragment sequence as fixed-size batches.
type BatchIterator struct {
	fragments []core.Document
	batchSize int
}

// NewBatchIterator creates a new batch iterator.
// batchSize: number of fragments per batch (must be > 0)
func NewBatchIterator(fragments []core.Document, batchSize int) *BatchIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &BatchIterator{
		fragments: fragments,
		batchSize: batchSize,
	}
}

// ForEach calls fn for each batch in order. Every batch except possibly the
// last holds exactly batchSize fragments; batches are subslices, not copies.
// Iteration stops on the first error from fn. Context cancellation is
// checked between batches. Calling ForEach again restarts from the first
// batch.
func (it *BatchIterator) ForEach(ctx context.Context, fn func(batch []core.Document) error) error {
	for i := 0; i < len(it.fragments); i += it.batchSize {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		end := i + it.batchSize
		if end > len(it.fragments) {
			end = len(it.fragments)
		}

		if err := fn(it.fragments[i:end]); err != nil {
			return err
		}
	}

	return nil
}
