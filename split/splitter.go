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


package split

import (
	"strings"

	"github.com/halcyonlabs/textindex/core"
)

const (
	// DefaultSeparator is the boundary preferred when forming coarse windows.
	DefaultSeparator = "\n"

	// DefaultChunkSize is the target character length of a coarse window.
	DefaultChunkSize = 300

	// DefaultChunkOverlap is the number of characters consecutive windows share.
	DefaultChunkOverlap = 30

	// DefaultMaxFragmentLen is the hard cap on emitted fragment length.
	DefaultMaxFragmentLen = 7500
)

// Splitter produces bounded-size fragments from documents.
// A Splitter is stateless and safe for reuse across documents.
type Splitter struct {
	separator      string
	chunkSize      int
	chunkOverlap   int
	maxFragmentLen int
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithSeparator sets the boundary used when forming coarse windows.
func WithSeparator(sep string) Option {
	return func(s *Splitter) {
		if sep != "" {
			s.separator = sep
		}
	}
}

// WithChunkSize sets the target coarse window length in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithChunkOverlap sets how many characters consecutive windows share.
func WithChunkOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.chunkOverlap = overlap
		}
	}
}

// WithMaxFragmentLen sets the hard cap on emitted fragment length.
func WithMaxFragmentLen(max int) Option {
	return func(s *Splitter) {
		if max > 0 {
			s.maxFragmentLen = max
		}
	}
}

// New creates a Splitter with the given options applied over defaults.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		separator:      DefaultSeparator,
		chunkSize:      DefaultChunkSize,
		chunkOverlap:   DefaultChunkOverlap,
		maxFragmentLen: DefaultMaxFragmentLen,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.chunkOverlap >= s.chunkSize {
		s.chunkOverlap = DefaultChunkOverlap
	}
	return s
}

// Split turns one document into an ordered sequence of fragments, each at
// most the configured fragment cap. Every fragment carries its own copy of
// the document's metadata. An empty result means the document had nothing
// to index; callers must treat that as a failure, not a silent success.
func (s *Splitter) Split(doc core.Document) []core.Document {
	var fragments []core.Document
	for _, window := range s.windows(doc.Content) {
		for _, sp := range bisectSpans(len(window), s.maxFragmentLen) {
			fragments = append(fragments, core.Document{
				Content:  window[sp.lo:sp.hi],
				Metadata: doc.CloneMetadata(),
			})
		}
	}
	return fragments
}

// windows divides content into overlapping coarse windows. Content is split
// on the separator and the pieces merged back greedily: a window closes once
// adding the next piece would exceed the chunk size, and a trailing run of
// pieces totalling at most the overlap is carried into the next window. A
// single piece longer than the chunk size becomes its own window.
func (s *Splitter) windows(content string) []string {
	pieces := strings.Split(content, s.separator)
	sepLen := len(s.separator)

	var windows []string
	var current []string
	total := 0

	appendWindow := func() {
		if w := strings.TrimSpace(strings.Join(current, s.separator)); w != "" {
			windows = append(windows, w)
		}
	}

	for _, piece := range pieces {
		joined := len(piece)
		if len(current) > 0 {
			joined += sepLen
		}
		if total+joined > s.chunkSize && len(current) > 0 {
			appendWindow()
			// Drop pieces from the front until the retained tail fits the
			// overlap budget and leaves room for the incoming piece.
			for len(current) > 0 &&
				(total > s.chunkOverlap || (total+joined > s.chunkSize && total > 0)) {
				total -= len(current[0])
				if len(current) > 1 {
					total -= sepLen
				}
				current = current[1:]
				joined = len(piece)
				if len(current) > 0 {
					joined += sepLen
				}
			}
		}
		current = append(current, piece)
		total += joined
	}
	appendWindow()

	return windows
}
