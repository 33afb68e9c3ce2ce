package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/halcyonlabs/textindex/core"
	"github.com/halcyonlabs/textindex/split"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSink implements Sink for testing, recording batches and optionally
// failing on a chosen call or source file.
type testSink struct {
	batches    [][]core.Document
	failOnCall int    // 1-based call number to fail on (0 = never)
	failSource string // fail any batch whose fragments carry this source
}

func (s *testSink) Index(ctx context.Context, batch []core.Document) error {
	s.batches = append(s.batches, batch)
	if s.failOnCall > 0 && len(s.batches) == s.failOnCall {
		return errors.New("index rejected batch")
	}
	if s.failSource != "" && len(batch) > 0 {
		if src, _ := batch[0].Metadata["source"].(string); strings.HasSuffix(src, s.failSource) {
			return errors.New("index rejected batch")
		}
	}
	return nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestPipeline(t *testing.T, sink Sink, opts ...Option) *Pipeline {
	t.Helper()
	p, err := NewPipeline(split.New(), sink, opts...)
	require.NoError(t, err)
	return p
}

func TestNewPipeline_RequiresDependencies(t *testing.T) {
	_, err := NewPipeline(nil, &testSink{})
	assert.ErrorIs(t, err, ErrSplitterRequired)

	_, err = NewPipeline(split.New(), nil)
	assert.ErrorIs(t, err, ErrSinkRequired)
}

func TestPipeline_AllFilesSucceed(t *testing.T) {
	root := t.TempDir()
	a := writeFile(t, root, "a/one.txt", "hello world\n")
	b := writeFile(t, root, "b/two.txt", "more text here\n")
	writeFile(t, root, "b/ignored.md", "not a candidate\n")

	sink := &testSink{}
	p := newTestPipeline(t, sink)

	report, err := p.Run(context.Background(), root)
	require.NoError(t, err)

	outcomes := report.Outcomes()
	require.Len(t, outcomes, 2, "one outcome per processed file")
	assert.Equal(t, a, outcomes[0].Source)
	assert.Equal(t, b, outcomes[1].Source)
	for _, o := range outcomes {
		assert.False(t, o.Failed())
	}
	assert.Empty(t, report.Failed())
}

func TestPipeline_FirstSuccessSkipsRestOfDirectory(t *testing.T) {
	root := t.TempDir()
	first := writeFile(t, root, "docs/aaa.txt", "first file\n")
	writeFile(t, root, "docs/bbb.txt", "second file\n")
	other := writeFile(t, root, "other/ccc.txt", "third file\n")

	sink := &testSink{}
	p := newTestPipeline(t, sink)

	report, err := p.Run(context.Background(), root)
	require.NoError(t, err)

	outcomes := report.Outcomes()
	require.Len(t, outcomes, 2, "bbb.txt is skipped after aaa.txt succeeds")
	assert.Equal(t, first, outcomes[0].Source)
	assert.Equal(t, other, outcomes[1].Source)
}

func TestPipeline_FailureKeepsScanningDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/aaa.txt", "doomed file\n")
	second := writeFile(t, root, "docs/bbb.txt", "healthy file\n")

	sink := &testSink{failSource: "aaa.txt"}
	p := newTestPipeline(t, sink)

	report, err := p.Run(context.Background(), root)
	require.NoError(t, err)

	outcomes := report.Outcomes()
	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].Failed())
	assert.Contains(t, outcomes[0].Reason, "index rejected batch")
	assert.False(t, outcomes[1].Failed())
	assert.Equal(t, second, outcomes[1].Source)
}

func TestPipeline_EmptyFileRecordedAsFailure(t *testing.T) {
	root := t.TempDir()
	empty := writeFile(t, root, "a/empty.txt", "")
	ok := writeFile(t, root, "b/ok.txt", "real content\n")

	sink := &testSink{}
	p := newTestPipeline(t, sink)

	report, err := p.Run(context.Background(), root)
	require.NoError(t, err)

	outcomes := report.Outcomes()
	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].Failed())
	assert.Equal(t, empty, outcomes[0].Source)
	assert.Equal(t, core.ErrNoFragments.Error(), outcomes[0].Reason)
	assert.False(t, outcomes[1].Failed())
	assert.Equal(t, ok, outcomes[1].Source)
}

func TestPipeline_BatchFailureAbandonsRemainingBatches(t *testing.T) {
	root := t.TempDir()
	// 25 fragments at batch size 10 makes 3 batches; fail the second.
	var content strings.Builder
	for i := 0; i < 25; i++ {
		content.WriteString(strings.Repeat("x", 40) + "\n")
	}
	writeFile(t, root, "big.txt", content.String())

	sink := &testSink{failOnCall: 2}
	splitter := split.New(split.WithChunkSize(40), split.WithChunkOverlap(0))
	p, err := NewPipeline(splitter, sink, WithBatchSize(10))
	require.NoError(t, err)

	report, err := p.Run(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, sink.batches, 2, "batch 3 must never be submitted")
	outcomes := report.Outcomes()
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Failed())
}

func TestPipeline_FragmentsCarrySourceMetadata(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "meta.txt", "some document text\n")

	sink := &testSink{}
	p := newTestPipeline(t, sink)

	_, err := p.Run(context.Background(), root)
	require.NoError(t, err)

	require.NotEmpty(t, sink.batches)
	for _, batch := range sink.batches {
		for _, frag := range batch {
			assert.Equal(t, path, frag.Metadata["source"])
		}
	}
}

func TestPipeline_ContextCancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "text\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := newTestPipeline(t, &testSink{})
	_, err := p.Run(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPipeline_MissingRoot(t *testing.T) {
	p := newTestPipeline(t, &testSink{})

	_, err := p.Run(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
