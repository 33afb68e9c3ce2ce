package split

import (
	"strings"
	"testing"

	"github.com/halcyonlabs/textindex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_RecursiveBisection(t *testing.T) {
	// A 20000-character document with no separators forms a single coarse
	// window, then bisects to 5000/5000/5000/5000.
	doc := core.NewDocument(strings.Repeat("a", 20000), map[string]any{"source": "big.txt"})

	s := New()
	fragments := s.Split(doc)

	require.Len(t, fragments, 4)
	var rebuilt strings.Builder
	for _, f := range fragments {
		assert.Len(t, f.Content, 5000)
		assert.Equal(t, "big.txt", f.Metadata["source"])
		rebuilt.WriteString(f.Content)
	}
	assert.Equal(t, doc.Content, rebuilt.String(), "fragments of one window must reconstruct it exactly")
}

func TestSplit_FragmentsWithinCap(t *testing.T) {
	line := strings.Repeat("x", 80)
	doc := core.NewDocument(strings.Repeat(line+"\n", 500), nil)

	s := New(WithChunkSize(200), WithChunkOverlap(20), WithMaxFragmentLen(150))
	for _, f := range s.Split(doc) {
		require.LessOrEqual(t, len(f.Content), 150)
		require.NotEmpty(t, f.Content)
	}
}

func TestSplit_MetadataCopiedPerFragment(t *testing.T) {
	doc := core.NewDocument(strings.Repeat("b", 1000), map[string]any{"source": "m.txt"})

	s := New(WithChunkSize(100), WithChunkOverlap(10), WithMaxFragmentLen(100))
	fragments := s.Split(doc)
	require.Greater(t, len(fragments), 1)

	fragments[0].Metadata["source"] = "mutated"
	assert.Equal(t, "m.txt", doc.Metadata["source"])
	assert.Equal(t, "m.txt", fragments[1].Metadata["source"])
}

func TestSplit_Idempotent(t *testing.T) {
	doc := core.NewDocument(strings.Repeat("line one\nline two\n", 400), map[string]any{"k": "v"})

	s := New(WithChunkSize(120), WithChunkOverlap(24), WithMaxFragmentLen(64))
	first := s.Split(doc)
	second := s.Split(doc)
	assert.Equal(t, first, second)
}

func TestSplit_EmptyDocument(t *testing.T) {
	s := New()
	assert.Empty(t, s.Split(core.NewDocument("", nil)))
	assert.Empty(t, s.Split(core.NewDocument("\n\n\n", nil)), "separator-only content has nothing to index")
}

func TestWindows_SeparatorBoundaries(t *testing.T) {
	s := New(WithChunkSize(20), WithChunkOverlap(0))

	windows := s.windows("aaaa\nbbbb\ncccc\ndddd\neeee")
	require.NotEmpty(t, windows)
	for _, w := range windows {
		assert.LessOrEqual(t, len(w), 20)
		assert.False(t, strings.HasPrefix(w, "\n"))
		assert.False(t, strings.HasSuffix(w, "\n"))
	}
	// Without overlap every line appears exactly once across the windows.
	assert.Equal(t, "aaaa\nbbbb\ncccc\ndddd\neeee", strings.Join(windows, "\n"))
}

func TestWindows_OverlapCarriesTrailingPieces(t *testing.T) {
	s := New(WithChunkSize(25), WithChunkOverlap(12))

	windows := s.windows("first line\nsecond one\nthird part\nfourth bit")
	require.Greater(t, len(windows), 1)
	for i := 1; i < len(windows); i++ {
		prev, cur := windows[i-1], windows[i]
		head := cur[:strings.IndexByte(cur+"\n", '\n')]
		assert.True(t, strings.HasSuffix(prev, head),
			"window %d should start with content carried from window %d: %q vs %q", i, i-1, cur, prev)
	}
}

func TestWindows_OversizePieceKeptWhole(t *testing.T) {
	s := New(WithChunkSize(10), WithChunkOverlap(2))

	long := strings.Repeat("z", 50)
	windows := s.windows("ab\n" + long + "\ncd")
	assert.Contains(t, windows, long, "a piece longer than the chunk size becomes its own window")
}
