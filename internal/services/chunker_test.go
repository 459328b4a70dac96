package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText_ShortTextSingleChunk(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("We are hiring a Go developer.", 1000, 100)

	require.Len(t, chunks, 1)
	assert.Equal(t, "We are hiring a Go developer.", chunks[0])
}

func TestChunkText_SplitsOnParagraphs(t *testing.T) {
	chunker := NewTextChunker()

	para := strings.Repeat("word ", 50)
	text := para + "\n\n" + para + "\n\n" + para

	chunks := chunker.ChunkText(text, 300, 0)

	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.NotEmpty(t, strings.TrimSpace(chunk))
		assert.LessOrEqual(t, len(chunk), 300)
	}
}

func TestChunkText_LongParagraphFallsBackToSentences(t *testing.T) {
	chunker := NewTextChunker()

	text := strings.TrimSpace(strings.Repeat("This is a sentence about the role. ", 40))

	chunks := chunker.ChunkText(text, 200, 0)

	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 200)
	}
}

func TestChunkText_EmptyInput(t *testing.T) {
	chunker := NewTextChunker()
	assert.Empty(t, chunker.ChunkText("", 1000, 100))
	assert.Empty(t, chunker.ChunkText("\n\n\n\n", 1000, 100))
}

func TestChunkText_OverlapCarriesTrailingText(t *testing.T) {
	chunker := NewTextChunker()

	first := strings.Repeat("a", 90)
	second := strings.Repeat("b", 90)
	chunks := chunker.ChunkText(first+"\n\n"+second, 100, 20)

	require.Len(t, chunks, 2)
	// The second chunk starts with the tail of the first.
	assert.True(t, strings.HasPrefix(chunks[1], strings.Repeat("a", 20)))
}

func TestLastNRunes(t *testing.T) {
	assert.Equal(t, "llo", lastNRunes("hello", 3))
	assert.Equal(t, "hello", lastNRunes("hello", 10))
	assert.Equal(t, "", lastNRunes("hello", 0))
	assert.Equal(t, "ção", lastNRunes("avaliação", 3))
}
