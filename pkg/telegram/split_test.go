package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplitReplyParts(t *testing.T) {
	t.Run("splits at separator with surrounding whitespace", func(t *testing.T) {
		parts := splitReplyParts("Olá! Seja bem-vindo.\n---\nComo posso ajudar?")
		assert.Equal(t, []string{"Olá! Seja bem-vindo.", "Como posso ajudar?"}, parts)
	})

	t.Run("inline separator splits too", func(t *testing.T) {
		parts := splitReplyParts("Primeira --- Segunda")
		assert.Equal(t, []string{"Primeira", "Segunda"}, parts)
	})

	t.Run("no separator yields single part", func(t *testing.T) {
		parts := splitReplyParts("Mensagem única")
		assert.Equal(t, []string{"Mensagem única"}, parts)
	})

	t.Run("empty parts are dropped", func(t *testing.T) {
		parts := splitReplyParts("---\nSó isso\n---\n---")
		assert.Equal(t, []string{"Só isso"}, parts)
	})

	t.Run("whitespace-only input yields nothing", func(t *testing.T) {
		assert.Empty(t, splitReplyParts("  \n "))
	})
}

func TestChunkMessage(t *testing.T) {
	t.Run("short text is untouched", func(t *testing.T) {
		chunks := chunkMessage("oi", messageChunkLen)
		assert.Equal(t, []string{"oi"}, chunks)
	})

	t.Run("long text splits at chunk size", func(t *testing.T) {
		long := strings.Repeat("a", messageChunkLen*2+5)
		chunks := chunkMessage(long, messageChunkLen)
		assert.Len(t, chunks, 3)
		assert.Len(t, chunks[0], messageChunkLen)
		assert.Len(t, chunks[1], messageChunkLen)
		assert.Len(t, chunks[2], 5)
		assert.Equal(t, long, strings.Join(chunks, ""))
	})

	t.Run("multi-byte runes are never cut", func(t *testing.T) {
		// "ção" is 3 runes but 5 bytes; byte-based slicing would cut
		// inside "ç" or "ã" at some chunk boundary.
		long := strings.Repeat("ção", messageChunkLen)
		chunks := chunkMessage(long, messageChunkLen)
		for i, chunk := range chunks {
			assert.True(t, utf8.ValidString(chunk), "chunk %d is not valid UTF-8", i)
			assert.LessOrEqual(t, utf8.RuneCountInString(chunk), messageChunkLen)
		}
		assert.Equal(t, long, strings.Join(chunks, ""))
	})
}
