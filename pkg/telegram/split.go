package telegram

import (
	"regexp"
	"strings"
)

// Flow authors separate multi-bubble replies with a literal "---".
var partSeparatorRe = regexp.MustCompile(`\s*---\s*`)

// splitReplyParts breaks an assistant reply into the individual messages
// to deliver. Empty parts are dropped; a reply without separators comes
// back as a single part.
func splitReplyParts(text string) []string {
	parts := partSeparatorRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// chunkMessage splits text into pieces below the platform's 4096-char
// message cap. The cap counts characters, not bytes, and cuts land on
// rune boundaries so accented text survives intact.
func chunkMessage(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}
	var chunks []string
	for len(runes) > size {
		chunks = append(chunks, string(runes[:size]))
		runes = runes[size:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}
