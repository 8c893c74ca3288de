package domain

import "strings"

// ChunkSegments packs the segments into as few chunks as possible without
// letting a chunk exceed limit and without ever splitting inside a segment.
// A single segment longer than limit is emitted whole as its own chunk.
// Concatenating the chunks in order reproduces the concatenated input.
func ChunkSegments(segments []string, limit int) []string {
	var chunks []string
	var buf strings.Builder

	for _, segment := range segments {
		if buf.Len() > 0 && buf.Len()+len(segment) > limit {
			chunks = append(chunks, buf.String())
			buf.Reset()
		}
		buf.WriteString(segment)
	}

	if buf.Len() > 0 {
		chunks = append(chunks, buf.String())
	}

	return chunks
}
