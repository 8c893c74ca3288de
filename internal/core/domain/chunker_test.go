package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkSegments(t *testing.T) {
	type TestCase struct {
		description string
		segments    []string
		limit       int
		want        []string
	}

	testCases := []TestCase{
		{
			description: "everything fits in one chunk",
			segments:    []string{"foo", "bar", "baz"},
			limit:       100,
			want:        []string{"foobarbaz"},
		},
		{
			description: "splits between segments",
			segments:    []string{"aaaa", "bbbb", "cc"},
			limit:       6,
			want:        []string{"aaaa", "bbbbcc"},
		},
		{
			description: "oversized segment passes through whole",
			segments:    []string{"short", "waytoolongforthelimit", "x"},
			limit:       8,
			want:        []string{"short", "waytoolongforthelimit", "x"},
		},
		{
			description: "exact fit is not split",
			segments:    []string{"aaa", "bbb"},
			limit:       6,
			want:        []string{"aaabbb"},
		},
		{
			description: "no segments, no chunks",
			segments:    nil,
			limit:       10,
			want:        nil,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			got := ChunkSegments(testCase.segments, testCase.limit)

			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestChunkSegmentsTelegramLimit(t *testing.T) {
	segments := []string{strings.Repeat("a", 4000), strings.Repeat("b", 200)}

	got := ChunkSegments(segments, 4096)

	assert.Equal(t, []string{segments[0], segments[1]}, got)
}

func TestChunkSegmentsRoundTrip(t *testing.T) {
	segments := []string{"one ", "", "two ", strings.Repeat("x", 50), "three"}
	limit := 12

	got := ChunkSegments(segments, limit)

	assert.Equal(t, strings.Join(segments, ""), strings.Join(got, ""))
	for _, chunk := range got {
		assert.NotEmpty(t, chunk)
		if len(chunk) > limit {
			// only a lone oversized segment may exceed the limit
			assert.Equal(t, strings.Repeat("x", 50), chunk)
		}
	}
}
