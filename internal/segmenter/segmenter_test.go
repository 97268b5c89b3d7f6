package segmenter

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	internalErrors "github.com/subinsoman/pdf/internal/errors"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
		overlap  int
		want     []string
	}{
		{"empty text", "", 1000, 100, []string{}},
		{"text shorter than max", "hello", 1000, 100, []string{"hello"}},
		{"text exactly max", "abcd", 4, 1, []string{"abcd"}},
		{"two chunks with overlap", "abcdef", 4, 1, []string{"abcd", "def"}},
		{"no overlap", "abcdef", 3, 0, []string{"abc", "def"}},
		{"short tail emitted once", "abcdefg", 3, 1, []string{"abc", "cde", "efg"}},
		{"overlap carries into each chunk", "abcdefghij", 4, 2, []string{"abcd", "cdef", "efgh", "ghij"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Segment(tt.text, tt.maxChars, tt.overlap)
			if err != nil {
				t.Fatalf("Segment(%q, %d, %d) returned error: %v", tt.text, tt.maxChars, tt.overlap, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q, %d, %d) = %v, want %v", tt.text, tt.maxChars, tt.overlap, got, tt.want)
			}
		})
	}
}

func TestSegmentInvalidParameters(t *testing.T) {
	tests := []struct {
		name     string
		maxChars int
		overlap  int
	}{
		{"zero max chars", 0, 0},
		{"negative max chars", -10, 0},
		{"negative overlap", 10, -1},
		{"overlap equals max chars", 10, 10},
		{"overlap exceeds max chars", 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Segment("some text", tt.maxChars, tt.overlap)
			if err == nil {
				t.Fatalf("Segment with max_chars=%d overlap=%d expected error, got nil", tt.maxChars, tt.overlap)
			}
			if !errors.Is(err, internalErrors.ErrInvalidSegmentation) {
				t.Errorf("expected ErrInvalidSegmentation, got %v", err)
			}
		})
	}
}

func TestSegmentDeterminism(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 50)

	first, err := Segment(text, 100, 20)
	if err != nil {
		t.Fatalf("Segment returned error: %v", err)
	}
	second, err := Segment(text, 100, 20)
	if err != nil {
		t.Fatalf("Segment returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("re-running Segment on identical input produced different output")
	}
}

func TestSegmentCoverage(t *testing.T) {
	// Removing the repeated overlap-length prefix from every chunk after
	// the first must reconstruct the original text exactly.
	text := strings.Repeat("abcdefghij", 37)
	maxChars, overlap := 64, 16

	chunks, err := Segment(text, maxChars, overlap)
	if err != nil {
		t.Fatalf("Segment returned error: %v", err)
	}

	var rebuilt strings.Builder
	for i, chunk := range chunks {
		runes := []rune(chunk)
		if i == 0 {
			rebuilt.WriteString(chunk)
			continue
		}
		if len(runes) <= overlap {
			t.Fatalf("chunk %d is not longer than the overlap (%d runes)", i, len(runes))
		}
		rebuilt.WriteString(string(runes[overlap:]))
	}
	if rebuilt.String() != text {
		t.Error("concatenated non-overlapping chunk suffixes did not reconstruct the input")
	}
}

func TestSegmentBoundaries(t *testing.T) {
	text := strings.Repeat("x", 250)
	maxChars, overlap := 100, 25

	chunks, err := Segment(text, maxChars, overlap)
	if err != nil {
		t.Fatalf("Segment returned error: %v", err)
	}

	for i, chunk := range chunks {
		if got := len([]rune(chunk)); got > maxChars {
			t.Errorf("chunk %d has %d runes, exceeds max_chars %d", i, got, maxChars)
		}
	}

	last := chunks[len(chunks)-1]
	if !strings.HasSuffix(text, last) {
		t.Error("final chunk does not end at the text's end")
	}
}

func TestSegmentMultiByteText(t *testing.T) {
	// Rune-based slicing must never split a multi-byte character.
	text := strings.Repeat("héllo wörld ", 30)

	chunks, err := Segment(text, 25, 5)
	if err != nil {
		t.Fatalf("Segment returned error: %v", err)
	}
	for i, chunk := range chunks {
		if !strings.Contains(text, chunk) {
			t.Errorf("chunk %d is not a substring of the input: %q", i, chunk)
		}
		if len([]rune(chunk)) > 25 {
			t.Errorf("chunk %d exceeds max_chars in runes", i)
		}
	}
}
