package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"simple words", "quick brown fox", []string{"quick", "brown", "fox"}},
		{"lowercasing", "Quick BROWN Fox", []string{"quick", "brown", "fox"}},
		{"punctuation split", "hello, world!", []string{"hello", "world"}},
		{"stop words removed", "the cat sat on the mat", []string{"cat", "sat", "mat"}},
		{"single characters dropped", "a b c cat", []string{"cat"}},
		{"numbers kept", "chapter 12 section 34", []string{"chapter", "12", "section", "34"}},
		{"hyphenated", "state-of-the-art engine", []string{"state", "art", "engine"}},
		{"underscores", "chunk_vector_index", []string{"chunk", "vector", "index"}},
		{"only symbols", "!@#$%^", []string{}},
		{"only stop words", "the of and", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsStopWord(t *testing.T) {
	if !IsStopWord("the") {
		t.Error("expected 'the' to be a stop word")
	}
	if IsStopWord("retrieval") {
		t.Error("did not expect 'retrieval' to be a stop word")
	}
}
