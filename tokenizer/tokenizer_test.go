package tokenizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"two words", "Eiffel Tower", []string{"Eiffel", "Tower"}},
		{"hyphenated", "Coca-Cola Can", []string{"Coca", "Cola", "Can"}},
		{"punctuation", "McDonald's Big Mac!", []string{"McDonald", "s", "Big", "Mac"}},
		{"digits", "iPhone 15 Pro Max", []string{"iPhone", "15", "Pro", "Max"}},
		{"mixed alnum", "R2D2 and C3PO", []string{"R2D2", "and", "C3PO"}},
		{"extra separators", "  --Hello,,  world--  ", []string{"Hello", "world"}},
		{"accents folded", "Crème Brûlée", []string{"Creme", "Brulee"}},
		{"non-latin separates", "Tokyo東京Tower", []string{"Tokyo", "Tower"}},
		{"only punctuation", "?!-- ...", nil},
		{"empty string", "", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Words(tc.input)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Words(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestTokenize_Offsets(t *testing.T) {
	text := "Coca-Cola Can"
	tokens := Tokenize(text)

	want := []Token{
		{Text: "Coca", Start: 0, End: 4},
		{Text: "Cola", Start: 5, End: 9},
		{Text: "Can", Start: 10, End: 13},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Fatalf("Tokenize(%q) mismatch (-want +got):\n%s", text, diff)
	}

	// Offsets index into the folded text
	folded := Fold(text)
	for i, tok := range tokens {
		if folded[tok.Start:tok.End] != tok.Text {
			t.Errorf("token %d: folded[%d:%d] = %q, want %q", i, tok.Start, tok.End, folded[tok.Start:tok.End], tok.Text)
		}
	}
}

func TestTokenize_OffsetsAfterFolding(t *testing.T) {
	tokens := Tokenize("Straße 5")
	want := []Token{
		{Text: "Strasse", Start: 0, End: 7},
		{Text: "5", Start: 8, End: 9},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}

func TestSplit_NeverEmptyTokens(t *testing.T) {
	inputs := []string{"a", "-a-", "a--b", "---", "a b  c", "ab\tcd\n"}
	for _, in := range inputs {
		for _, tok := range Split(in) {
			if tok.Text == "" {
				t.Errorf("Split(%q) produced an empty token", in)
			}
			if tok.End-tok.Start != len(tok.Text) {
				t.Errorf("Split(%q): token %q has span %d-%d", in, tok.Text, tok.Start, tok.End)
			}
		}
	}
}
