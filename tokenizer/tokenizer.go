// Package tokenizer splits names and phrases into alphanumeric words.
package tokenizer

// Token represents an alphanumeric run with its position in the folded text.
type Token struct {
	Text  string
	Start int // byte offset in folded text
	End   int // byte offset in folded text
}

// Tokenize folds text to the Latin alphabet and returns its maximal runs of
// ASCII letters and digits, in order. Every other character, including
// whitespace, punctuation, hyphens and unfoldable scripts, is a separator.
func Tokenize(text string) []Token {
	return Split(Fold(text))
}

// Split returns the alphanumeric runs of already folded text.
func Split(folded string) []Token {
	if folded == "" {
		return nil
	}

	var tokens []Token
	start := -1

	// Byte-wise scan: multi-byte runes never contain ASCII bytes, so they
	// always fall on the separator branch.
	for i := 0; i < len(folded); i++ {
		if isAlnum(folded[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, Token{Text: folded[start:i], Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: folded[start:], Start: start, End: len(folded)})
	}

	return tokens
}

// Words returns just the token texts of Tokenize(text).
func Words(text string) []string {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return words
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
