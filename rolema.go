package rolema

import (
	"log/slog"
	"strings"

	"github.com/jamesainslie/rolema/tokenizer"
)

const (
	// Separator joins the groups of a code.
	Separator = "-"

	// groupLen is the maximum number of characters taken from each word.
	groupLen = 3
)

// Dictionary supplies pre-assigned codes that take precedence over the
// generated ones. *dictionary.Dictionary and Map implement it.
type Dictionary interface {
	Lookup(name string) (code string, ok bool)
}

// Map is a Dictionary backed by a plain map.
type Map map[string]string

// Lookup returns the code stored under name.
func (m Map) Lookup(name string) (string, bool) {
	code, ok := m[name]
	return code, ok
}

// Conversion is the full record of encoding one input.
type Conversion struct {
	Original       string   // input as given
	Normalized     string   // input folded to the Latin alphabet
	Words          []string // words that contributed a group
	Groups         []string // one group per word, or the dictionary code split on Separator
	Code           string   // groups joined with Separator
	Compact        string   // groups joined without separator
	FromDictionary bool     // Code came from the dictionary
}

// Encoder converts text into codes. It is safe for concurrent use.
type Encoder struct {
	stopWords map[string]struct{}
	wordCodes map[string]string
	logger    *slog.Logger
}

// New creates an Encoder. With no options it implements the plain rules:
// every word contributes its first three characters.
func New(opts ...Option) *Encoder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Encoder{
		stopWords: cfg.stopWords,
		wordCodes: cfg.wordCodes,
		logger:    cfg.logger,
	}
}

var plain = New()

// Encode returns the code for text using the plain rules. If dict is
// non-nil and holds an entry for text, that entry is returned unchanged.
func Encode(text string, dict Dictionary) string {
	return plain.Encode(text, dict)
}

// Encode returns the code for text, consulting dict first.
func (e *Encoder) Encode(text string, dict Dictionary) string {
	return e.Convert(text, dict).Code
}

// Convert encodes text and returns every intermediate step.
//
// The dictionary is tried with the exact text first, then with surrounding
// whitespace trimmed. Matching is case-sensitive.
func (e *Encoder) Convert(text string, dict Dictionary) Conversion {
	conv := Conversion{
		Original:   text,
		Normalized: tokenizer.Fold(text),
	}

	if code, ok := lookup(dict, text); ok {
		e.logger.Debug("dictionary hit", "text", text, "code", code)
		conv.Code = code
		if code != "" {
			conv.Groups = strings.Split(code, Separator)
		}
		conv.Compact = strings.Join(conv.Groups, "")
		conv.FromDictionary = true
		return conv
	}

	tokens := tokenizer.Split(conv.Normalized)
	if len(tokens) == 0 {
		return conv
	}

	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	conv.Words = e.dropStopWords(words)

	conv.Groups = make([]string, len(conv.Words))
	for i, w := range conv.Words {
		conv.Groups[i] = e.group(w)
	}

	conv.Code = strings.Join(conv.Groups, Separator)
	conv.Compact = strings.Join(conv.Groups, "")
	return conv
}

// group derives the code group for a single word.
func (e *Encoder) group(word string) string {
	if code, ok := e.wordCodes[strings.ToLower(word)]; ok {
		return code
	}
	return Group(word)
}

// dropStopWords removes stop words, keeping the input if nothing would remain.
func (e *Encoder) dropStopWords(words []string) []string {
	if len(e.stopWords) == 0 {
		return words
	}

	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := e.stopWords[strings.ToLower(w)]; !stop {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return words
	}
	return kept
}

// Group returns the uppercased first three characters of an ASCII alphanumeric
// word. Words shorter than three characters are returned whole.
func Group(word string) string {
	if len(word) > groupLen {
		word = word[:groupLen]
	}
	return strings.ToUpper(word)
}

func lookup(dict Dictionary, text string) (string, bool) {
	if dict == nil {
		return "", false
	}
	if code, ok := dict.Lookup(text); ok {
		return code, true
	}
	if trimmed := strings.TrimSpace(text); trimmed != text {
		return dict.Lookup(trimmed)
	}
	return "", false
}
