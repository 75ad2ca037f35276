package rolema

import (
	"log/slog"
	"regexp"
	"strings"
)

// Option configures an Encoder.
type Option func(*config)

type config struct {
	stopWords map[string]struct{}
	wordCodes map[string]string
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
	}
}

// DefaultStopWords are the filler words dropped by WithDefaultStopWords.
var DefaultStopWords = []string{"the", "and", "of", "for", "in", "on", "at", "by", "a", "an"}

// DefaultWordCodes are well-known brand abbreviations used by
// WithDefaultWordCodes.
var DefaultWordCodes = map[string]string{
	"mcdonalds": "MCD",
	"kfc":       "KFC",
	"bmw":       "BMW",
	"iphone":    "IPH",
	"usa":       "USA",
	"uk":        "UKX",
	"ai":        "AIX",
}

var groupPattern = regexp.MustCompile(`^[A-Z0-9]{1,3}$`)

// WithStopWords drops words matching any of words (case-insensitive) unless
// that would leave no words at all.
func WithStopWords(words ...string) Option {
	return func(c *config) {
		if c.stopWords == nil {
			c.stopWords = make(map[string]struct{}, len(words))
		}
		for _, w := range words {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				c.stopWords[w] = struct{}{}
			}
		}
	}
}

// WithDefaultStopWords drops DefaultStopWords.
func WithDefaultStopWords() Option {
	return WithStopWords(DefaultStopWords...)
}

// WithWordCodes replaces the group for specific words (keyed
// case-insensitively). Codes that are not 1-3 characters from [A-Z0-9] are
// ignored.
func WithWordCodes(codes map[string]string) Option {
	return func(c *config) {
		if c.wordCodes == nil {
			c.wordCodes = make(map[string]string, len(codes))
		}
		for word, code := range codes {
			word = strings.ToLower(strings.TrimSpace(word))
			if word == "" || !groupPattern.MatchString(code) {
				continue
			}
			c.wordCodes[word] = code
		}
	}
}

// WithDefaultWordCodes applies DefaultWordCodes.
func WithDefaultWordCodes() Option {
	return WithWordCodes(DefaultWordCodes)
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
