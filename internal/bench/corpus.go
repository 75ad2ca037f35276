// Package bench measures how well generated codes tell names apart.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Header contains metadata parsed from corpus file header comments.
type Header struct {
	Source string
	Title  string
}

// ParseHeader extracts metadata from leading "# Key: value" comments.
// Returns the header, remaining text after header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	bodyStart := len(text)
	var offset int

	for scanner.Scan() {
		line := scanner.Text()
		lineStart := offset
		offset += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineStart
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	return h, text[bodyStart:], nil
}

// Entry is one name from a corpus, with an optional expected code.
type Entry struct {
	Name     string
	Expected string
	Line     int // 1-based line within the body
}

// ParseEntries reads one entry per line: "name" or "name<TAB>expected".
// Blank lines and lines starting with # are skipped.
func ParseEntries(body string) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(strings.NewReader(body))

	for line := 1; scanner.Scan(); line++ {
		raw := scanner.Text()
		if text := strings.TrimSpace(raw); text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		name, expected, _ := strings.Cut(raw, "\t")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("line %d: empty name", line)
		}
		entries = append(entries, Entry{
			Name:     name,
			Expected: strings.TrimSpace(expected),
			Line:     line,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan entries: %w", err)
	}
	return entries, nil
}

// Corpus represents a loaded name list.
type Corpus struct {
	ID      string // filename without extension
	Source  string
	Title   string
	Entries []Entry
}

// LoadCorpusFile loads and parses a corpus file.
func LoadCorpusFile(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	entries, err := ParseEntries(body)
	if err != nil {
		return nil, fmt.Errorf("parse entries: %w", err)
	}

	base := filepath.Base(path)
	return &Corpus{
		ID:      strings.TrimSuffix(base, filepath.Ext(base)),
		Source:  header.Source,
		Title:   header.Title,
		Entries: entries,
	}, nil
}

// LoadCorpus loads all .txt and .tsv corpus files from a directory.
func LoadCorpus(dir string) ([]*Corpus, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var corpora []*Corpus
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".txt", ".tsv":
		default:
			continue
		}

		c, err := LoadCorpusFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		corpora = append(corpora, c)
	}

	return corpora, nil
}

// Flatten concatenates the entries of several corpora.
func Flatten(corpora []*Corpus) []Entry {
	var all []Entry
	for _, c := range corpora {
		all = append(all, c.Entries...)
	}
	return all
}
