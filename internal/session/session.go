// Package session tracks the conversions made during one CLI run: history,
// running statistics and CSV export.
package session

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/jamesainslie/rolema"
)

// Record is one conversion in the history.
type Record struct {
	rolema.Conversion
	At time.Time
}

// Stats summarizes a session. Totals survive Clear; only the history is
// dropped.
type Stats struct {
	Version           string
	SessionID         string
	TotalConversions  int
	UniqueCodes       int
	DictionaryHits    int
	DictionaryEntries int
}

// Session is safe for concurrent use.
type Session struct {
	id       uuid.UUID
	version  string
	dictSize func() int
	now      func() time.Time

	mu      sync.Mutex
	history []Record
	codes   []string
	hits    int
}

// Option configures a Session.
type Option func(*Session)

// WithVersion sets the version reported in Stats.
func WithVersion(v string) Option {
	return func(s *Session) { s.version = v }
}

// WithDictionarySize reports a fixed dictionary entry count in Stats.
func WithDictionarySize(n int) Option {
	return WithDictionarySizeFunc(func() int { return n })
}

// WithDictionarySizeFunc reports fn() as the dictionary entry count, read
// each time Stats is called.
func WithDictionarySizeFunc(fn func() int) Option {
	return func(s *Session) {
		if fn != nil {
			s.dictSize = fn
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// New starts a session with a random ID.
func New(opts ...Option) *Session {
	s := &Session{
		id:      uuid.New(),
		version:  "dev",
		dictSize: func() int { return 0 },
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id.String()
}

// Record appends a conversion to the history. Conversions without a code
// (empty input) are not recorded.
func (s *Session) Record(conv rolema.Conversion) (Record, bool) {
	if conv.Code == "" {
		return Record{}, false
	}

	rec := Record{Conversion: conv, At: s.now()}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, rec)
	s.codes = append(s.codes, conv.Code)
	if conv.FromDictionary {
		s.hits++
	}
	return rec, true
}

// History returns a copy of the recorded conversions, oldest first.
func (s *Session) History() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.history...)
}

// Clear drops the history.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// Stats returns running totals.
func (s *Session) Stats() Stats {
	entries := s.dictSize()

	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Version:           s.version,
		SessionID:         s.id.String(),
		TotalConversions:  len(s.codes),
		UniqueCodes:       len(lo.Uniq(s.codes)),
		DictionaryHits:    s.hits,
		DictionaryEntries: entries,
	}
}

var csvHeader = []string{"Original", "RO-LE-MA Code", "Compact", "Groups", "Timestamp", "Session"}

// ExportCSV writes the history as CSV and returns the number of rows.
func (s *Session) ExportCSV(w io.Writer) (int, error) {
	history := s.History()

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range history {
		row := []string{
			r.Original,
			r.Code,
			r.Compact,
			strconv.Itoa(len(r.Groups)),
			r.At.Format(time.RFC3339),
			s.ID(),
		}
		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("writing CSV: %w", err)
	}
	return len(history), nil
}

// ExportFile writes the history to a CSV file at path.
func (s *Session) ExportFile(path string) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	return s.ExportCSV(f)
}
