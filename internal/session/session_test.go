package session

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/jamesainslie/rolema"
)

var fixedTime = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestSession(opts ...Option) *Session {
	return New(append([]Option{WithClock(func() time.Time { return fixedTime })}, opts...)...)
}

func TestSession_RecordAndHistory(t *testing.T) {
	s := newTestSession()
	enc := rolema.New()

	for _, text := range []string{"Eiffel Tower", "", "Coca-Cola Can"} {
		s.Record(enc.Convert(text, nil))
	}

	history := s.History()
	got := make([]string, len(history))
	for i, r := range history {
		got[i] = r.Code
	}
	if diff := cmp.Diff([]string{"EIF-TOW", "COC-COL-CAN"}, got); diff != "" {
		t.Errorf("history codes mismatch (-want +got):\n%s", diff)
	}
	if !history[0].At.Equal(fixedTime) {
		t.Errorf("expected injected timestamp, got %v", history[0].At)
	}
}

func TestSession_Stats(t *testing.T) {
	s := newTestSession(WithVersion("1.2.3"), WithDictionarySize(4))
	enc := rolema.New()
	dict := rolema.Map{"Sydney Opera House": "SYD-OPE-HOU"}

	for _, text := range []string{"Eiffel Tower", "Eiffel Tower", "Sydney Opera House", "Big Ben"} {
		s.Record(enc.Convert(text, dict))
	}
	s.Clear()

	want := Stats{
		Version:           "1.2.3",
		SessionID:         s.ID(),
		TotalConversions:  4,
		UniqueCodes:       3,
		DictionaryHits:    1,
		DictionaryEntries: 4,
	}
	if diff := cmp.Diff(want, s.Stats()); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
	if len(s.History()) != 0 {
		t.Error("expected empty history after Clear")
	}
}

func TestSession_StatsReadsDictionarySize(t *testing.T) {
	size := 2
	s := newTestSession(WithDictionarySizeFunc(func() int { return size }))

	if got := s.Stats().DictionaryEntries; got != 2 {
		t.Errorf("expected 2 entries, got %d", got)
	}
	size = 5
	if got := s.Stats().DictionaryEntries; got != 5 {
		t.Errorf("expected 5 entries after the dictionary grew, got %d", got)
	}
}

func TestSession_ID(t *testing.T) {
	a, b := New(), New()
	if _, err := uuid.Parse(a.ID()); err != nil {
		t.Errorf("ID %q is not a UUID: %v", a.ID(), err)
	}
	if a.ID() == b.ID() {
		t.Error("expected distinct session IDs")
	}
}

func TestSession_ExportCSV(t *testing.T) {
	s := newTestSession()
	enc := rolema.New()
	s.Record(enc.Convert("Eiffel Tower", nil))
	s.Record(enc.Convert("Robot, Learning Machine", nil))

	var buf bytes.Buffer
	n, err := s.ExportCSV(&buf)
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading exported CSV: %v", err)
	}
	want := [][]string{
		{"Original", "RO-LE-MA Code", "Compact", "Groups", "Timestamp", "Session"},
		{"Eiffel Tower", "EIF-TOW", "EIFTOW", "2", "2026-10-19T12:00:00Z", s.ID()},
		{"Robot, Learning Machine", "ROB-LEA-MAC", "ROBLEAMAC", "3", "2026-10-19T12:00:00Z", s.ID()},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("exported CSV mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_ExportFile(t *testing.T) {
	s := newTestSession()
	s.Record(rolema.New().Convert("Liberty Statue", nil))

	path := filepath.Join(t.TempDir(), "history.csv")
	if _, err := s.ExportFile(path); err != nil {
		t.Fatalf("ExportFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Contains(data, []byte("LIB-STA")) {
		t.Errorf("expected LIB-STA in export, got %q", data)
	}
}

func TestSession_ExportFile_BadPath(t *testing.T) {
	s := newTestSession()
	if _, err := s.ExportFile(filepath.Join(t.TempDir(), "missing", "history.csv")); err == nil {
		t.Error("expected error for missing directory")
	}
}
