// Package dictionary holds community-submitted codes that override the
// generated ones for known names.
//
// A Dictionary is an immutable snapshot and is safe for concurrent use.
// Snapshots are built in memory with New, read from files with Load, or
// taken from a SQLite submission Store.
package dictionary

import (
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/zeebo/blake3"
)

var (
	// ErrInvalidCode indicates a code that is not dash-joined groups of 1-3
	// uppercase letters or digits.
	ErrInvalidCode = errors.New("dictionary: invalid code")

	// ErrEmptyName indicates an entry whose name is blank.
	ErrEmptyName = errors.New("dictionary: empty name")

	// ErrUnsupportedFormat indicates a file whose format could not be determined.
	ErrUnsupportedFormat = errors.New("dictionary: unsupported format")

	// ErrEntryNotFound indicates a name missing from a Store.
	ErrEntryNotFound = errors.New("dictionary: entry not found")
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{1,3}(-[A-Z0-9]{1,3})*$`)

// IsValidCode reports whether code is one or more groups of 1-3 characters
// from [A-Z0-9] joined by dashes.
func IsValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// Entry is a single name to code mapping.
type Entry struct {
	Name string
	Code string
}

// Dictionary maps exact names to pre-assigned codes.
type Dictionary struct {
	entries map[string]string
}

// New builds a Dictionary from a name to code mapping. Names are trimmed of
// surrounding whitespace; every code must satisfy IsValidCode.
func New(entries map[string]string) (*Dictionary, error) {
	d := &Dictionary{entries: make(map[string]string, len(entries))}
	for name, code := range entries {
		if err := d.put(name, code); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// FromEntries builds a Dictionary from an ordered list; later entries win.
func FromEntries(entries []Entry) (*Dictionary, error) {
	d := &Dictionary{entries: make(map[string]string, len(entries))}
	for _, e := range entries {
		if err := d.put(e.Name, e.Code); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dictionary) put(name, code string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w (code %q)", ErrEmptyName, code)
	}
	code = strings.TrimSpace(code)
	if !IsValidCode(code) {
		return fmt.Errorf("%w: %q for %q", ErrInvalidCode, code, name)
	}
	d.entries[name] = code
	return nil
}

// Lookup returns the code assigned to name. A nil Dictionary is empty.
func (d *Dictionary) Lookup(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	code, ok := d.entries[name]
	return code, ok
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Entries returns all entries sorted by name.
func (d *Dictionary) Entries() []Entry {
	if d == nil {
		return nil
	}
	names := lo.Keys(d.entries)
	sort.Strings(names)

	return lo.Map(names, func(name string, _ int) Entry {
		return Entry{Name: name, Code: d.entries[name]}
	})
}

// Map returns a copy of the entries as a plain map.
func (d *Dictionary) Map() map[string]string {
	if d == nil {
		return map[string]string{}
	}
	return lo.Assign(d.entries)
}

// Digest returns the hex BLAKE3 hash of the sorted entries. Two dictionaries
// with the same contents have the same digest regardless of source format.
func (d *Dictionary) Digest() string {
	h := blake3.New()
	for _, e := range d.Entries() {
		_, _ = fmt.Fprintf(h, "%s\t%s\n", e.Name, e.Code)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Merge returns a new Dictionary with the entries of d followed by others.
// On duplicate names the later dictionary wins.
func (d *Dictionary) Merge(others ...*Dictionary) *Dictionary {
	all := append([]*Dictionary{d}, others...)
	merged := &Dictionary{entries: make(map[string]string)}
	for _, o := range all {
		if o == nil {
			continue
		}
		for name, code := range o.entries {
			merged.entries[name] = code
		}
	}
	return merged
}

// NamesForCode returns the names assigned code, sorted. This is the only
// decoding available; generated codes cannot be reversed.
func (d *Dictionary) NamesForCode(code string) []string {
	return lo.FilterMap(d.Entries(), func(e Entry, _ int) (string, bool) {
		return e.Name, e.Code == code
	})
}
