package rolema

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jamesainslie/rolema/dictionary"
)

// OpenDictionary loads a community dictionary file. JSON, CSV, protobuf and
// SQLite files are recognized, optionally xz-compressed.
func OpenDictionary(path string) (*dictionary.Dictionary, error) {
	d, err := dictionary.Load(path)
	if err != nil {
		return nil, wrapDictionaryErr(path, err)
	}
	return d, nil
}

// OpenDictionaries loads and merges several dictionary files. Later files
// win on duplicate names.
func OpenDictionaries(paths ...string) (*dictionary.Dictionary, error) {
	merged, _ := dictionary.New(nil)
	for _, path := range paths {
		d, err := OpenDictionary(path)
		if err != nil {
			return nil, err
		}
		merged = merged.Merge(d)
	}
	return merged, nil
}

func wrapDictionaryErr(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrDictionaryNotFound, path)
	case errors.Is(err, dictionary.ErrUnsupportedFormat):
		return fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDictionary, err)
	}
}
