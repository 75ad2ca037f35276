package rolema

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
// Encoding itself never fails; these cover dictionary loading.
var (
	// ErrDictionaryNotFound indicates the dictionary file does not exist.
	ErrDictionaryNotFound = errors.New("rolema: dictionary file not found")

	// ErrInvalidDictionary indicates the dictionary file exists but is malformed.
	ErrInvalidDictionary = errors.New("rolema: invalid dictionary")

	// ErrUnsupportedFormat indicates the dictionary file format is not recognized.
	ErrUnsupportedFormat = errors.New("rolema: unsupported dictionary format")
)
