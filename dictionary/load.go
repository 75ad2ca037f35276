package dictionary

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ulikunitz/xz"
)

// Format identifies a dictionary file encoding.
type Format int

const (
	// FormatUnknown means the format could not be determined.
	FormatUnknown Format = iota
	// FormatJSON is a flat JSON object of name to code.
	FormatJSON
	// FormatCSV is name,code records.
	FormatCSV
	// FormatProto is a serialized google.protobuf.Struct.
	FormatProto
	// FormatSQLite is a SQLite database with a codes table.
	FormatSQLite
	// FormatXZ is any of the byte formats compressed with xz.
	FormatXZ
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	case FormatProto:
		return "proto"
	case FormatSQLite:
		return "sqlite"
	case FormatXZ:
		return "xz"
	default:
		return "unknown"
	}
}

// Detect determines the format of data. Content signatures are checked
// first; formats without one (CSV, protobuf) are recognized by the
// extension of name.
func Detect(data []byte, name string) Format {
	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is("application/x-xz"):
		return FormatXZ
	case mtype.Is("application/vnd.sqlite3"):
		return FormatSQLite
	case mtype.Is("application/json"):
		return FormatJSON
	}

	if f := formatFromExt(name); f != FormatUnknown {
		return f
	}

	if mtype.Is("text/csv") {
		return FormatCSV
	}
	return FormatUnknown
}

func formatFromExt(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	case ".pb", ".binpb":
		return FormatProto
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	case ".xz":
		return FormatXZ
	default:
		return FormatUnknown
	}
}

// Load reads a dictionary file from disk.
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	// SQLite files are opened in place rather than copied
	if Detect(data, path) == FormatSQLite {
		return loadSQLite(path)
	}
	return Decode(data, path)
}

// LoadFS reads a dictionary file from fsys.
func LoadFS(fsys fs.FS, name string) (*Dictionary, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return Decode(data, name)
}

// Decode parses dictionary bytes. name is only used for extension based
// format detection and may be empty.
func Decode(data []byte, name string) (*Dictionary, error) {
	return decode(data, name, true)
}

func decode(data []byte, name string, allowXZ bool) (*Dictionary, error) {
	switch f := Detect(data, name); f {
	case FormatJSON:
		return decodeJSON(data)
	case FormatCSV:
		return decodeCSV(data)
	case FormatProto:
		return decodeProto(data)
	case FormatSQLite:
		return decodeSQLite(data)
	case FormatXZ:
		if !allowXZ {
			return nil, fmt.Errorf("%w: nested xz in %q", ErrUnsupportedFormat, name)
		}
		inner, err := decompressXZ(data)
		if err != nil {
			return nil, err
		}
		return decode(inner, strings.TrimSuffix(name, filepath.Ext(name)), false)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

func decompressXZ(data []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening xz stream: %w", err)
	}
	inner, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompressing xz: %w", err)
	}
	return inner, nil
}

// decodeSQLite spills an in-memory database image to a temporary file so it
// can be opened by the driver.
func decodeSQLite(data []byte) (*Dictionary, error) {
	tmp, err := os.CreateTemp("", "rolema-dict-*.db")
	if err != nil {
		return nil, fmt.Errorf("creating temp database: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("writing temp database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("writing temp database: %w", err)
	}

	return loadSQLite(tmp.Name())
}

func loadSQLite(path string) (*Dictionary, error) {
	ctx := context.Background()
	s, err := openStore(ctx, path, false)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.Close() }()

	return s.Snapshot(ctx)
}
