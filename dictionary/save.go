package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// Write encodes d in format f. FormatSQLite and FormatXZ are not byte
// formats on their own; use Save for those.
func Write(w io.Writer, d *Dictionary, f Format) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, d)
	case FormatCSV:
		return WriteCSV(w, d)
	case FormatProto:
		return WriteProto(w, d)
	default:
		return fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, f)
	}
}

// Save writes d to path, picking the format from the extension. A trailing
// .xz compresses the inner format (codes.pb.xz, codes.json.xz).
func Save(path string, d *Dictionary) (err error) {
	name := path
	compress := strings.EqualFold(filepath.Ext(name), ".xz")
	if compress {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	f := formatFromExt(name)
	switch f {
	case FormatJSON, FormatCSV, FormatProto:
	default:
		return fmt.Errorf("%w: cannot save %q", ErrUnsupportedFormat, path)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dictionary file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	if !compress {
		return Write(file, d, f)
	}

	xw, err := xz.NewWriter(file)
	if err != nil {
		return fmt.Errorf("opening xz stream: %w", err)
	}
	if err := Write(xw, d, f); err != nil {
		_ = xw.Close()
		return err
	}
	if err := xw.Close(); err != nil {
		return fmt.Errorf("closing xz stream: %w", err)
	}
	return nil
}
