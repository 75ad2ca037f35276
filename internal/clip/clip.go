// Package clip copies codes to the system clipboard.
package clip

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable indicates no clipboard utility was found (xclip, xsel,
// wl-copy, pbcopy or the Windows clipboard).
var ErrUnavailable = errors.New("clip: clipboard unavailable")

var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// Copy places text on the system clipboard. Empty text is a no-op.
func Copy(text string) error {
	if text == "" {
		return nil
	}
	if unsupported() {
		return ErrUnavailable
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("clip: %w", err)
	}
	return nil
}
