package clip

import (
	"errors"
	"testing"
)

func stub(t *testing.T, isUnsupported bool, err error) *string {
	t.Helper()
	var copied string
	oldWrite, oldUnsupported := writeAll, unsupported
	writeAll = func(s string) error {
		copied = s
		return err
	}
	unsupported = func() bool { return isUnsupported }
	t.Cleanup(func() { writeAll, unsupported = oldWrite, oldUnsupported })
	return &copied
}

func TestCopy(t *testing.T) {
	copied := stub(t, false, nil)
	if err := Copy("EIF-TOW"); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if *copied != "EIF-TOW" {
		t.Errorf("expected EIF-TOW on clipboard, got %q", *copied)
	}
}

func TestCopy_Empty(t *testing.T) {
	copied := stub(t, true, nil)
	if err := Copy(""); err != nil {
		t.Errorf("expected no error for empty text, got %v", err)
	}
	if *copied != "" {
		t.Error("expected clipboard untouched")
	}
}

func TestCopy_Unavailable(t *testing.T) {
	stub(t, true, nil)
	if err := Copy("EIF-TOW"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestCopy_WriteError(t *testing.T) {
	boom := errors.New("exit status 1")
	stub(t, false, boom)
	if err := Copy("EIF-TOW"); !errors.Is(err, boom) {
		t.Errorf("expected wrapped write error, got %v", err)
	}
}
