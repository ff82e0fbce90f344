package typeface

import (
	"errors"
	"testing"
)

func TestDefaultLoads(t *testing.T) {
	tf, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	defer tf.Close()

	if !tf.Valid() {
		t.Fatal("expected default font to be valid")
	}
	if tf.BaseSize() != DefaultBaseSize {
		t.Errorf("expected base size %d, got %g", DefaultBaseSize, tf.BaseSize())
	}

	wide, ok := tf.Advance('W')
	if !ok || wide <= 0 {
		t.Fatalf("expected a positive advance for W, got %g (%v)", wide, ok)
	}
	narrow, _ := tf.Advance('i')
	if narrow >= wide {
		t.Errorf("expected i (%g) narrower than W (%g)", narrow, wide)
	}
}

// TestLoadRejectsGarbage verifies invalid data surfaces ErrInvalidFont.
func TestLoadRejectsGarbage(t *testing.T) {
	_, err := Load("garbage", []byte("not a font"), 0)
	if !errors.Is(err, ErrInvalidFont) {
		t.Fatalf("expected ErrInvalidFont, got %v", err)
	}
}

// TestFaceCache verifies faces are created once per size.
func TestFaceCache(t *testing.T) {
	tf, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	defer tf.Close()

	a, err := tf.Face(24)
	if err != nil {
		t.Fatalf("Face(24) failed: %v", err)
	}
	b, _ := tf.Face(24)
	if a != b {
		t.Error("expected the cached face to be reused")
	}
}

func TestNilTypefaceIsInvalid(t *testing.T) {
	var tf *Typeface
	if tf.Valid() {
		t.Error("nil typeface must not be valid")
	}
	if _, ok := tf.Advance('a'); ok {
		t.Error("nil typeface must not report advances")
	}
}
