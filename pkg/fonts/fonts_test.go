package fonts

import (
	"encoding/base64"
	"testing"

	"golang.org/x/image/font"
)

func TestNewFace(t *testing.T) {
	face, err := NewFace(16)
	if err != nil {
		t.Fatalf("NewFace() error: %v", err)
	}
	defer face.Close()

	short := font.MeasureString(face, "ab")
	long := font.MeasureString(face, "abcdef")
	if short <= 0 || long <= short {
		t.Errorf("MeasureString widths: ab=%v abcdef=%v", short, long)
	}
}

func TestRegularTTFBase64(t *testing.T) {
	got := RegularTTFBase64()
	decoded, err := base64.StdEncoding.DecodeString(got)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	if len(decoded) != len(RegularTTF()) {
		t.Errorf("decoded %d bytes, want %d", len(decoded), len(RegularTTF()))
	}
	if RegularTTFBase64() != got {
		t.Error("cached value differs")
	}
}
