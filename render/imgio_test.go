package render

import (
	"path/filepath"
	"testing"

	"gocv.io/x/gocv"
)

func TestSaveAndReadImage(t *testing.T) {

	file := filepath.Join(t.TempDir(), "out.png")

	img := gocv.Zeros(32, 48, gocv.MatTypeCV8UC3)
	defer img.Close()

	if err := SaveImage(file, &img); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	got, err := ReadImage(file)

	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}

	defer got.Close()

	if got.Rows() != 32 || got.Cols() != 48 {
		t.Errorf("round trip dimensions wrong, got %dx%d", got.Cols(), got.Rows())
	}
}

func TestReadImageMissingFile(t *testing.T) {

	img, err := ReadImage("no-such-image.jpg")
	defer img.Close()

	if err == nil {
		t.Error("expected error for missing image file")
	}
}
