package render

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestDefaultFont(t *testing.T) {

	font := DefaultFont()

	if font.Face != gocv.FontHersheySimplex {
		t.Errorf("unexpected default face: %v", font.Face)
	}

	if font.Scale != 0.5 || font.Thickness != 1 {
		t.Errorf("unexpected default scale/thickness: %f/%d",
			font.Scale, font.Thickness)
	}

	if font.TTF != nil {
		t.Error("default font should not carry a TTF face")
	}
}

func TestLoadTTFFaceMissingFile(t *testing.T) {

	_, err := LoadTTFFace("no-such-font.ttf", 20)

	if err == nil {
		t.Error("expected error for missing font file")
	}
}
