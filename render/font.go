package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Alignment int

const (
	Left   Alignment = 1
	Center Alignment = 2
	Right  Alignment = 3
)

// Font defines the parameters for rendering text on an image using GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// Padding to place around text
	LeftPad   int
	RightPad  int
	TopPad    int
	BottomPad int
	// Alignment of the text label to the bounding box
	Alignment Alignment
	// TTF is an optional TrueType face used to render label text in
	// place of the Hershey face, needed for text the Hershey fonts
	// have no glyphs for
	TTF *TTFFace
}

// DefaultFont returns default font settings
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
		LeftPad:   4,
		RightPad:  4,
		TopPad:    4,
		BottomPad: 6,
		Alignment: Left,
	}
}

// TTFFace wraps a loaded TrueType font face
type TTFFace struct {
	face    font.Face
	ascent  int
	descent int
}

// LoadTTFFace loads the TTF font at the given path at the given point size
func LoadTTFFace(path string, size float64) (*TTFFace, error) {

	fontBytes, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("error reading font file: %w", err)
	}

	f, err := opentype.Parse(fontBytes)

	if err != nil {
		return nil, fmt.Errorf("error parsing font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})

	if err != nil {
		return nil, fmt.Errorf("error creating font face: %w", err)
	}

	metrics := face.Metrics()

	return &TTFFace{
		face:    face,
		ascent:  metrics.Ascent.Ceil(),
		descent: metrics.Descent.Ceil(),
	}, nil
}

// Measure returns the pixel size of the text above its baseline and the
// baseline offset below it, mirroring what GetTextSizeWithBaseline
// reports for the Hershey fonts
func (t *TTFFace) Measure(text string) (image.Point, int) {
	width := font.MeasureString(t.face, text).Ceil()
	return image.Pt(width, t.ascent), t.descent
}

// Put draws the text on the image with the baseline starting at the
// given point.  The text is first written to a transparent RGBA layer
// which is then composited onto the image.
func (t *TTFFace) Put(img *gocv.Mat, text string, pt image.Point,
	clr color.RGBA) error {

	// create image with text writing
	rgba := image.NewRGBA(image.Rect(0, 0, img.Cols(), img.Rows()))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 0}),
		image.Point{}, draw.Src)

	dr := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(clr),
		Face: t.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(pt.X * 64),
			Y: fixed.Int26_6(pt.Y * 64),
		},
	}
	dr.DrawString(text)

	// Convert image.RGBA to gocv.Mat
	imgRGBA, err := gocv.NewMatFromBytes(rgba.Bounds().Dy(),
		rgba.Bounds().Dx(), gocv.MatTypeCV8UC4, rgba.Pix)

	if imgRGBA.Empty() || err != nil {
		return fmt.Errorf("error creating Mat from RGBA")
	}

	defer imgRGBA.Close()

	gocv.CvtColor(imgRGBA, &imgRGBA, gocv.ColorRGBAToBGR)
	gocv.AddWeighted(*img, 1.0, imgRGBA, 1.0, 0, img)

	return nil
}
