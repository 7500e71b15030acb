package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/JULIA1021/mmpose"
	"gocv.io/x/gocv"
)

// boxLabel defines where a box label tag should be rendered on the
// source image
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// BoundingBoxes draws each bounding box as a rectangle outline on the
// image.  When labels is non nil a filled label tag sized to fit the
// text is drawn above each box, anchored per the font alignment.
//
// A single element colors slice is broadcast to all boxes, otherwise
// the slice length must equal the box count.  A nil colors slice
// broadcasts Green.  A non nil labels slice must have one label per
// box.  Zero boxes is not an error.
func BoundingBoxes(img *gocv.Mat, boxes []mmpose.Box, labels []string,
	colors []color.RGBA, font Font, lineThickness int) error {

	if labels != nil && len(labels) != len(boxes) {
		return fmt.Errorf("got %d labels for %d boxes", len(labels), len(boxes))
	}

	switch {
	case colors == nil:
		colors = []color.RGBA{Green}
	case len(colors) != 1 && len(colors) != len(boxes):
		return fmt.Errorf("got %d colors for %d boxes", len(colors), len(boxes))
	}

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0)

	// draw bounding boxes
	for i, box := range boxes {

		useClr := colors[0]

		if len(colors) > 1 {
			useClr = colors[i]
		}

		// draw rectangle around the box region
		rect := image.Rect(box.X1, box.Y1, box.X2, box.Y2)
		gocv.Rectangle(img, rect, useClr, lineThickness)

		if labels == nil {
			continue
		}

		text := labels[i]

		// measure text to size the label tag to fit
		var textSize image.Point
		var baseline int

		if font.TTF != nil {
			textSize, baseline = font.TTF.Measure(text)
		} else {
			textSize, baseline = gocv.GetTextSizeWithBaseline(text,
				font.Face, font.Scale, font.Thickness)
		}

		// Calculate the horizontal anchor of the label tag
		var tagX1 int

		switch font.Alignment {
		case Center:
			tagX1 = (box.X1+box.X2)/2 - textSize.X/2

		case Right:
			tagX1 = box.X2 - textSize.X

		case Left:
			fallthrough
		default:
			tagX1 = box.X1
		}

		// place the tag above the box top edge, clamped to the image top
		tagY1 := box.Y1 - textSize.Y - baseline

		if tagY1 < 0 {
			tagY1 = 0
		}

		tagY2 := tagY1 + textSize.Y + baseline

		// record label rendering details
		nextLabel := boxLabel{
			rect:    image.Rect(tagX1, tagY1, tagX1+textSize.X, tagY2),
			clr:     useClr,
			text:    text,
			textPos: image.Pt(tagX1, tagY2-baseline),
		}
		boxLabels = append(boxLabels, nextLabel)
	}

	// draw all precalculated box labels so they are the top most layer
	// on the image and don't get overlapped by box outlines
	for _, box := range boxLabels {
		// draw box text gets written on
		gocv.Rectangle(img, box.rect, box.clr, -1)

		// Draw the label over box
		if font.TTF != nil {
			err := font.TTF.Put(img, box.text, box.textPos, font.Color)

			if err != nil {
				return fmt.Errorf("error rendering TTF label: %w", err)
			}

			continue
		}

		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}

	return nil
}

// BoundingBoxesToFile draws the bounding boxes on the image and writes
// the result to an image file
func BoundingBoxesToFile(filename string, img *gocv.Mat, boxes []mmpose.Box,
	labels []string, colors []color.RGBA, font Font, lineThickness int) error {

	err := BoundingBoxes(img, boxes, labels, colors, font, lineThickness)

	if err != nil {
		return err
	}

	return SaveImage(filename, img)
}
