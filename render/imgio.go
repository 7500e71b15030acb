package render

import (
	"fmt"

	"gocv.io/x/gocv"
)

// ReadImage loads the image file into a BGR Mat.  The caller must Close
// the returned Mat.
func ReadImage(path string) (gocv.Mat, error) {

	img := gocv.IMRead(path, gocv.IMReadColor)

	if img.Empty() {
		return img, fmt.Errorf("error reading image from: %s", path)
	}

	return img, nil
}

// SaveImage writes the image to a file
func SaveImage(filename string, img *gocv.Mat) error {

	if gocv.IMWrite(filename, *img) {
		return nil
	}

	return fmt.Errorf("failed to write image to: %s", filename)
}

// Show displays the image in a window and blocks for waitMS
// milliseconds, or until a key is pressed when waitMS is 0
func Show(window string, img *gocv.Mat, waitMS int) {
	win := gocv.NewWindow(window)
	defer win.Close()

	win.IMShow(*img)
	win.WaitKey(waitMS)
}
