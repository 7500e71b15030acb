package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/JULIA1021/mmpose"
	clipper "github.com/ctessum/go.clipper"
	"gocv.io/x/gocv"
)

// OutlineStyle defines the parameters used for rendering the pose
// outline overlay
type OutlineStyle struct {
	// Pad is the distance in pixels the outline is offset from the
	// skeleton limbs
	Pad float64
	// LineSame defines if the color of the outline should cycle through
	// the class colors per pose.  If set to false then use the color
	// specified at LineColor
	LineSame      bool
	LineColor     color.RGBA
	LineThickness int
	// ScoreThreshold is the minimum keypoint score for a limb to
	// contribute to the outline
	ScoreThreshold float32
}

// DefaultOutlineStyle returns default outline style settings
func DefaultOutlineStyle() OutlineStyle {
	return OutlineStyle{
		Pad:            8,
		LineSame:       true,
		LineColor:      Yellow,
		LineThickness:  1,
		ScoreThreshold: 0.3,
	}
}

// PoseOutline draws a padded silhouette outline around each pose's
// visible limbs.  The limb segments are offset outwards by the style
// pad with rounded joins and the resulting polygons drawn as overlay
// outlines, useful for marking subject regions in debug output.
func PoseOutline(img *gocv.Mat, poses []mmpose.Pose, skeleton mmpose.Skeleton,
	style OutlineStyle) error {

	for i, pose := range poses {
		for j, limb := range skeleton {
			if limb[0] < 1 || limb[0] > len(pose) ||
				limb[1] < 1 || limb[1] > len(pose) {
				return fmt.Errorf("pose %d: limb %d indices %v out of range",
					i, j, limb)
			}
		}
	}

	for i, pose := range poses {

		// determine outline color to use
		useClr := style.LineColor

		if style.LineSame {
			useClr = classColors[i%len(classColors)]
		}

		// create a ClipperOffset object and add the visible limb
		// segments as open paths
		co := clipper.NewClipperOffset()
		added := false

		for _, limb := range skeleton {

			kpt1 := pose[limb[0]-1]
			kpt2 := pose[limb[1]-1]

			if kpt1.Score <= style.ScoreThreshold ||
				kpt2.Score <= style.ScoreThreshold {
				continue
			}

			path := clipper.Path{
				&clipper.IntPoint{X: clipper.CInt(kpt1.X), Y: clipper.CInt(kpt1.Y)},
				&clipper.IntPoint{X: clipper.CInt(kpt2.X), Y: clipper.CInt(kpt2.Y)},
			}

			co.AddPath(path, clipper.JtRound, clipper.EtOpenRound)
			added = true
		}

		if !added {
			continue
		}

		// execute the offset operation
		solution := co.Execute(style.Pad)

		// convert the solution back to points and draw the outline
		// polygons
		for _, path := range solution {

			pts := make([]image.Point, 0, len(path))

			for _, pt := range path {
				pts = append(pts, image.Pt(int(pt.X), int(pt.Y)))
			}

			if len(pts) < 2 {
				continue
			}

			ptsVec := gocv.NewPointsVectorFromPoints([][]image.Point{pts})
			gocv.Polylines(img, ptsVec, true, useClr, style.LineThickness)
			ptsVec.Close()
		}
	}

	return nil
}
