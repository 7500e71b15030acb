package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/JULIA1021/mmpose"
	"gocv.io/x/gocv"
)

// SkeletonStyle defines the parameters used for rendering pose keypoints
// and skeleton limbs
type SkeletonStyle struct {
	// CircleRadius is the radius of the filled circle drawn at each
	// keypoint location
	CircleRadius int
	// LineThickness is the thickness of plain limb line segments
	LineThickness int
	// ScoreThreshold is the minimum keypoint score for the keypoint or
	// limb to be drawn.  The comparison is a strict greater than, a
	// score equal to the threshold is not drawn.
	ScoreThreshold float32
	// ShowScoreWeight renders keypoints and limbs alpha blended with
	// opacity equal to their score, so low confidence detections
	// appear faint.  Limbs are drawn as tapered polygons instead of
	// plain lines.
	ShowScoreWeight bool
	// StickWidth is the half width in pixels of the tapered limb
	// polygon used in score weighted mode
	StickWidth int
}

// DefaultSkeletonStyle returns default skeleton style settings
func DefaultSkeletonStyle() SkeletonStyle {
	return SkeletonStyle{
		CircleRadius:    4,
		LineThickness:   1,
		ScoreThreshold:  0.3,
		ShowScoreWeight: false,
		StickWidth:      2,
	}
}

// PoseKeyPoints renders the provided pose estimation keypoints for all
// subjects onto the image, which is modified in place.
//
// kptColors holds one color per keypoint, a nil slice suppresses
// keypoint circles.  limbColors holds one color per skeleton limb, a
// nil slice (or nil skeleton) suppresses limb lines.  Keypoints with a
// score at or below the style threshold are skipped, limbs are skipped
// unless both endpoints score above the threshold and both lie strictly
// inside the image bounds.
func PoseKeyPoints(img *gocv.Mat, poses []mmpose.Pose, skeleton mmpose.Skeleton,
	kptColors, limbColors []color.RGBA, style SkeletonStyle) error {

	if err := checkPoseColors(poses, skeleton, kptColors, limbColors); err != nil {
		return err
	}

	imgW := img.Cols()
	imgH := img.Rows()

	// for each subject
	for _, pose := range poses {

		// draw circles at skeleton joints
		if kptColors != nil {
			for j, kpt := range pose {

				if kpt.Score <= style.ScoreThreshold {
					continue
				}

				pt := image.Pt(int(kpt.X), int(kpt.Y))

				if style.ShowScoreWeight {
					// draw on a scratch copy and blend back with
					// opacity equal to the keypoint score
					scratch := img.Clone()
					gocv.Circle(&scratch, pt, style.CircleRadius, kptColors[j], -1)
					blend(img, scratch, float64(kpt.Score))
					scratch.Close()
				} else {
					gocv.Circle(img, pt, style.CircleRadius, kptColors[j], -1)
				}
			}
		}

		// draw skeleton limb lines
		if skeleton == nil || limbColors == nil {
			continue
		}

		for j, limb := range skeleton {

			kpt1 := pose[limb[0]-1]
			kpt2 := pose[limb[1]-1]

			pos1 := image.Pt(int(kpt1.X), int(kpt1.Y))
			pos2 := image.Pt(int(kpt2.X), int(kpt2.Y))

			// skip limbs with an endpoint on or outside the image border
			if pos1.X <= 0 || pos1.X >= imgW || pos1.Y <= 0 || pos1.Y >= imgH ||
				pos2.X <= 0 || pos2.X >= imgW || pos2.Y <= 0 || pos2.Y >= imgH {
				continue
			}

			if kpt1.Score <= style.ScoreThreshold ||
				kpt2.Score <= style.ScoreThreshold {
				continue
			}

			if style.ShowScoreWeight {
				// stylize the limb as a tapered polygon oriented along
				// the limb direction, blended with opacity equal to the
				// mean score of the two endpoints
				midX := (pos1.X + pos2.X) / 2
				midY := (pos1.Y + pos2.Y) / 2
				dx := float64(pos1.X - pos2.X)
				dy := float64(pos1.Y - pos2.Y)
				length := math.Hypot(dx, dy)
				angle := int(math.Atan2(dy, dx) * 180 / math.Pi)

				poly := ellipsePolygon(midX, midY, int(length/2),
					style.StickWidth, angle)

				scratch := img.Clone()
				pts := gocv.NewPointsVectorFromPoints([][]image.Point{poly})
				gocv.FillPoly(&scratch, pts, limbColors[j])
				pts.Close()

				blend(img, scratch, 0.5*float64(kpt1.Score+kpt2.Score))
				scratch.Close()
			} else {
				gocv.Line(img, pos1, pos2, limbColors[j], style.LineThickness)
			}
		}
	}

	return nil
}

// checkPoseColors validates the color/skeleton length preconditions for
// all poses before any drawing happens
func checkPoseColors(poses []mmpose.Pose, skeleton mmpose.Skeleton,
	kptColors, limbColors []color.RGBA) error {

	if skeleton != nil && limbColors != nil &&
		len(limbColors) != len(skeleton) {
		return fmt.Errorf("got %d limb colors for %d limbs",
			len(limbColors), len(skeleton))
	}

	for i, pose := range poses {

		if kptColors != nil && len(kptColors) != len(pose) {
			return fmt.Errorf("pose %d: got %d keypoint colors for %d keypoints",
				i, len(kptColors), len(pose))
		}

		if skeleton == nil || limbColors == nil {
			continue
		}

		for j, limb := range skeleton {
			if limb[0] < 1 || limb[0] > len(pose) ||
				limb[1] < 1 || limb[1] > len(pose) {
				return fmt.Errorf("pose %d: limb %d indices %v out of range",
					i, j, limb)
			}
		}
	}

	return nil
}

// blend alpha blends the scratch copy back onto the image in place.
// The alpha is clamped to [0, 1].
func blend(img *gocv.Mat, scratch gocv.Mat, alpha float64) {
	alpha = math.Max(0, math.Min(1, alpha))
	gocv.AddWeighted(scratch, alpha, *img, 1-alpha, 0, img)
}

// ellipsePolygon approximates the arc of an ellipse centered at (cx, cy)
// with half axes (a, b) rotated by angle degrees, sampled at 1 degree
// steps, as a closed polygon
func ellipsePolygon(cx, cy, a, b, angle int) []image.Point {

	rot := float64(angle) * math.Pi / 180
	sinR, cosR := math.Sincos(rot)

	pts := make([]image.Point, 0, 360)

	for t := 0; t < 360; t++ {
		arc := float64(t) * math.Pi / 180
		x := float64(a) * math.Cos(arc)
		y := float64(b) * math.Sin(arc)

		pt := image.Pt(
			cx+int(math.Round(x*cosR-y*sinR)),
			cy+int(math.Round(x*sinR+y*cosR)),
		)

		// drop consecutive duplicates from integer rounding
		if len(pts) > 0 && pts[len(pts)-1] == pt {
			continue
		}

		pts = append(pts, pt)
	}

	return pts
}
