// Package plot3d renders 3D pose estimation keypoints as multi panel
// scatter/line figures rasterized to a pixel buffer.
package plot3d

import (
	"fmt"
	"image"
	"image/color"
	imgdraw "image/draw"

	"github.com/JULIA1021/mmpose"
	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// panelDPI is the raster resolution panels are drawn at.  Panel vg
// lengths are derived from it so the pixel dimensions come out exact.
const panelDPI = 96

// cubeEdges are the corner index pairs of the axis cube wireframe
var cubeEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// FigureConfig defines the layout and view parameters of the 3D pose
// figure
type FigureConfig struct {
	// VisHeight is the pixel height of the figure.  Each panel is a
	// VisHeight sized square, so the figure width is VisHeight
	// multiplied by the panel count.
	VisHeight int
	// ScoreThreshold is the minimum keypoint score for the keypoint to
	// be scattered and to contribute to the panel centering.  Limbs are
	// drawn only when both endpoint scores strictly exceed it.
	ScoreThreshold float64
	// AxisLimit is the size of the bounding cube each subject is
	// normalized into.  The x and y ranges are centered on the mean of
	// the visible keypoints, the z range starts at 0.
	AxisLimit float64
	// View angles shared by all panels
	AxisElevation float64
	AxisAzimuth   float64
	AxisDist      float64
}

// DefaultFigureConfig returns default figure settings
func DefaultFigureConfig() FigureConfig {
	return FigureConfig{
		VisHeight:      400,
		ScoreThreshold: 0.3,
		AxisLimit:      1.7,
		AxisElevation:  15.0,
		AxisAzimuth:    70.0,
		AxisDist:       10.0,
	}
}

// Figure renders the 3D poses as a horizontal strip of plot panels, one
// per pose, with a leading panel showing the reference image when img
// is non nil.  Each pose panel scatters the keypoints meeting the score
// threshold with their assigned colors and connects skeleton limbs whose
// endpoints both exceed it, viewed from the configured angles inside a
// per pose bounding cube centered on the visible keypoints.
//
// kptColors holds one color per keypoint, nil suppresses keypoint
// markers.  limbColors holds one color per skeleton limb, nil (or a nil
// skeleton) suppresses limbs.
//
// The figure is rasterized and returned as a BGR Mat the caller must
// Close.  All plotting resources are transient to the call.
func Figure(poses []mmpose.Pose3D, img *gocv.Mat, skeleton mmpose.Skeleton,
	kptColors, limbColors []color.RGBA, cfg FigureConfig) (gocv.Mat, error) {

	if err := checkColors(poses, skeleton, kptColors, limbColors); err != nil {
		return gocv.NewMat(), err
	}

	showImg := img != nil && !img.Empty()

	numAxis := len(poses)

	if showImg {
		numAxis++
	}

	if numAxis == 0 {
		return gocv.NewMat(), fmt.Errorf("no poses or image to draw")
	}

	// composite canvas the panels are copied into side by side
	composite := image.NewRGBA(image.Rect(0, 0, numAxis*cfg.VisHeight,
		cfg.VisHeight))

	panelIdx := 0

	if showImg {
		p, err := imagePanel(img, cfg)

		if err != nil {
			return gocv.NewMat(), err
		}

		drawPanel(composite, p, panelIdx, cfg.VisHeight)
		panelIdx++
	}

	cam := newCamera(cfg.AxisElevation, cfg.AxisAzimuth, cfg.AxisDist)

	for _, pose := range poses {
		p, err := posePanel(pose, skeleton, kptColors, limbColors, cfg, cam)

		if err != nil {
			return gocv.NewMat(), err
		}

		drawPanel(composite, p, panelIdx, cfg.VisHeight)
		panelIdx++
	}

	// convert the composite to a BGR Mat so it composes with the
	// caller's image buffers
	matRGBA, err := gocv.NewMatFromBytes(composite.Rect.Dy(),
		composite.Rect.Dx(), gocv.MatTypeCV8UC4, composite.Pix)

	if err != nil {
		return gocv.NewMat(), fmt.Errorf("error creating Mat from figure: %w", err)
	}

	defer matRGBA.Close()

	out := gocv.NewMat()
	gocv.CvtColor(matRGBA, &out, gocv.ColorRGBAToBGR)

	return out, nil
}

// imagePanel builds the leading panel showing the 2D reference image
func imagePanel(img *gocv.Mat, cfg FigureConfig) (*plot.Plot, error) {

	// rescale to the panel height keeping aspect
	scale := float64(cfg.VisHeight) / float64(img.Rows())
	width := int(float64(img.Cols()) * scale)

	resized := gocv.NewMat()
	defer resized.Close()

	gocv.Resize(*img, &resized, image.Pt(width, cfg.VisHeight), 0, 0,
		gocv.InterpolationLinear)

	// ToImage handles the BGR to RGB channel conversion.  The image
	// plotter draws the source top row at the top of the panel, no row
	// flipping is needed.
	goImg, err := resized.ToImage()

	if err != nil {
		return nil, fmt.Errorf("error converting image panel: %w", err)
	}

	p := plot.New()
	p.Title.Text = "Input"
	p.HideAxes()

	// equal spans on both axes keep the image aspect inside the square
	// panel
	span := float64(width)

	if cfg.VisHeight > width {
		span = float64(cfg.VisHeight)
	}

	p.X.Min = (float64(width) - span) / 2
	p.X.Max = (float64(width) + span) / 2
	p.Y.Min = (float64(cfg.VisHeight) - span) / 2
	p.Y.Max = (float64(cfg.VisHeight) + span) / 2

	p.Add(plotter.NewImage(goImg, 0, 0, float64(width), float64(cfg.VisHeight)))

	return p, nil
}

// posePanel builds one 3D scatter/line panel for a single pose
func posePanel(pose mmpose.Pose3D, skeleton mmpose.Skeleton,
	kptColors, limbColors []color.RGBA, cfg FigureConfig,
	cam *camera) (*plot.Plot, error) {

	kpts := pose.KeyPoints

	// center the bounding cube on the mean of the visible keypoints,
	// defaulting to the origin when none qualify
	validX := make([]float64, 0, len(kpts))
	validY := make([]float64, 0, len(kpts))

	for _, kpt := range kpts {
		if kpt.Score >= cfg.ScoreThreshold {
			validX = append(validX, kpt.X)
			validY = append(validY, kpt.Y)
		}
	}

	var xC, yC float64

	if len(validX) > 0 {
		xC = stat.Mean(validX, nil)
		yC = stat.Mean(validY, nil)
	}

	xMin := xC - cfg.AxisLimit/2
	yMin := yC - cfg.AxisLimit/2

	// normalize a keypoint into the [-0.5, 0.5] axis cube
	norm := func(kpt mmpose.KeyPoint3D) (float64, float64, float64) {
		return (kpt.X-xMin)/cfg.AxisLimit - 0.5,
			(kpt.Y-yMin)/cfg.AxisLimit - 0.5,
			kpt.Z/cfg.AxisLimit - 0.5
	}

	p := plot.New()
	p.HideAxes()
	p.X.Min = -0.9
	p.X.Max = 0.9
	p.Y.Min = -0.9
	p.Y.Max = 0.9

	if pose.Title != "" {
		p.Title.Text = pose.Title
	}

	addCubeWireframe(p, cam)

	// scatter keypoints meeting the threshold
	if kptColors != nil {
		for i, kpt := range kpts {

			if kpt.Score < cfg.ScoreThreshold {
				continue
			}

			px, py := cam.project(norm(kpt))

			s, err := plotter.NewScatter(plotter.XYs{{X: px, Y: py}})

			if err != nil {
				return nil, fmt.Errorf("error plotting keypoint: %w", err)
			}

			s.GlyphStyle.Color = kptColors[i]
			s.GlyphStyle.Radius = vg.Points(2.5)
			s.GlyphStyle.Shape = vgdraw.CircleGlyph{}
			p.Add(s)
		}
	}

	// draw limbs whose endpoints both exceed the threshold
	if skeleton != nil && limbColors != nil {
		for j, limb := range skeleton {

			kpt1 := kpts[limb[0]-1]
			kpt2 := kpts[limb[1]-1]

			if kpt1.Score <= cfg.ScoreThreshold ||
				kpt2.Score <= cfg.ScoreThreshold {
				continue
			}

			x1, y1 := cam.project(norm(kpt1))
			x2, y2 := cam.project(norm(kpt2))

			l, err := plotter.NewLine(plotter.XYs{
				{X: x1, Y: y1},
				{X: x2, Y: y2},
			})

			if err != nil {
				return nil, fmt.Errorf("error plotting limb: %w", err)
			}

			l.LineStyle.Color = limbColors[j]
			l.LineStyle.Width = vg.Points(1.5)
			p.Add(l)
		}
	}

	return p, nil
}

// addCubeWireframe draws the projected edges of the axis cube so the
// panel keeps a sense of the 3D volume with the axes hidden
func addCubeWireframe(p *plot.Plot, cam *camera) {

	var corners [8][2]float64

	for i := 0; i < 8; i++ {
		x := float64(i&1) - 0.5
		y := float64(i>>1&1) - 0.5
		z := float64(i>>2&1) - 0.5
		px, py := cam.project(x, y, z)
		corners[i] = [2]float64{px, py}
	}

	for _, edge := range cubeEdges {
		l, err := plotter.NewLine(plotter.XYs{
			{X: corners[edge[0]][0], Y: corners[edge[0]][1]},
			{X: corners[edge[1]][0], Y: corners[edge[1]][1]},
		})

		if err != nil {
			continue
		}

		l.LineStyle.Color = color.RGBA{R: 210, G: 210, B: 210, A: 255}
		l.LineStyle.Width = vg.Points(0.5)
		p.Add(l)
	}
}

// drawPanel rasterizes the plot into a square panel and copies it into
// the composite at the panel index
func drawPanel(composite *image.RGBA, p *plot.Plot, idx, sizePx int) {

	side := vg.Length(sizePx) / panelDPI * vg.Inch

	c := vgimg.NewWith(vgimg.UseWH(side, side), vgimg.UseDPI(panelDPI))
	p.Draw(vgdraw.New(c))

	offset := image.Pt(idx*sizePx, 0)
	imgdraw.Draw(composite, image.Rect(offset.X, 0, offset.X+sizePx, sizePx),
		c.Image(), image.Point{}, imgdraw.Src)
}

// checkColors validates the color/skeleton length preconditions for all
// poses before any panel is drawn
func checkColors(poses []mmpose.Pose3D, skeleton mmpose.Skeleton,
	kptColors, limbColors []color.RGBA) error {

	if skeleton != nil && limbColors != nil &&
		len(limbColors) != len(skeleton) {
		return fmt.Errorf("got %d limb colors for %d limbs",
			len(limbColors), len(skeleton))
	}

	for i, pose := range poses {

		if kptColors != nil && len(kptColors) != len(pose.KeyPoints) {
			return fmt.Errorf("pose %d: got %d keypoint colors for %d keypoints",
				i, len(kptColors), len(pose.KeyPoints))
		}

		if skeleton == nil || limbColors == nil {
			continue
		}

		for j, limb := range skeleton {
			if limb[0] < 1 || limb[0] > len(pose.KeyPoints) ||
				limb[1] < 1 || limb[1] > len(pose.KeyPoints) {
				return fmt.Errorf("pose %d: limb %d indices %v out of range",
					i, j, limb)
			}
		}
	}

	return nil
}
