package plot3d

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// camera holds the view transformation used to project 3D keypoint
// coordinates onto a 2D plot panel
type camera struct {
	// view rows are the camera right, up and forward basis vectors for
	// the configured elevation and azimuth angles
	view *mat.Dense
	// dist is the camera distance used for the perspective scale
	dist float64
}

// newCamera returns a camera for the given elevation and azimuth view
// angles in degrees and camera distance in axis cube units
func newCamera(elev, azim, dist float64) *camera {

	elevR := elev * math.Pi / 180
	azimR := azim * math.Pi / 180

	sinE, cosE := math.Sincos(elevR)
	sinA, cosA := math.Sincos(azimR)

	view := mat.NewDense(3, 3, []float64{
		-sinA, cosA, 0,
		-sinE * cosA, -sinE * sinA, cosE,
		cosE * cosA, cosE * sinA, sinE,
	})

	return &camera{
		view: view,
		dist: dist,
	}
}

// project maps a point in the normalized axis cube, coordinates in
// [-0.5, 0.5], to panel plane coordinates
func (c *camera) project(x, y, z float64) (float64, float64) {

	v := mat.NewVecDense(3, []float64{x, y, z})

	out := mat.NewVecDense(3, nil)
	out.MulVec(c.view, v)

	// perspective scale by the depth towards the camera
	scale := c.dist / (c.dist - out.AtVec(2))

	return out.AtVec(0) * scale, out.AtVec(1) * scale
}
