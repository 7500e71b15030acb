package plot3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraProjectOrigin(t *testing.T) {

	// the cube center projects to the panel origin from any angle
	for _, angles := range [][2]float64{{0, 0}, {15, 70}, {-30, 135}} {
		cam := newCamera(angles[0], angles[1], 10)

		x, y := cam.project(0, 0, 0)

		assert.InDelta(t, 0, x, 1e-9)
		assert.InDelta(t, 0, y, 1e-9)
	}
}

func TestCameraProjectAxes(t *testing.T) {

	// at zero elevation and azimuth the camera looks down the x axis,
	// so y maps to panel x and z maps to panel y
	cam := newCamera(0, 0, 10)

	x, y := cam.project(0, 0.5, 0)
	assert.InDelta(t, 0.5, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)

	x, y = cam.project(0, 0, 0.5)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 0.5, y, 1e-9)
}

func TestCameraPerspective(t *testing.T) {

	cam := newCamera(0, 0, 10)

	// a point nearer the camera projects further from the panel origin
	// than the same offset further away
	_, near := cam.project(0.5, 0, 0.5)
	_, far := cam.project(-0.5, 0, 0.5)

	assert.Greater(t, near, far)
}
