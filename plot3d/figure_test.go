package plot3d

import (
	"image"
	"image/color"
	"testing"

	"github.com/JULIA1021/mmpose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

var (
	testSkeleton = mmpose.Skeleton{{1, 2}, {2, 3}}

	testKptColors = []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}

	testLimbColors = []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
	}
)

func testPose(title string) mmpose.Pose3D {
	return mmpose.Pose3D{
		KeyPoints: []mmpose.KeyPoint3D{
			{X: 0.0, Y: 0.0, Z: 1.6, Score: 0.9},
			{X: 0.2, Y: 0.1, Z: 1.0, Score: 0.8},
			{X: 0.2, Y: 0.2, Z: 0.4, Score: 0.7},
		},
		Title: title,
	}
}

func TestFigurePanelCount(t *testing.T) {

	cfg := DefaultFigureConfig()
	cfg.VisHeight = 200

	// without a reference image: one panel per pose
	poses := []mmpose.Pose3D{testPose("a"), testPose("b")}

	fig, err := Figure(poses, nil, testSkeleton, testKptColors,
		testLimbColors, cfg)
	require.NoError(t, err)
	defer fig.Close()

	assert.Equal(t, 200, fig.Rows())
	assert.Equal(t, 400, fig.Cols())

	// with a reference image: one extra leading panel
	img := gocv.Zeros(96, 128, gocv.MatTypeCV8UC3)
	defer img.Close()

	fig2, err := Figure(poses, &img, testSkeleton, testKptColors,
		testLimbColors, cfg)
	require.NoError(t, err)
	defer fig2.Close()

	assert.Equal(t, 200, fig2.Rows())
	assert.Equal(t, 600, fig2.Cols())
}

func TestFigureNoValidKeyPoints(t *testing.T) {

	cfg := DefaultFigureConfig()
	cfg.VisHeight = 150

	// all keypoints below the threshold, the panel centers on the
	// origin and renders without error
	pose := testPose("")

	for i := range pose.KeyPoints {
		pose.KeyPoints[i].Score = 0.0
	}

	fig, err := Figure([]mmpose.Pose3D{pose}, nil, testSkeleton,
		testKptColors, testLimbColors, cfg)
	require.NoError(t, err)
	defer fig.Close()

	assert.Equal(t, 150, fig.Rows())
	assert.Equal(t, 150, fig.Cols())
}

func TestFigurePreconditions(t *testing.T) {

	cfg := DefaultFigureConfig()
	poses := []mmpose.Pose3D{testPose("")}

	// keypoint color count mismatch
	_, err := Figure(poses, nil, testSkeleton,
		testKptColors[:2], testLimbColors, cfg)
	assert.Error(t, err)

	// limb color count mismatch
	_, err = Figure(poses, nil, testSkeleton,
		testKptColors, testLimbColors[:1], cfg)
	assert.Error(t, err)

	// limb index out of range
	_, err = Figure(poses, nil, mmpose.Skeleton{{1, 4}},
		testKptColors, testLimbColors[:1], cfg)
	assert.Error(t, err)

	// nothing to draw
	_, err = Figure(nil, nil, testSkeleton, testKptColors,
		testLimbColors, cfg)
	assert.Error(t, err)
}

func TestFigureImagePanelOrientation(t *testing.T) {

	cfg := DefaultFigureConfig()
	cfg.VisHeight = 200

	// reference image with a red top half and blue bottom half
	img := gocv.Zeros(200, 200, gocv.MatTypeCV8UC3)
	defer img.Close()

	gocv.Rectangle(&img, image.Rect(0, 0, 200, 100),
		color.RGBA{R: 255, A: 255}, -1)
	gocv.Rectangle(&img, image.Rect(0, 100, 200, 200),
		color.RGBA{B: 255, A: 255}, -1)

	fig, err := Figure([]mmpose.Pose3D{testPose("")}, &img, testSkeleton,
		testKptColors, testLimbColors, cfg)
	require.NoError(t, err)
	defer fig.Close()

	// the leading panel must keep the source orientation, red above
	// blue.  Probe the panel center column away from the image midline
	// to stay clear of the title area and plot margins (BGR order).
	top := fig.GetVecbAt(70, 100)
	bottom := fig.GetVecbAt(160, 100)

	assert.Greater(t, top[2], top[0], "expected red top half, got BGR %v", top)
	assert.Greater(t, bottom[0], bottom[2], "expected blue bottom half, got BGR %v", bottom)
}

func TestFigureNilColors(t *testing.T) {

	cfg := DefaultFigureConfig()
	cfg.VisHeight = 100

	// nil color slices suppress markers and limbs but still render
	fig, err := Figure([]mmpose.Pose3D{testPose("")}, nil, nil, nil, nil, cfg)
	require.NoError(t, err)
	defer fig.Close()

	assert.Equal(t, 100, fig.Rows())
	assert.Equal(t, 100, fig.Cols())
}
