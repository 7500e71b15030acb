package render

import (
	"testing"

	"github.com/JULIA1021/mmpose"
	"gocv.io/x/gocv"
)

func TestPoseOutline(t *testing.T) {

	img := gocv.Zeros(100, 100, gocv.MatTypeCV8UC3)
	defer img.Close()

	poses := []mmpose.Pose{{
		{X: 30, Y: 30, Score: 0.9},
		{X: 70, Y: 70, Score: 0.8},
	}}

	err := PoseOutline(&img, poses, mmpose.Skeleton{{1, 2}},
		DefaultOutlineStyle())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := img.Sum()

	if sum.Val1+sum.Val2+sum.Val3 == 0 {
		t.Error("expected outline pixels to be drawn")
	}
}

func TestPoseOutlineNoVisibleLimbs(t *testing.T) {

	img := gocv.Zeros(100, 100, gocv.MatTypeCV8UC3)
	defer img.Close()

	// all keypoints below the score threshold contribute nothing
	poses := []mmpose.Pose{{
		{X: 30, Y: 30, Score: 0.1},
		{X: 70, Y: 70, Score: 0.1},
	}}

	err := PoseOutline(&img, poses, mmpose.Skeleton{{1, 2}},
		DefaultOutlineStyle())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := img.Sum()

	if sum.Val1+sum.Val2+sum.Val3 != 0 {
		t.Error("expected image to be untouched")
	}
}
