package mmpose

import "testing"

func TestCOCOSkeleton(t *testing.T) {

	skeleton := COCOSkeleton()

	if len(skeleton) != 19 {
		t.Fatalf("got %d limbs, want 19", len(skeleton))
	}

	for i, limb := range skeleton {
		for _, idx := range limb {
			if idx < 1 || idx > COCOKeyPointsTotal {
				t.Errorf("limb %d index %d out of 1-based keypoint range", i, idx)
			}
		}
	}
}
