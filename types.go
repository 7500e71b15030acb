package mmpose

// Box is an axis aligned bounding box in pixel coordinates where
// (X1,Y1) is the top left corner and (X2,Y2) the bottom right corner
type Box struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// KeyPoint is a single 2D keypoint location with its detection score
type KeyPoint struct {
	X float32
	Y float32
	// Score is the confidence of the keypoint detection used as a
	// visibility gate when rendering
	Score float32
}

// Pose is the full ordered set of keypoints detected for one subject
// in a single frame
type Pose []KeyPoint

// KeyPoint3D is a single 3D keypoint location with its detection score
type KeyPoint3D struct {
	X float64
	Y float64
	Z float64
	// Score is the confidence of the keypoint detection used as a
	// visibility gate when rendering
	Score float64
}

// Pose3D groups one subject's 3D keypoints with an optional title
// string shown above the subject's plot panel
type Pose3D struct {
	KeyPoints []KeyPoint3D
	Title     string
}

// Limb is one edge of a skeleton connecting two keypoints.  The indices
// are 1-based into the pose keypoint sequence
type Limb [2]int

// Skeleton is the fixed topology connecting keypoint indices into a
// subject skeleton, shared across all poses rendered in one call
type Skeleton []Limb
