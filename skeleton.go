package mmpose

/* COCO skeleton keypoints
0: Nose
1: Left Eye
2: Right Eye
3: Left Ear
4: Right Ear
5: Left Shoulder
6: Right Shoulder
7: Left Elbow
8: Right Elbow
9: Left Wrist
10: Right Wrist
11: Left Hip
12: Right Hip
13: Left Knee
14: Right Knee
15: Left Ankle
16: Right Ankle
*/

// COCOKeyPointsTotal is the number of keypoints in the COCO skeleton
const COCOKeyPointsTotal = 17

// COCOSkeleton returns the limb topology for models trained on the COCO
// keypoint set.  Limb indices are 1-based, so Limb{16, 14} means draw a
// line from the right knee to the right ankle.
func COCOSkeleton() Skeleton {
	return Skeleton{
		{16, 14}, {14, 12}, {17, 15}, {15, 13}, {12, 13},
		{6, 12}, {7, 13}, {6, 7}, {6, 8}, {7, 9},
		{8, 10}, {9, 11}, {2, 3}, {1, 2}, {1, 3},
		{2, 4}, {3, 5}, {4, 6}, {5, 7},
	}
}
