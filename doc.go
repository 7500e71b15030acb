/*
mmpose provides visualization utilities for pose estimation results.
It renders 2D bounding boxes, 2D keypoints/skeletons, and 3D
keypoints/skeletons onto raster images for debugging and demo output.

2D drawing is performed with GoCV on BGR image Mats, see the render
subpackage.  3D keypoints are plotted as multi panel figures and
rasterized back to a pixel buffer, see the plot3d subpackage.

See example code and usage in the example subdirectory.
*/
package mmpose
