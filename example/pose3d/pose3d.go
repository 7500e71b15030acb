/*
Example code showing how to render 3D pose estimation keypoints as a
multi panel figure alongside the input image
*/
package main

import (
	"flag"
	"log"

	"github.com/JULIA1021/mmpose"
	"github.com/JULIA1021/mmpose/plot3d"
	"github.com/JULIA1021/mmpose/render"
	"gocv.io/x/gocv"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	imgFile := flag.String("i", "", "Optional input image shown in the leading panel")
	saveFile := flag.String("o", "../data/pose3d.jpg", "Output image file")
	flag.Parse()

	var img *gocv.Mat

	if *imgFile != "" {
		m, err := render.ReadImage(*imgFile)

		if err != nil {
			log.Fatal("Error loading image: ", err)
		}

		defer m.Close()
		img = &m
	}

	// 3D pose results would normally come from a lifting model, demo
	// values are used here
	poses := []mmpose.Pose3D{
		{KeyPoints: demoPose3D(), Title: "prediction"},
	}

	fig, err := plot3d.Figure(poses, img, mmpose.COCOSkeleton(),
		render.COCOKeyPointColors, render.COCOLimbColors,
		plot3d.DefaultFigureConfig())

	if err != nil {
		log.Fatal("Error rendering 3D figure: ", err)
	}

	defer fig.Close()

	if err := render.SaveImage(*saveFile, &fig); err != nil {
		log.Fatal("Error saving figure: ", err)
	}

	log.Println("Saved 3D pose figure to:", *saveFile)
}

// demoPose3D returns a hardcoded COCO keypoint set for a standing
// subject in camera space, coordinates in meters
func demoPose3D() []mmpose.KeyPoint3D {
	return []mmpose.KeyPoint3D{
		{X: 0.00, Y: 0.02, Z: 1.62, Score: 0.95},   // nose
		{X: 0.04, Y: 0.01, Z: 1.66, Score: 0.93},   // left eye
		{X: -0.04, Y: 0.01, Z: 1.66, Score: 0.92},  // right eye
		{X: 0.09, Y: -0.02, Z: 1.63, Score: 0.71},  // left ear
		{X: -0.09, Y: -0.02, Z: 1.63, Score: 0.70}, // right ear
		{X: 0.19, Y: 0.00, Z: 1.45, Score: 0.90},   // left shoulder
		{X: -0.19, Y: 0.00, Z: 1.45, Score: 0.89},  // right shoulder
		{X: 0.26, Y: 0.05, Z: 1.18, Score: 0.84},   // left elbow
		{X: -0.26, Y: 0.05, Z: 1.18, Score: 0.83},  // right elbow
		{X: 0.30, Y: 0.12, Z: 0.93, Score: 0.77},   // left wrist
		{X: -0.30, Y: 0.12, Z: 0.93, Score: 0.22},  // right wrist (occluded)
		{X: 0.11, Y: 0.01, Z: 0.95, Score: 0.87},   // left hip
		{X: -0.11, Y: 0.01, Z: 0.95, Score: 0.86},  // right hip
		{X: 0.12, Y: 0.04, Z: 0.52, Score: 0.82},   // left knee
		{X: -0.12, Y: 0.04, Z: 0.52, Score: 0.81},  // right knee
		{X: 0.13, Y: 0.08, Z: 0.08, Score: 0.74},   // left ankle
		{X: -0.13, Y: 0.08, Z: 0.08, Score: 0.73},  // right ankle
	}
}
