/*
Example code showing how to render 2D pose estimation results, bounding
boxes with labels and keypoint skeletons, onto an image
*/
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/JULIA1021/mmpose"
	"github.com/JULIA1021/mmpose/render"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	imgFile := flag.String("i", "../data/people.jpg", "Image file to draw on")
	saveFile := flag.String("o", "../data/people-pose.jpg", "Output image file")
	labelFile := flag.String("labels", "", "Optional text file with one box label per line")
	weighted := flag.Bool("w", false, "Alpha blend keypoints by their score")
	outline := flag.Bool("l", false, "Draw padded outline around each pose")
	flag.Parse()

	// load image
	img, err := render.ReadImage(*imgFile)

	if err != nil {
		log.Fatal("Error loading image: ", err)
	}

	defer img.Close()

	// pose results would normally come from a pose estimation model,
	// demo values are used here
	boxes := []mmpose.Box{
		{X1: 180, Y1: 60, X2: 470, Y2: 630},
	}
	labels := []string{"person 0.93"}

	// override the demo label text from a labels file
	if *labelFile != "" {
		loaded, err := mmpose.LoadLabels(*labelFile)

		if err != nil {
			log.Fatal("Error loading labels: ", err)
		}

		if len(loaded) < len(boxes) {
			log.Fatalf("Labels file has %d labels, need %d", len(loaded), len(boxes))
		}

		labels = loaded[:len(boxes)]
	}

	poses := []mmpose.Pose{demoPose()}

	err = render.BoundingBoxes(&img, boxes, labels, nil,
		render.DefaultFont(), 2)

	if err != nil {
		log.Fatal("Error drawing boxes: ", err)
	}

	style := render.DefaultSkeletonStyle()
	style.ShowScoreWeight = *weighted

	err = render.PoseKeyPoints(&img, poses, mmpose.COCOSkeleton(),
		render.COCOKeyPointColors, render.COCOLimbColors, style)

	if err != nil {
		log.Fatal("Error drawing keypoints: ", err)
	}

	if *outline {
		outStyle := render.DefaultOutlineStyle()
		outStyle.LineSame = false
		outStyle.LineColor = color.RGBA{R: 255, G: 255, B: 50, A: 255}

		err = render.PoseOutline(&img, poses, mmpose.COCOSkeleton(), outStyle)

		if err != nil {
			log.Fatal("Error drawing pose outline: ", err)
		}
	}

	if err := render.SaveImage(*saveFile, &img); err != nil {
		log.Fatal("Error saving image: ", err)
	}

	log.Println("Saved pose image to:", *saveFile)
}

// demoPose returns a hardcoded COCO keypoint set for a standing subject
func demoPose() mmpose.Pose {
	return mmpose.Pose{
		{X: 320, Y: 110, Score: 0.96}, // nose
		{X: 335, Y: 98, Score: 0.94},  // left eye
		{X: 305, Y: 98, Score: 0.93},  // right eye
		{X: 355, Y: 105, Score: 0.72}, // left ear
		{X: 285, Y: 105, Score: 0.70}, // right ear
		{X: 390, Y: 180, Score: 0.91}, // left shoulder
		{X: 250, Y: 180, Score: 0.90}, // right shoulder
		{X: 420, Y: 280, Score: 0.85}, // left elbow
		{X: 220, Y: 280, Score: 0.84}, // right elbow
		{X: 440, Y: 370, Score: 0.78}, // left wrist
		{X: 200, Y: 370, Score: 0.25}, // right wrist (occluded)
		{X: 365, Y: 380, Score: 0.88}, // left hip
		{X: 275, Y: 380, Score: 0.87}, // right hip
		{X: 360, Y: 500, Score: 0.83}, // left knee
		{X: 280, Y: 500, Score: 0.82}, // right knee
		{X: 358, Y: 615, Score: 0.75}, // left ankle
		{X: 282, Y: 615, Score: 0.74}, // right ankle
	}
}
