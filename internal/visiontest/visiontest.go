package visiontest

import (
	"image"
	"image/color"
	"image/draw"
)

// Fixture builders for vision tests. Assembled pixel by pixel so tests
// control exact coordinates.

// NewMask returns a binary mask of the given size with every listed
// rectangle filled in.
func NewMask(w, h int, regions ...image.Rectangle) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, w, h))
	for _, region := range regions {
		FillMaskRect(mask, region)
	}
	return mask
}

func FillMaskRect(mask *image.Gray, region image.Rectangle) {
	draw.Draw(mask, region, image.NewUniform(color.Gray{Y: 255}), image.Point{}, draw.Src)
}

func FillMaskDisc(mask *image.Gray, center image.Point, radius int) {
	fillDisc(mask, center, radius, color.Gray{Y: 255})
}

// NewFrame returns a frame image cleared to the given colour.
func NewFrame(w, h int, c color.RGBA) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return frame
}

func FillFrameRect(frame *image.RGBA, region image.Rectangle, c color.RGBA) {
	draw.Draw(frame, region, image.NewUniform(c), image.Point{}, draw.Src)
}

func FillFrameDisc(frame *image.RGBA, center image.Point, radius int, c color.RGBA) {
	fillDisc(frame, center, radius, c)
}

func fillDisc(img draw.Image, center image.Point, radius int, c color.Color) {
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			dx, dy := x-center.X, y-center.Y
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, c)
			}
		}
	}
}
