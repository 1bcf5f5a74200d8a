// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, errors.New(path + ": empty image")
	}
	return img, nil
}

// resizeImage scales img to width by height, interpolating when filter
// is "linear".
func resizeImage(img image.Image, width, height int, filter string) *image.NRGBA {
	var s draw.Scaler = draw.NearestNeighbor
	if filter == "linear" {
		s = draw.ApproxBiLinear
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	s.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
