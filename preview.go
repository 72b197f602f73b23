package lulc

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// ClassColors assigns each class a color from an evenly spaced HSV wheel,
// stable for a given class order.
func ClassColors(classes []int32) map[int32]color.NRGBA {
	colors := make(map[int32]color.NRGBA, len(classes))
	n := len(classes)
	for i, c := range classes {
		h := float64(i) * 360 / float64(n)
		r, g, b := colorful.Hsv(h, 0.55, 0.92).RGB255()
		colors[c] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// RenderPreview paints the clipped grid with one color per class, leaving
// nodata and unlisted cells transparent, and fits the result inside
// maxDim×maxDim before encoding to PNG.
func RenderPreview(g *ClassGrid, classes []int32, path string, maxDim int) (err error) {
	if maxDim <= 0 {
		maxDim = DEFAULT_PREVIEW_DIM
	}
	colors := ClassColors(classes)
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	i := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if c, ok := colors[g.Data[i]]; ok {
				img.SetNRGBA(x, y, c)
			}
			i++
		}
	}
	var out image.Image = img
	if g.Width > maxDim || g.Height > maxDim {
		out = imaging.Fit(img, maxDim, maxDim, imaging.NearestNeighbor)
	}
	err = imaging.Save(out, path)
	return
}
