package lulc

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestClassColors(t *testing.T) {
	classes := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	colors := ClassColors(classes)
	if len(colors) != len(classes) {
		t.Fatalf("want %d colors, got %d", len(classes), len(colors))
	}
	seen := map[color.NRGBA]int32{}
	for c, col := range colors {
		if col.A != 255 {
			t.Fatalf("class %d color not opaque: %v", c, col)
		}
		if prev, dup := seen[col]; dup {
			t.Fatalf("classes %d and %d share color %v", prev, c, col)
		}
		seen[col] = c
	}
}

func TestRenderPreview(t *testing.T) {
	grid := &ClassGrid{
		Data:      []int32{1, 1, 0, 2, 2, 1, 0, 0, 1, 2, 2, 1},
		Width:     4,
		Height:    3,
		NoData:    0,
		HasNoData: true,
	}
	path := filepath.Join(t.TempDir(), "preview.png")
	if err := RenderPreview(grid, []int32{1, 2}, path, 0); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("unexpected preview size: %v", b)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a == 0 {
		t.Fatal("class cell should be opaque")
	}
	if _, _, _, a := img.At(2, 0).RGBA(); a != 0 {
		t.Fatal("nodata cell should be transparent")
	}
}

func TestRenderPreviewDownscale(t *testing.T) {
	grid := &ClassGrid{Data: make([]int32, 2048*2), Width: 2048, Height: 2}
	for i := range grid.Data {
		grid.Data[i] = 1
	}
	path := filepath.Join(t.TempDir(), "preview.png")
	if err := RenderPreview(grid, []int32{1}, path, 1024); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() > 1024 || b.Dy() > 1024 {
		t.Fatalf("preview not fitted: %v", b)
	}
}
