package lulc

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	stats := []ClassStat{
		{Class: 1, PixelCount: 100, AreaKm2: 0.09},
		{Class: 2, PixelCount: 50, AreaKm2: 0.045},
		{Class: 3, PixelCount: 260, AreaKm2: 0.234},
	}
	if err := RenderChart(path, stats); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("chart rendered: %dx%d", cfg.Width, cfg.Height)
}

func TestRenderChartNoStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	if err := RenderChart(path, nil); !errors.Is(err, ErrNoStats) {
		t.Fatalf("want ErrNoStats, got %v", err)
	}
}
