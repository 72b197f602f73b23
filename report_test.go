package lulc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.csv")
	stats := []ClassStat{
		{Class: 1, PixelCount: 100, AreaKm2: 0.09},
		{Class: 2, PixelCount: 50, AreaKm2: 0.045},
	}
	if err := WriteCSV(path, stats); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "Class,Pixel_Count,Area_km2\n1,100,0.09\n2,50,0.045\n"
	if string(got) != want {
		t.Fatalf("csv mismatch:\n%s", got)
	}

	// rewriting under the same path replaces the older report
	if err = WriteCSV(path, stats[:1]); err != nil {
		t.Fatal(err)
	}
	if got, err = os.ReadFile(path); err != nil {
		t.Fatal(err)
	}
	want = "Class,Pixel_Count,Area_km2\n1,100,0.09\n"
	if string(got) != want {
		t.Fatalf("csv not replaced:\n%s", got)
	}
}

func TestWriteCSVNoStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.csv")
	if err := WriteCSV(path, nil); !errors.Is(err, ErrNoStats) {
		t.Fatalf("want ErrNoStats, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("no csv should be written without stats")
	}
}
