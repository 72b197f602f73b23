package lulc

import "path/filepath"

// ClassStat is one LULC class tally: how many clipped-grid cells carry the
// class value, and the area they cover.
type ClassStat struct {
	Class      int32
	PixelCount int
	AreaKm2    float64
}

// ClassGrid is a single-band categorical raster read into memory, row-major.
type ClassGrid struct {
	Data      []int32
	Width     int
	Height    int
	NoData    int32
	HasNoData bool
}

func (g *ClassGrid) Cell(x, y int) int32 {
	return g.Data[y*g.Width+x]
}

// ValidCells counts cells that carry a class value, i.e. everything except
// nodata.
func (g *ClassGrid) ValidCells() (n int) {
	if !g.HasNoData {
		return len(g.Data)
	}
	for _, v := range g.Data {
		if v != g.NoData {
			n++
		}
	}
	return
}

// AreaJob holds one run's parameters, mirroring the tool dialog: a class
// raster, a boundary polygon layer, the declared pixel resolution, output
// naming and the target coordinate system.
type AreaJob struct {
	RasterPath   string
	BoundaryPath string
	PixelSize    float64 // meters
	OutputDir    string
	Name         string
	TargetEPSG   int
	NoData       int32

	// Explicit class list; nil means discover classes from the clipped grid.
	// NumClasses must match len(ClassValues) when a list is given.
	NumClasses  int
	ClassValues []int32

	// Variant-2 extras.
	Vectorize bool
	GeoJSON   bool
	Preview   bool
}

// OutputPaths are the deterministic artifact locations for a job name.
type OutputPaths struct {
	Projected string
	Clipped   string
	CSV       string
	Chart     string
	Vector    string
	Dissolved string
	Preview   string
}

func (j AreaJob) OutputPaths() OutputPaths {
	base := filepath.Join(j.OutputDir, j.Name)
	return OutputPaths{
		Projected: base + PROJECTED_TIF_SUFFIX,
		Clipped:   base + CLIPPED_TIF_SUFFIX,
		CSV:       base + FILE_EXT_CSV,
		Chart:     base + CHART_PNG_SUFFIX,
		Vector:    base + FILE_EXT_SHP,
		Dissolved: base + DISSOLVED_SHP_SUFFIX,
		Preview:   base + PREVIEW_PNG_SUFFIX,
	}
}
