package lulc

import (
	"math"
	"sort"
)

// DiscoverClasses returns the distinct class values present in the grid in
// ascending order. Zero and nodata cells denote background and never form a
// class of their own.
func DiscoverClasses(g *ClassGrid) (classes []int32) {
	seen := map[int32]struct{}{}
	for _, v := range g.Data {
		if v == 0 || (g.HasNoData && v == g.NoData) {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			classes = append(classes, v)
		}
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	return
}

// TallyClasses counts the cells carrying each requested class value in a
// single pass over the grid and converts counts to km² with the declared
// pixel size. One stat is returned per requested class, in the given order;
// classes absent from the grid get a zero count.
func TallyClasses(g *ClassGrid, classes []int32, pixelSize float64) (stats []ClassStat) {
	counts := make(map[int32]int, len(classes))
	for _, c := range classes {
		counts[c] = 0
	}
	for _, v := range g.Data {
		if n, ok := counts[v]; ok {
			counts[v] = n + 1
		}
	}
	stats = make([]ClassStat, len(classes))
	for i, c := range classes {
		stats[i] = ClassStat{
			Class:      c,
			PixelCount: counts[c],
			AreaKm2:    AreaKm2(counts[c], pixelSize),
		}
	}
	return
}

// AreaKm2 is the area covered by count square cells of pixelSize meters,
// rounded to 4 decimals.
func AreaKm2(count int, pixelSize float64) float64 {
	return round4(float64(count) * pixelSize * pixelSize / SQ_METERS_PER_KM2)
}

// round4 rounds half away from zero.
func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
