package lulc

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteCSV writes one Class,Pixel_Count,Area_km2 row per stat, in stat order.
// A prior file of the same name is truncated first.
func WriteCSV(path string, stats []ClassStat) (err error) {
	if len(stats) == 0 {
		return ErrNoStats
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err = w.Write(csvHeader); err != nil {
		return
	}
	row := make([]string, len(csvHeader))
	for _, s := range stats {
		row[0] = strconv.FormatInt(int64(s.Class), 10)
		row[1] = strconv.Itoa(s.PixelCount)
		row[2] = strconv.FormatFloat(s.AreaKm2, 'f', -1, 64)
		if err = w.Write(row); err != nil {
			return
		}
	}
	w.Flush()
	err = w.Error()
	return
}
