package lulc

import (
	"github.com/wgdzlh/lulc/log"
	"github.com/wgdzlh/lulc/utils"

	"go.uber.org/zap"
)

// Validate applies the parameter rules that must hold before any file is
// touched: an explicit class list has to match the declared class count, and
// vectorizing needs an explicit list to dissolve against.
func (j AreaJob) Validate() error {
	if (j.NumClasses > 0 || len(j.ClassValues) > 0) && j.NumClasses != len(j.ClassValues) {
		return ErrClassCountMismatch
	}
	if j.Vectorize && len(j.ClassValues) == 0 {
		return ErrNoClassValues
	}
	return nil
}

// RunAreaJob executes one full toolbox run: project the raster to the target
// coordinate system, clip it to the boundary, tally per-class areas and write
// the CSV report and bar chart, then optionally vectorize the clipped classes.
// The first failing stage aborts the run; artifacts of completed stages stay
// on disk.
func (g *Toolbox) RunAreaJob(job AreaJob) (stats []ClassStat, err error) {
	if err = job.Validate(); err != nil {
		return
	}
	if err = utils.EnsureDir(job.OutputDir); err != nil {
		return
	}
	paths := job.OutputPaths()

	log.Info(g.logTag+"projecting raster to selected coordinate system", zap.String("raster", job.RasterPath), zap.Int("epsg", job.TargetEPSG))
	if err = g.ProjectRaster(job.RasterPath, paths.Projected, job.TargetEPSG); err != nil {
		return
	}
	log.Info(g.logTag+"clipping raster to specified boundary shapefile", zap.String("boundary", job.BoundaryPath))
	if err = g.ClipRasterToBoundary(paths.Projected, paths.Clipped, job.BoundaryPath, job.NoData); err != nil {
		return
	}
	grid, err := g.ReadClassGrid(paths.Clipped)
	if err != nil {
		return
	}
	classes := job.ClassValues
	if len(classes) == 0 {
		classes = DiscoverClasses(grid)
		log.Info(g.logTag+"discovered classes in clipped raster", zap.Int32s("classes", classes))
	}
	log.Info(g.logTag+"calculating area statistics by class", zap.Int("classes", len(classes)))
	stats = TallyClasses(grid, classes, job.PixelSize)
	if err = WriteCSV(paths.CSV, stats); err != nil {
		return
	}
	log.Info(g.logTag+"area stats saved", zap.String("csv", paths.CSV))
	if err = RenderChart(paths.Chart, stats); err != nil {
		return
	}
	log.Info(g.logTag+"area chart saved", zap.String("chart", paths.Chart))

	if job.Vectorize {
		log.Info(g.logTag + "converting clipped raster to polygon")
		if err = g.PolygonizeClasses(paths.Clipped, paths.Vector); err != nil {
			return
		}
		log.Info(g.logTag + "dissolving polygons by class value")
		if err = g.DissolveByClass(paths.Vector, paths.Dissolved); err != nil {
			return
		}
		log.Info(g.logTag + "calculating area per class polygon")
		if err = g.UpdateAreaField(paths.Dissolved); err != nil {
			return
		}
		if job.GeoJSON {
			var out string
			if out, err = g.ExportGeoJSON(paths.Dissolved); err != nil {
				return
			}
			log.Info(g.logTag+"dissolved classes exported", zap.String("geojson", out))
		}
	}
	if job.Preview {
		if err = RenderPreview(grid, classes, paths.Preview, DEFAULT_PREVIEW_DIM); err != nil {
			return
		}
		log.Info(g.logTag+"class preview rendered", zap.String("preview", paths.Preview))
	}
	return
}
