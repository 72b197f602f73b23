package main

import (
	"fmt"
	"os"

	"github.com/wgdzlh/lulc"
	"github.com/wgdzlh/lulc/log"
	"github.com/wgdzlh/lulc/utils"

	"github.com/airbusgeo/godal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	rasterPath   string
	boundaryPath string
	pixelSize    float64
	outDir       string
	outName      string
	epsg         int
	nodata       int32
	tmpDir       string

	classValues string
	numClasses  int
	geojson     bool
	preview     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lulcarea",
	Short: "Per-class area statistics for a land-use/land-cover raster",
	Long: `lulcarea projects a categorical LULC raster to a target coordinate system,
clips it to a boundary polygon shapefile, and reports the pixel count and
area in km² of each class as a CSV table and a bar chart.

The vector subcommand additionally converts the clipped raster to polygons,
dissolves them by class value and stores each dissolved feature's planar
area in an Area_km2 field.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		log.SetLogger(logger)
		godal.RegisterAll()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Tally per-class areas of the clipped raster, discovering classes",
	RunE:  runStats,
}

var vectorCmd = &cobra.Command{
	Use:   "vector",
	Short: "Tally explicit classes and vectorize the clipped raster",
	Long: `Beyond the stats report, vector polygonizes the clipped raster, dissolves
the polygons by class value and writes each dissolved feature's planar area
into an Area_km2 field.`,
	RunE: runVector,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVarP(&rasterPath, "raster", "r", "", "LULC class raster (required)")
	pf.StringVarP(&boundaryPath, "boundary", "b", "", "Boundary polygon shapefile (required)")
	pf.Float64VarP(&pixelSize, "pixel-size", "p", 30, "Pixel resolution in meters")
	pf.StringVarP(&outDir, "out-dir", "o", ".", "Output folder, created when absent")
	pf.StringVarP(&outName, "name", "n", "", "Output name without extension (default: raster name)")
	pf.IntVarP(&epsg, "epsg", "e", 0, "EPSG code of the target coordinate system (required)")
	pf.Int32Var(&nodata, "nodata", lulc.DEFAULT_NODATA, "Cell value marking nodata in the clipped raster")
	pf.StringVar(&tmpDir, "tmp-dir", "", "Directory for temporary cutline files")
	rootCmd.MarkPersistentFlagRequired("raster")
	rootCmd.MarkPersistentFlagRequired("boundary")
	rootCmd.MarkPersistentFlagRequired("epsg")

	statsCmd.Flags().BoolVar(&preview, "preview", false, "Render a colored preview PNG of the clipped classes")

	vectorCmd.Flags().StringVarP(&classValues, "classes", "c", "", "Comma-separated class values (required)")
	vectorCmd.Flags().IntVar(&numClasses, "num-classes", 0, "Number of classes, must match --classes (required)")
	vectorCmd.Flags().BoolVar(&geojson, "geojson", false, "Export the dissolved layer as GeoJSON in srid 4326")
	vectorCmd.Flags().BoolVar(&preview, "preview", false, "Render a colored preview PNG of the clipped classes")
	vectorCmd.MarkFlagRequired("classes")
	vectorCmd.MarkFlagRequired("num-classes")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(vectorCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	return runJob(baseJob())
}

func runVector(cmd *cobra.Command, args []string) error {
	job := baseJob()
	job.ClassValues = utils.StrToInt32s(classValues, ",")
	job.NumClasses = numClasses
	job.Vectorize = true
	job.GeoJSON = geojson
	fmt.Printf("Classes: %s\n", utils.Int32sToStr(job.ClassValues, ','))
	return runJob(job)
}

func baseJob() lulc.AreaJob {
	name := outName
	if name == "" {
		name = utils.GetFilenameWithoutExt(rasterPath)
	}
	return lulc.AreaJob{
		RasterPath:   rasterPath,
		BoundaryPath: boundaryPath,
		PixelSize:    pixelSize,
		OutputDir:    outDir,
		Name:         name,
		TargetEPSG:   epsg,
		NoData:       nodata,
		Preview:      preview,
	}
}

func runJob(job lulc.AreaJob) error {
	if !utils.FileExists(job.RasterPath) {
		return fmt.Errorf("raster not found: %s", job.RasterPath)
	}
	if !utils.FileExists(job.BoundaryPath) {
		return fmt.Errorf("boundary not found: %s", job.BoundaryPath)
	}
	g := lulc.NewToolbox(tmpDir)
	stats, err := g.RunAreaJob(job)
	if err != nil {
		return err
	}
	paths := job.OutputPaths()
	fmt.Printf("Area stats saved to %s\n", paths.CSV)
	for _, s := range stats {
		fmt.Printf("  class %d: %d px, %g km2\n", s.Class, s.PixelCount, s.AreaKm2)
	}
	return nil
}
