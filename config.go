package lulc

const (
	FILE_EXT_SHP  = ".shp"
	FILE_EXT_TIF  = ".tif"
	FILE_EXT_CSV  = ".csv"
	FILE_EXT_PNG  = ".png"
	FILE_EXT_JSON = ".json"

	SHAPE_ENCODING  = "UTF-8"
	SHP_DRIVER_NAME = "ESRI Shapefile"
	ENCODING_OPTION = "ENCODING=" + SHAPE_ENCODING

	UNIVERSAL_SRID = 4326
	GEOJSON_SRID   = 4326

	// Deterministic artifact suffixes, all derived from the job output name.
	PROJECTED_TIF_SUFFIX = "_projected" + FILE_EXT_TIF
	CLIPPED_TIF_SUFFIX   = "_clipped" + FILE_EXT_TIF
	CHART_PNG_SUFFIX     = "_chart" + FILE_EXT_PNG
	PREVIEW_PNG_SUFFIX   = "_preview" + FILE_EXT_PNG
	DISSOLVED_SHP_SUFFIX = "_dissolved" + FILE_EXT_SHP

	// Field names on polygonized/dissolved layers. gridcode matches the
	// raster-to-polygon convention most GIS stacks expect.
	SHP_FIELD_GRIDCODE = "gridcode"
	SHP_FIELD_AREA_KM2 = "Area_km2"

	SQ_METERS_PER_KM2 = 1e6

	DEFAULT_NODATA      = 0
	DEFAULT_PREVIEW_DIM = 1024

	ErrColumnMissingTemplate = `missing field %q in shapefile`

	TMP_GEOJSON = "cutline_%s.json"
)

var csvHeader = []string{"Class", "Pixel_Count", "Area_km2"}
