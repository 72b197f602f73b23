package lulc

import (
	"fmt"
	"os"
	"strconv"

	"github.com/wgdzlh/lulc/log"

	gdal "github.com/airbusgeo/godal"
	"go.uber.org/zap"
)

// ProjectRaster warps the raster at src into the target coordinate system and
// persists it at dst. A prior dst of the same name is replaced.
func (g *Toolbox) ProjectRaster(src, dst string, epsg int) (err error) {
	sds, err := gdal.Open(src, gdal.RasterOnly())
	if err != nil {
		log.Error(g.logTag+"open tif failed", zap.Error(err))
		err = ErrInvalidTif
		return
	}
	defer sds.Close()
	log.Info(g.logTag+"project raster", zap.String("src", src), zap.Int("epsg", epsg))
	opts := []string{"-t_srs", fmt.Sprintf("epsg:%d", epsg), "-overwrite"}
	ods, err := gdal.Warp(dst, []*gdal.Dataset{sds}, opts)
	if err != nil {
		log.Error(g.logTag+"failed to project raster", zap.Error(err))
		return
	}
	ods.Close()
	return
}

// ClipRasterToBoundary crops the raster at src to the boundary shapefile,
// flagging cells outside the boundary with nodata. The boundary may carry any
// coordinate system; it is merged into a single 4326 polygon and handed to
// warp as a cutline, which reprojects it onto the raster grid.
func (g *Toolbox) ClipRasterToBoundary(src, dst, boundary string, nodata int32) (err error) {
	cutline, err := g.boundaryCutline(boundary)
	if err != nil {
		return
	}
	defer os.Remove(cutline)
	sds, err := gdal.Open(src, gdal.RasterOnly())
	if err != nil {
		log.Error(g.logTag+"open tif failed", zap.Error(err))
		err = ErrInvalidTif
		return
	}
	defer sds.Close()
	log.Info(g.logTag+"clip raster", zap.String("src", src), zap.String("boundary", boundary))
	opts := []string{
		"-cutline", cutline,
		"-crop_to_cutline",
		"-dstnodata", strconv.Itoa(int(nodata)),
		"-overwrite",
	}
	ods, err := gdal.Warp(dst, []*gdal.Dataset{sds}, opts)
	if err != nil {
		log.Error(g.logTag+"failed to clip raster", zap.Error(err))
		return
	}
	ods.Close()
	return
}

// ReadClassGrid loads the single class band of tif into memory as int32,
// carrying the band nodata value when one is declared.
func (g *Toolbox) ReadClassGrid(tif string) (ret *ClassGrid, err error) {
	sds, err := gdal.Open(tif, gdal.RasterOnly())
	if err != nil {
		log.Error(g.logTag+"open tif failed", zap.Error(err))
		err = ErrInvalidTif
		return
	}
	defer sds.Close()
	tifBands := sds.Bands()
	if bc := len(tifBands); bc != 1 {
		log.Error(g.logTag+"class tif can have only one band", zap.Int("bands", bc))
		err = ErrWrongTif
		return
	}
	band := tifBands[0]
	bandStruct := band.Structure()
	x := bandStruct.SizeX
	y := bandStruct.SizeY
	log.Info(g.logTag+"read class tif", zap.Int("dt", int(bandStruct.DataType)), zap.Int("width", x), zap.Int("height", y))
	buf := make([]int32, x*y)
	if err = band.IO(gdal.IORead, 0, 0, buf, x, y); err != nil {
		log.Error(g.logTag+"read class band failed", zap.Error(err))
		err = ErrTifReadFailed
		return
	}
	ret = &ClassGrid{
		Data:   buf,
		Width:  x,
		Height: y,
	}
	if nd, ok := band.NoData(); ok {
		ret.NoData = int32(nd)
		ret.HasNoData = true
	}
	return
}

// PolygonizeClasses converts the clipped class raster into polygons, one
// feature per connected patch of equal cell value, with the value stored in
// the gridcode field. Nodata cells are masked out, and no simplification is
// applied: polygon edges follow cell boundaries exactly.
func (g *Toolbox) PolygonizeClasses(tif, shp string) (err error) {
	sds, err := gdal.Open(tif, gdal.RasterOnly())
	if err != nil {
		log.Error(g.logTag+"open tif failed", zap.Error(err))
		err = ErrInvalidTif
		return
	}
	defer sds.Close()
	tifBands := sds.Bands()
	if bc := len(tifBands); bc != 1 {
		log.Error(g.logTag+"class tif can have only one band", zap.Int("bands", bc))
		err = ErrWrongTif
		return
	}
	g.deleteShpIfAny(shp)
	log.Info(g.logTag+"polygonize classes", zap.String("tif", tif), zap.String("shp", shp))
	vds, err := gdal.CreateVector(gdal.Shapefile, shp)
	if err != nil {
		log.Error(g.logTag+"create shp failed", zap.Error(err))
		err = ErrGdalDriverCreate
		return
	}
	defer vds.Close()
	layer, err := vds.CreateLayer("", sds.SpatialRef(), gdal.GTPolygon,
		gdal.NewFieldDefinition(SHP_FIELD_GRIDCODE, gdal.FTInt))
	if err != nil {
		log.Error(g.logTag+"create layer failed", zap.Error(err))
		return
	}
	if err = tifBands[0].Polygonize(layer, gdal.PixelValueFieldIndex(0)); err != nil {
		log.Error(g.logTag+"polygonize failed", zap.Error(err))
	}
	return
}
