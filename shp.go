package lulc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wgdzlh/lulc/log"
	"github.com/wgdzlh/lulc/utils"

	"github.com/google/uuid"
	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// parseShp merges every feature of the shapefile into one geometry,
// transformed to srid 4326 unless noTrans is set.
func (g *Toolbox) parseShp(shp string, noTrans ...bool) (ret gdal.Geometry, err error) {
	driver := gdal.OGRDriverByName(SHP_DRIVER_NAME)
	ds, ok := driver.Open(shp, 0)
	if !ok {
		err = ErrGdalDriverOpen
		return
	}
	defer ds.Destroy()
	var (
		layer    = ds.LayerByIndex(0)
		mayTrans = len(noTrans) == 0 || !noTrans[0]
		srid     int
		feature  *gdal.Feature
		gc       []destroyable
	)
	if mayTrans {
		if srid, err = g.getSrid(layer.SpatialReference()); err != nil {
			return
		}
	}
	defer func() {
		for _, v := range gc {
			v.Destroy()
		}
	}()
	ret = gdal.Create(gdal.GT_Polygon)
	for {
		if feature = layer.NextFeature(); feature != nil {
			gc = append(gc, *feature)
			gc = append(gc, ret)
			ret = ret.Union(feature.Geometry())
		} else {
			break
		}
	}
	if mayTrans && srid != UNIVERSAL_SRID {
		var tRef gdal.SpatialReference
		if tRef, err = g.getSridRef(UNIVERSAL_SRID); err == nil {
			if err = ret.TransformTo(tRef); err != nil {
				log.Error(g.logTag+"geo transform failed", zap.Error(err))
			}
		}
		if err != nil {
			gc = append(gc, ret)
		}
	}
	return
}

// boundaryCutline writes the merged boundary polygon as a uuid-named GeoJSON
// file in tmpDir, ready to be handed to warp as a cutline. Callers remove the
// file once the warp is done.
func (g *Toolbox) boundaryCutline(boundary string) (cutline string, err error) {
	geo, err := g.parseShp(boundary)
	if err != nil {
		return
	}
	defer geo.Destroy()
	if geo.IsEmpty() {
		err = ErrEmptyBoundary
		return
	}
	switch geo.Type() {
	case gdal.GT_Polygon, gdal.GT_MultiPolygon:
	default:
		err = ErrGdalWrongGeoType
		return
	}
	cutline = filepath.Join(g.tmpDir, fmt.Sprintf(TMP_GEOJSON, uuid.NewString()))
	err = os.WriteFile(cutline, utils.S2B(geo.ToJSON()), os.ModePerm)
	return
}

// getShpDriver creates an empty shapefile at shp with a single layer in the
// given srid. Callers destroy the returned data source to flush the file.
func (g *Toolbox) getShpDriver(shp string, srid int) (ds gdal.DataSource, ref gdal.SpatialReference, layer gdal.Layer, err error) {
	log.Info(g.logTag+"output shp files", zap.String("shp", shp), zap.Int("srid", srid))
	driver := gdal.OGRDriverByName(SHP_DRIVER_NAME)
	ds, ok := driver.Create(shp, nil)
	if !ok {
		err = ErrGdalDriverCreate
		return
	}
	if ref, err = g.getSridRef(srid); err != nil {
		return
	}
	layer = ds.CreateLayer("", ref, gdal.GT_Unknown, []string{ENCODING_OPTION})
	return
}

// deleteShpIfAny drops a prior shapefile of the same name, so reruns replace
// their outputs instead of failing on create.
func (g *Toolbox) deleteShpIfAny(shp string) {
	sds, err := gdal.OpenEx(shp, gdal.OFVector, nil, nil, nil)
	if err != nil {
		return
	}
	driver := sds.Driver()
	sds.Close()
	if e := driver.DeleteDataset(shp); e != nil {
		log.Warn(g.logTag+"delete old shp failed", zap.String("shp", shp), zap.Error(e))
	}
}

// ExportGeoJSON converts the shapefile to a GeoJSON file alongside it, named
// after the target srid (default 4326).
func (g *Toolbox) ExportGeoJSON(shp string, dstSrid ...int) (out string, err error) {
	log.Info(g.logTag+"start geojson shp", zap.String("shp", shp))
	sds, err := gdal.OpenEx(shp, gdal.OFVector, nil, nil, nil)
	if err != nil {
		log.Error(g.logTag+"open shp error", zap.Error(err))
		return
	}
	defer sds.Close()

	tSrid := GEOJSON_SRID
	if len(dstSrid) > 0 && dstSrid[0] > 0 {
		tSrid = dstSrid[0]
	}
	prefix := strings.TrimSuffix(shp, FILE_EXT_SHP)
	out = prefix + fmt.Sprintf("_%d"+FILE_EXT_JSON, tSrid)
	dds, err := gdal.VectorTranslate(out, []gdal.Dataset{sds}, []string{"-f", "GeoJSON", "-t_srs", fmt.Sprintf("epsg:%d", tSrid), "-overwrite"})
	if err != nil {
		log.Error(g.logTag + "VectorTranslate failed")
		return
	}
	dds.Close() // flushes the converted json file
	log.Info(g.logTag+"end geojson shp", zap.String("shp", shp), zap.String("out", out))
	return
}
