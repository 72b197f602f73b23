package lulc

import (
	"fmt"
	"sort"

	"github.com/wgdzlh/lulc/log"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// DissolveByClass merges all polygons sharing a gridcode into one feature per
// class, written to dst in ascending class order. dst keeps the source
// layer's coordinate system. An empty source layer yields an empty dst.
func (g *Toolbox) DissolveByClass(src, dst string) (err error) {
	driver := gdal.OGRDriverByName(SHP_DRIVER_NAME)
	ds, ok := driver.Open(src, 0)
	if !ok {
		err = ErrGdalDriverOpen
		return
	}
	defer ds.Destroy()
	layer := ds.LayerByIndex(0)
	codeIdx := layer.Definition().FieldIndex(SHP_FIELD_GRIDCODE)
	if codeIdx < 0 {
		err = fmt.Errorf(ErrColumnMissingTemplate, SHP_FIELD_GRIDCODE)
		return
	}
	srid, err := g.getSrid(layer.SpatialReference())
	if err != nil {
		return
	}
	log.Info(g.logTag+"dissolve by class", zap.String("src", src), zap.String("dst", dst))
	var (
		merged  = map[int]gdal.Geometry{}
		classes []int
		feature *gdal.Feature
		code    int
		gc      []destroyable
	)
	defer func() {
		for _, v := range gc {
			v.Destroy()
		}
	}()
	for {
		if feature = layer.NextFeature(); feature != nil {
			gc = append(gc, *feature)
			code = feature.FieldAsInteger(codeIdx)
			geo, found := merged[code]
			if !found {
				geo = gdal.Create(gdal.GT_Polygon)
				classes = append(classes, code)
			}
			gc = append(gc, geo)
			merged[code] = geo.Union(feature.Geometry())
		} else {
			break
		}
	}
	for _, geo := range merged {
		gc = append(gc, geo)
	}
	sort.Ints(classes)

	g.deleteShpIfAny(dst)
	dds, _, dLayer, err := g.getShpDriver(dst, srid)
	if err != nil {
		return
	}
	defer dds.Destroy() // flushes the shp file + releases resources
	codeField := gdal.CreateFieldDefinition(SHP_FIELD_GRIDCODE, gdal.FT_Integer)
	if err = dLayer.CreateField(codeField, false); err != nil {
		return
	}
	var (
		def   = dLayer.Definition()
		dFeat gdal.Feature
		valid int
		e     error
		wgc   = make([]destroyable, 0, len(classes))
	)
	for i, c := range classes {
		dFeat = def.Create()
		wgc = append(wgc, dFeat)
		if e = dFeat.SetFID(int64(i)); e != nil {
			log.Error(g.logTag+"err in set feature fid", zap.Error(e))
			continue
		}
		dFeat.SetFieldInteger(0, c)
		if e = dFeat.SetGeometry(merged[c]); e != nil {
			log.Error(g.logTag+"err in set geom of feature", zap.Error(e))
			continue
		}
		if e = dLayer.Create(dFeat); e != nil {
			log.Error(g.logTag+"err in create feature of layer", zap.Error(e))
			continue
		}
		valid++
	}
	for _, v := range wgc {
		v.Destroy()
	}
	log.Info(g.logTag+"dissolved shp created", zap.String("shp", dst), zap.Int("classes", len(classes)), zap.Int("valid", valid))
	return
}

// UpdateAreaField adds an Area_km2 field to the dissolved layer and fills it
// with each feature's planar area in km², rounded to 4 decimals. Areas are
// computed in the layer's own (projected) coordinate system.
func (g *Toolbox) UpdateAreaField(shp string) (err error) {
	driver := gdal.OGRDriverByName(SHP_DRIVER_NAME)
	ds, ok := driver.Open(shp, 1)
	if !ok {
		err = ErrGdalDriverOpen
		return
	}
	defer ds.Destroy()
	layer := ds.LayerByIndex(0)
	areaField := gdal.CreateFieldDefinition(SHP_FIELD_AREA_KM2, gdal.FT_Real)
	if err = layer.CreateField(areaField, false); err != nil {
		return
	}
	areaIdx := layer.Definition().FieldIndex(SHP_FIELD_AREA_KM2)
	if areaIdx < 0 {
		err = fmt.Errorf(ErrColumnMissingTemplate, SHP_FIELD_AREA_KM2)
		return
	}
	log.Info(g.logTag+"update area field", zap.String("shp", shp))
	var (
		feature *gdal.Feature
		cnt     int
		e       error
		gc      []destroyable
	)
	defer func() {
		for _, v := range gc {
			v.Destroy()
		}
	}()
	for {
		if feature = layer.NextFeature(); feature != nil {
			gc = append(gc, *feature)
			feature.SetFieldFloat64(areaIdx, round4(feature.Geometry().Area()/SQ_METERS_PER_KM2))
			if e = layer.SetFeature(*feature); e != nil {
				log.Error(g.logTag+"err in set feature of layer", zap.Error(e))
				continue
			}
			cnt++
		} else {
			break
		}
	}
	log.Info(g.logTag+"area field updated", zap.String("shp", shp), zap.Int("features", cnt))
	return
}
