package lulc

import (
	"strconv"
	"sync"

	"github.com/wgdzlh/lulc/log"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// Toolbox wraps the GDAL/OGR calls of one LULC area run. Methods are
// synchronous; every stage blocks until the underlying library call returns,
// and the first failure aborts the run.
type Toolbox struct {
	refMap map[int]gdal.SpatialReference
	rLock  sync.Mutex
	tmpDir string
	logTag string
}

// Memory objects created by the GDAL C library must be reclaimed with Destroy.
type destroyable interface {
	Destroy()
}

// NewToolbox returns a reusable toolbox. tmpDir is an optional directory for
// temporary cutline files (default: current directory).
func NewToolbox(tmpDir ...string) *Toolbox {
	g := &Toolbox{
		refMap: map[int]gdal.SpatialReference{},
		logTag: "LulcToolbox:",
	}
	if len(tmpDir) > 0 && tmpDir[0] != "" {
		g.tmpDir = tmpDir[0]
	}
	return g
}

// Spatial reference for srid. Cached and shared across runs, so never
// destroyed here.
func (g *Toolbox) getSridRef(srid int) (ref gdal.SpatialReference, err error) {
	g.rLock.Lock()
	defer g.rLock.Unlock()
	ref, ok := g.refMap[srid]
	if ok {
		return
	}
	ref = gdal.CreateSpatialReference("")
	if err = ref.FromEPSG(srid); err != nil {
		log.Error(g.logTag+"set ref srid failed", zap.Int("srid", srid), zap.Error(err))
		ref.Destroy()
		return
	}
	// Keep data axes in traditional GIS order (lon,lat) rather than the
	// CRS-defined order, so coordinates never flip when transforming
	// geometries or exporting GeoJSON.
	ref.SetAxisMappingStrategy(gdal.OAMS_TraditionalGisOrder)
	g.refMap[srid] = ref
	return
}

func (g *Toolbox) getSrid(sp gdal.SpatialReference) (srid int, err error) {
	rawId, ok := sp.AttrValue("AUTHORITY", 1)
	if !ok {
		wkt, _ := sp.ToWKT()
		log.Error(g.logTag+"spatial ref has no authority", zap.String("attr", wkt))
		err = ErrVoidSrid
		return
	}
	srid, err = strconv.Atoi(rawId)
	log.Info(g.logTag+"got srid from sp", zap.String("id", rawId))
	return
}
