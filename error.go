package lulc

import "errors"

var (
	ErrClassCountMismatch = errors.New("number of class values must match the specified number of classes")
	ErrNoClassValues      = errors.New("no class values provided")
	ErrNoStats            = errors.New("no class statistics to report")
	ErrGdalDriverCreate   = errors.New("gdal driver create err")
	ErrGdalDriverOpen     = errors.New("gdal driver open err")
	ErrVoidSrid           = errors.New("gdal shp with void srid")
	ErrEmptyBoundary      = errors.New("boundary shp is empty")
	ErrGdalWrongGeoType   = errors.New("gdal wrong geo type")
	ErrInvalidTif         = errors.New("invalid tif")
	ErrWrongTif           = errors.New("tif must have exactly one class band")
	ErrTifReadFailed      = errors.New("tif read failed")
)
