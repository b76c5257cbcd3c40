// Package raster reads and writes geo-referenced grids through GDAL. It
// is the persistence collaborator of the diversity engine: coordinate
// metadata is carried through untouched, band descriptions label the
// logical content of each band.
package raster

import (
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/grid"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/utils"
)

// GeoRef is the coordinate metadata passed through from an input raster
// to every derived output.
type GeoRef struct {
	Transform  [6]float64
	Projection string
}

// Band pairs one diversity map with the description written to its
// output band.
type Band struct {
	Label string
	Data  grid.Map
}

// openRaster opens a dataset swallowing GDAL warnings, which godal would
// otherwise turn into errors.
func openRaster(path string) (*godal.Dataset, error) {
	var ds *godal.Dataset
	var err error
	utils.ExecuteWithMutex(func() {
		ds, err = godal.Open(path, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
			if ec == godal.CE_Warning {
				return nil
			}
			return fmt.Errorf("gdal: %s", msg)
		}))
	})
	return ds, err
}

// Open opens a raster dataset for reading.
func Open(path string) (*godal.Dataset, error) {
	return openRaster(path)
}

// ReadGeoRef extracts the geotransform and projection of a dataset.
func ReadGeoRef(ds *godal.Dataset) (GeoRef, error) {
	transform, err := ds.GeoTransform()
	if err != nil {
		return GeoRef{}, fmt.Errorf("failed to get geotransform: %w", err)
	}

	sr := ds.SpatialRef()
	defer sr.Close()
	wkt, err := sr.WKT()
	if err != nil {
		return GeoRef{}, fmt.Errorf("failed to export projection: %w", err)
	}

	return GeoRef{Transform: transform, Projection: wkt}, nil
}

// ReadBand reads band idx (0-based) row by row into nested slices.
func ReadBand(ds *godal.Dataset, idx int) ([][]float64, error) {
	bands := ds.Bands()
	if idx < 0 || idx >= len(bands) {
		return nil, fmt.Errorf("dataset has %d bands, want band %d", len(bands), idx+1)
	}
	band := bands[idx]

	width := ds.Structure().SizeX
	height := ds.Structure().SizeY
	data := make([][]float64, height)

	var err error
	utils.ExecuteWithMutex(func() {
		for y := 0; y < height; y++ {
			data[y] = make([]float64, width)
			if e := band.Read(0, y, data[y], width, 1); e != nil {
				err = fmt.Errorf("failed to read band %d row %d: %w", idx+1, y, e)
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// ReadCube quantizes every band of a local multi-band raster into one
// cube slice, oldest band first, and returns per-band labels alongside
// the coordinate metadata. This is the entry point of the offline
// analysis mode.
func ReadCube(path string, factor float64) (grid.Cube, GeoRef, []string, error) {
	ds, err := openRaster(path)
	if err != nil {
		return nil, GeoRef{}, nil, fmt.Errorf("failed to open raster %s: %w", path, err)
	}
	defer ds.Close()

	ref, err := ReadGeoRef(ds)
	if err != nil {
		return nil, GeoRef{}, nil, err
	}

	nBands := ds.Structure().NBands
	cube := make(grid.Cube, 0, nBands)
	labels := make([]string, 0, nBands)
	for i := 0; i < nBands; i++ {
		band, err := ReadBand(ds, i)
		if err != nil {
			return nil, GeoRef{}, nil, err
		}
		cube = append(cube, grid.Quantize(band, factor))
		labels = append(labels, fmt.Sprintf("band_%02d", i+1))
	}

	if err := cube.Validate(); err != nil {
		return nil, GeoRef{}, nil, fmt.Errorf("invalid cube in %s: %w", path, err)
	}
	return cube, ref, labels, nil
}

// WriteBands writes one float64 band per diversity map into a new LZW
// GeoTIFF, carrying the coordinate metadata through unchanged and
// setting each band's description to its label. All maps must share
// dimensions.
func WriteBands(path string, ref GeoRef, bands []Band) error {
	if len(bands) == 0 {
		return fmt.Errorf("no bands to write to %s", path)
	}
	height := len(bands[0].Data)
	if height == 0 {
		return fmt.Errorf("empty map for band %s", bands[0].Label)
	}
	width := len(bands[0].Data[0])
	for _, b := range bands {
		if len(b.Data) != height || len(b.Data[0]) != width {
			return fmt.Errorf("band %s does not match the %dx%d output shape", b.Label, height, width)
		}
	}

	var ds *godal.Dataset
	var err error
	utils.ExecuteWithMutex(func() {
		ds, err = godal.Create(godal.GTiff, path, len(bands), godal.Float64, width, height,
			godal.CreationOption("COMPRESS=LZW"))
	})
	if err != nil {
		return fmt.Errorf("failed to create raster %s: %w", path, err)
	}
	defer ds.Close()

	if err := ds.SetGeoTransform(ref.Transform); err != nil {
		return fmt.Errorf("failed to set geotransform: %w", err)
	}
	if ref.Projection != "" {
		sr, err := godal.NewSpatialRefFromWKT(ref.Projection)
		if err != nil {
			return fmt.Errorf("failed to parse projection: %w", err)
		}
		defer sr.Close()
		if err := ds.SetSpatialRef(sr); err != nil {
			return fmt.Errorf("failed to set projection: %w", err)
		}
	}

	for i, b := range bands {
		band := ds.Bands()[i]
		for y := 0; y < height; y++ {
			if err := band.Write(0, y, b.Data[y], width, 1); err != nil {
				return fmt.Errorf("failed to write band %s row %d: %w", b.Label, y, err)
			}
		}
		if err := band.SetDescription(b.Label); err != nil {
			return fmt.Errorf("failed to set description for band %s: %w", b.Label, err)
		}
	}
	return nil
}
