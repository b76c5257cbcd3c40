package sentinel

import (
	"errors"
	"fmt"
	"math"

	"github.com/airbusgeo/godal"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/properties"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// GetGeometryFromGeoJSON loads the AOI polygon from
// data/geojsons/<aoi>.geojson, taking the first feature.
func GetGeometryFromGeoJSON(aoi string) (*godal.Geometry, error) {
	filePath := fmt.Sprintf("%s/data/geojsons/%s.geojson", properties.RootPath(), aoi)

	godal.RegisterInternalDrivers()
	ds, err := godal.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	layers := ds.Layers()
	if len(layers) == 0 {
		return nil, fmt.Errorf("no layers found in %s", filePath)
	}

	feat := layers[0].NextFeature()
	if feat == nil {
		return nil, fmt.Errorf("no features found in %s", filePath)
	}
	defer feat.Close()

	geom := feat.Geometry()
	wkb, err := geom.WKB()
	if err != nil {
		return nil, fmt.Errorf("failed to export geometry to WKB: %w", err)
	}
	return godal.NewGeometryFromWKB(wkb, geom.SpatialRef())
}

// GetSquareEncompassingPolygon returns the smallest axis-aligned square
// containing the geometry, centered on the center of its bound. Entropy
// rasters are computed over the square so every output row has the same
// width.
func GetSquareEncompassingPolygon(g *godal.Geometry) (*godal.Geometry, error) {
	gj, err := g.GeoJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to export geometry to GeoJSON: %w", err)
	}
	geom, err := geojson.UnmarshalGeometry([]byte(gj))
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal geometry: %w", err)
	}

	bound := geom.Coordinates.Bound()
	side := math.Max(bound.Max[0]-bound.Min[0], bound.Max[1]-bound.Min[1])
	if side <= 0 {
		return nil, errors.New("geometry bound has no extent")
	}
	center := bound.Center()

	minX, maxX := center[0]-side/2, center[0]+side/2
	minY, maxY := center[1]-side/2, center[1]+side/2

	wkt := fmt.Sprintf("POLYGON((%.10f %.10f,%.10f %.10f,%.10f %.10f,%.10f %.10f,%.10f %.10f))",
		minX, minY, maxX, minY, maxX, maxY, minX, maxY, minX, minY)
	return godal.NewGeometryFromWKT(wkt, g.SpatialRef())
}

// GetCentroidLatitudeLongitude returns the planar centroid of the
// geometry, used to identify runs in notifications.
func GetCentroidLatitudeLongitude(g *godal.Geometry) (float64, float64, error) {
	gj, err := g.GeoJSON()
	if err != nil {
		return 0, 0, err
	}
	geom, err := geojson.UnmarshalGeometry([]byte(gj))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to unmarshal geometry: %w", err)
	}

	centroid, area := planar.CentroidArea(geom.Coordinates)
	if area <= 0 {
		return 0, 0, errors.New("error getting centroid")
	}
	return centroid.Y(), centroid.X(), nil
}
