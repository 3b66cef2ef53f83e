package spatial

import (
	"encoding/json"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// geometry mirrors the GeoJSON geometry envelope; coordinates stay raw until
// the type is known.
type geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Centroid computes the [lon, lat] centroid of a GeoJSON Polygon or
// MultiPolygon, using the outer ring(s) only. The vertices are averaged on the
// unit sphere so zones spanning the antimeridian would not wrap incorrectly.
// Returns ok=false for unsupported or malformed geometry.
func Centroid(raw json.RawMessage) (lonLat [2]float64, ok bool) {
	var g geometry
	if err := json.Unmarshal(raw, &g); err != nil {
		return lonLat, false
	}

	var outerRings [][][]float64

	switch g.Type {
	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(g.Coordinates, &rings); err != nil || len(rings) == 0 {
			return lonLat, false
		}
		outerRings = append(outerRings, rings[0])
	case "MultiPolygon":
		var polys [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &polys); err != nil {
			return lonLat, false
		}
		for _, rings := range polys {
			if len(rings) > 0 {
				outerRings = append(outerRings, rings[0])
			}
		}
	default:
		return lonLat, false
	}

	var sum r3.Vector
	var n int
	for _, ring := range outerRings {
		// GeoJSON rings repeat the first vertex at the end
		if len(ring) > 1 && ring[0][0] == ring[len(ring)-1][0] && ring[0][1] == ring[len(ring)-1][1] {
			ring = ring[:len(ring)-1]
		}
		for _, coord := range ring {
			if len(coord) < 2 {
				continue
			}
			p := s2.PointFromLatLng(s2.LatLngFromDegrees(coord[1], coord[0]))
			sum = sum.Add(p.Vector)
			n++
		}
	}

	if n == 0 || sum.Norm() == 0 {
		return lonLat, false
	}

	ll := s2.LatLngFromPoint(s2.Point{Vector: sum.Normalize()})
	lonLat[0] = ll.Lng.Degrees()
	lonLat[1] = ll.Lat.Degrees()
	return lonLat, true
}
