package models

import "encoding/json"

// Zone represents one row of the zone dimension table. Geometry is the stored
// GeoJSON geometry object, nil when the zone has no polygon.
type Zone struct {
	LocationID  int64
	Borough     string
	Zone        string
	ServiceZone string
	Geometry    json.RawMessage
}

// FeatureProperties labels a zone polygon on the map. Centroid is [lon, lat],
// omitted when the stored geometry could not be parsed.
type FeatureProperties struct {
	LocationID  int64     `json:"location_id"`
	Borough     string    `json:"borough"`
	Zone        string    `json:"zone"`
	ServiceZone string    `json:"service_zone"`
	Centroid    []float64 `json:"centroid,omitempty"`
}

// Feature is a GeoJSON feature. The geometry payload is passed through
// verbatim from storage, never reprojected.
type Feature struct {
	Type       string            `json:"type"`
	Properties FeatureProperties `json:"properties"`
	Geometry   json.RawMessage   `json:"geometry"`
}

// FeatureCollection is the /zones response body.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}
