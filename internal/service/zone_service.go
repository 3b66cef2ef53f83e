package service

import (
	"context"
	"time"

	"github.com/urbanmobility/taxi-backend-go/internal/models"
	"github.com/urbanmobility/taxi-backend-go/internal/repository"
	"github.com/urbanmobility/taxi-backend-go/internal/spatial"
)

// ZoneService serves the zone boundary layer for the map
type ZoneService struct {
	repo    *repository.ZoneRepository
	timeout time.Duration
}

// NewZoneService creates a new zone service
func NewZoneService(repo *repository.ZoneRepository, timeout time.Duration) *ZoneService {
	return &ZoneService{repo: repo, timeout: timeout}
}

// FeatureCollection projects every zone with geometry into a GeoJSON feature.
// The stored geometry passes through verbatim; a centroid is added to the
// properties for map label placement when the polygon parses.
func (s *ZoneService) FeatureCollection(ctx context.Context) (models.FeatureCollection, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	zones, err := s.repo.ListWithGeometry(ctx)
	if err != nil {
		return models.FeatureCollection{}, err
	}

	features := make([]models.Feature, 0, len(zones))
	for _, z := range zones {
		props := models.FeatureProperties{
			LocationID:  z.LocationID,
			Borough:     z.Borough,
			Zone:        z.Zone,
			ServiceZone: z.ServiceZone,
		}
		if c, ok := spatial.Centroid(z.Geometry); ok {
			props.Centroid = []float64{c[0], c[1]}
		}
		features = append(features, models.Feature{
			Type:       "Feature",
			Properties: props,
			Geometry:   z.Geometry,
		})
	}

	return models.FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}, nil
}
