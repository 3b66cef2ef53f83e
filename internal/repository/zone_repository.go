package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/urbanmobility/taxi-backend-go/internal/models"
)

// ZoneRepository handles database operations for the zone dimension
type ZoneRepository struct {
	db *sql.DB
}

// NewZoneRepository creates a new zone repository
func NewZoneRepository(db *sql.DB) *ZoneRepository {
	return &ZoneRepository{db: db}
}

// ListWithGeometry returns every zone that has a stored geometry. Zones
// without one are skipped here rather than erroring the whole response.
// NULL labels default to "Unknown" (borough, zone) and "" (service_zone).
func (r *ZoneRepository) ListWithGeometry(ctx context.Context) ([]models.Zone, error) {
	query := `SELECT location_id,
		COALESCE(borough, 'Unknown'),
		COALESCE(zone, 'Unknown'),
		COALESCE(service_zone, ''),
		geometry
	FROM zones
	WHERE geometry IS NOT NULL
	ORDER BY location_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer rows.Close()

	var zones []models.Zone
	for rows.Next() {
		var z models.Zone
		var geometry string
		if err := rows.Scan(&z.LocationID, &z.Borough, &z.Zone, &z.ServiceZone, &geometry); err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		z.Geometry = json.RawMessage(geometry)
		zones = append(zones, z)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read zones: %w", err)
	}

	return zones, nil
}
