package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/urbanmobility/taxi-backend-go/internal/models"
)

// TripRepository handles database operations for the trip listing
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// List retrieves one page of filtered trips joined to their pickup and dropoff
// zones. Ordering is by pickup time then trip id, ascending; the secondary key
// keeps pagination stable when many trips share a pickup second.
func (r *TripRepository) List(ctx context.Context, filter models.TripFilter, page int) ([]models.TripRow, error) {
	conditions, args := buildTripConditions(filter)

	query := `SELECT t.trip_id, t.tpep_pickup_datetime, t.tpep_dropoff_datetime,
		COALESCE(puz.zone, 'Unknown'), COALESCE(puz.borough, 'Unknown'),
		COALESCE(doz.zone, 'Unknown'), COALESCE(doz.borough, 'Unknown'),
		COALESCE(t.passenger_count, 0), t.trip_distance,
		t.fare_amount, t.tip_amount, t.total_amount
	` + tripBaseJoin + whereClause(conditions) + `
	ORDER BY t.tpep_pickup_datetime ASC, t.trip_id ASC
	LIMIT ? OFFSET ?`

	args = append(args, models.PageSize, (page-1)*models.PageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips := make([]models.TripRow, 0, models.PageSize)
	for rows.Next() {
		var t models.TripRow
		err := rows.Scan(
			&t.No, &t.PickupTime, &t.DropoffTime,
			&t.PickupZone, &t.PickupBorough,
			&t.DropoffZone, &t.DropoffBorough,
			&t.Passengers, &t.Distance,
			&t.Fare, &t.Tip, &t.Total,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trips: %w", err)
	}

	return trips, nil
}

// Count returns the number of trips matching the filter. Shares the predicate
// set with List and with the stats aggregates, so the listing total always
// agrees with total_trips.
func (r *TripRepository) Count(ctx context.Context, filter models.TripFilter) (int64, error) {
	conditions, args := buildTripConditions(filter)

	query := "SELECT COUNT(*) " + tripBaseJoin + whereClause(conditions)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count trips: %w", err)
	}

	return total, nil
}
