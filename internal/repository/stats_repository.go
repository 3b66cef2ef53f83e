package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/urbanmobility/taxi-backend-go/internal/models"
)

// StatsRepository handles database operations for trip aggregates
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Scalars computes count and averages over the filtered trips in one pass.
// NULLIF drops zero-fare rows from the tip ratio per row, so a free ride never
// divides by zero and never skews the percentage. AVG ignores the resulting
// NULLs; COALESCE turns an empty set into zeros rather than NULL scans.
func (r *StatsRepository) Scalars(ctx context.Context, filter models.TripFilter) (models.StatsScalars, error) {
	conditions, args := buildTripConditions(filter)

	query := `SELECT COUNT(*),
		COALESCE(AVG(t.fare_amount), 0),
		COALESCE(AVG(t.trip_distance), 0),
		COALESCE(AVG(t.tip_amount / NULLIF(t.fare_amount, 0)), 0)
	` + tripBaseJoin + whereClause(conditions)

	var s models.StatsScalars
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.Count, &s.AvgFare, &s.AvgDistance, &s.AvgTipRatio,
	)
	if err != nil {
		return models.StatsScalars{}, fmt.Errorf("failed to query trip scalars: %w", err)
	}

	return s, nil
}

// BestPickupLabel returns the pickup zone or borough (per granularity) with
// the most filtered trips. Ties break to the lexicographically smallest
// label. Returns ok=false when no rows match.
func (r *StatsRepository) BestPickupLabel(ctx context.Context, filter models.TripFilter) (string, bool, error) {
	conditions, args := buildTripConditions(filter)
	label := pickupLabelExpr(filter.Granularity)

	query := "SELECT " + label + " AS label, COUNT(*) AS cnt " +
		tripBaseJoin + whereClause(conditions) +
		" GROUP BY label ORDER BY cnt DESC, label ASC LIMIT 1"

	var best string
	var cnt int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&best, &cnt)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query best pickup label: %w", err)
	}

	return best, true, nil
}

// PeakHour returns the pickup hour (0-23) with the most filtered trips. Ties
// break to the smallest hour. Returns ok=false when no rows match.
func (r *StatsRepository) PeakHour(ctx context.Context, filter models.TripFilter) (int, bool, error) {
	conditions, args := buildTripConditions(filter)

	query := "SELECT " + pickupHourExpr + " AS hour, COUNT(*) AS cnt " +
		tripBaseJoin + whereClause(conditions) +
		" GROUP BY hour ORDER BY cnt DESC, hour ASC LIMIT 1"

	var hour int
	var cnt int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&hour, &cnt)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query peak hour: %w", err)
	}

	return hour, true, nil
}
