package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/urbanmobility/taxi-backend-go/internal/models"
	"github.com/urbanmobility/taxi-backend-go/internal/repository"
)

// StatsService computes the dashboard aggregates for a filter
type StatsService struct {
	repo    *repository.StatsRepository
	timeout time.Duration
}

// NewStatsService creates a new stats service
func NewStatsService(repo *repository.StatsRepository, timeout time.Duration) *StatsService {
	return &StatsService{repo: repo, timeout: timeout}
}

// GetStats computes the aggregate metrics over the filtered trips. An empty
// result set is valid: every numeric comes back 0 and the labels are "N/A".
func (s *StatsService) GetStats(ctx context.Context, filter models.TripFilter) (models.TripStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	scalars, err := s.repo.Scalars(ctx, filter)
	if err != nil {
		return models.TripStats{}, err
	}

	stats := models.TripStats{
		TotalTrips:  scalars.Count,
		AvgFare:     round2(scalars.AvgFare),
		AvgDistance: round1(scalars.AvgDistance),
		AvgTipPct:   round1(scalars.AvgTipRatio * 100),
		BestLabel:   models.NoResult,
		PeakHour:    models.NoResult,
	}

	if scalars.Count == 0 {
		return stats, nil
	}

	// A filter already pinned to one pickup zone/borough is its own answer
	if pinned := filter.PinnedPickupLabel(); pinned != "" {
		stats.BestLabel = pinned
	} else {
		best, ok, err := s.repo.BestPickupLabel(ctx, filter)
		if err != nil {
			return models.TripStats{}, err
		}
		if ok {
			stats.BestLabel = best
		}
	}

	hour, ok, err := s.repo.PeakHour(ctx, filter)
	if err != nil {
		return models.TripStats{}, err
	}
	if ok {
		stats.PeakHour = FormatHour12(hour)
	}

	return stats, nil
}

// FormatHour12 renders an hour of day (0-23) as a 12-hour clock label:
// 0 -> "12:00 AM", 12 -> "12:00 PM", 17 -> "5:00 PM".
func FormatHour12(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 %s", display, suffix)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
