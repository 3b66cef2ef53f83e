package service

import (
	"context"
	"time"

	"github.com/urbanmobility/taxi-backend-go/internal/models"
	"github.com/urbanmobility/taxi-backend-go/internal/repository"
)

// TripService handles business logic for the trip listing
type TripService struct {
	repo    *repository.TripRepository
	timeout time.Duration
}

// NewTripService creates a new trip service
func NewTripService(repo *repository.TripRepository, timeout time.Duration) *TripService {
	return &TripService{repo: repo, timeout: timeout}
}

// ListPage returns one page of filtered trips plus the filtered total.
// The total comes from the same predicate set the stats path uses, so the two
// endpoints always agree on how many trips match.
func (s *TripService) ListPage(ctx context.Context, filter models.TripFilter, page int) (models.TripPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return models.TripPage{}, err
	}

	trips, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return models.TripPage{}, err
	}

	totalPages := int(total) / models.PageSize
	if int(total)%models.PageSize > 0 {
		totalPages++
	}

	return models.TripPage{
		Trips:      trips,
		Page:       page,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
