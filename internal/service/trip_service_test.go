package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanmobility/taxi-backend-go/internal/models"
	"github.com/urbanmobility/taxi-backend-go/internal/repository"
)

func TestListPageTotalsMatchStatsCount(t *testing.T) {
	db := newTestDB(t)
	seedZone(t, db, 1, "Manhattan", "Midtown")

	for i := 1; i <= 33; i++ {
		pickup := fmt.Sprintf("2019-01-01 %02d:%02d:00", i%24, i)
		seedTrip(t, db, int64(i), pickup, 1, 10, 1)
	}

	tripSvc := NewTripService(repository.NewTripRepository(db), 5*time.Second)
	statsSvc := newStatsService(db)

	filter := anchorFilter()

	stats, err := statsSvc.GetStats(context.Background(), filter)
	require.NoError(t, err)

	var enumerated int
	for page := 1; ; page++ {
		result, err := tripSvc.ListPage(context.Background(), filter, page)
		require.NoError(t, err)
		assert.Equal(t, stats.TotalTrips, result.Total)
		enumerated += len(result.Trips)
		if len(result.Trips) < models.PageSize {
			break
		}
	}

	assert.Equal(t, int(stats.TotalTrips), enumerated)
}

func TestListPageReportsTotalPages(t *testing.T) {
	db := newTestDB(t)
	seedZone(t, db, 1, "Manhattan", "Midtown")

	for i := 1; i <= 16; i++ {
		seedTrip(t, db, int64(i), fmt.Sprintf("2019-01-01 10:%02d:00", i), 1, 10, 1)
	}

	svc := NewTripService(repository.NewTripRepository(db), 5*time.Second)

	result, err := svc.ListPage(context.Background(), anchorFilter(), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, int64(16), result.Total)
	assert.Equal(t, 2, result.TotalPages)
	assert.Len(t, result.Trips, 1)
}

func TestListPageBeyondEndIsEmpty(t *testing.T) {
	db := newTestDB(t)
	seedZone(t, db, 1, "Manhattan", "Midtown")
	seedTrip(t, db, 1, "2019-01-01 10:00:00", 1, 10, 1)

	svc := NewTripService(repository.NewTripRepository(db), 5*time.Second)

	result, err := svc.ListPage(context.Background(), anchorFilter(), 5)
	require.NoError(t, err)

	assert.Empty(t, result.Trips)
	assert.Equal(t, int64(1), result.Total)
}
