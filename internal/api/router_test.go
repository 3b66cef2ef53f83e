package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanmobility/taxi-backend-go/internal/config"
	"github.com/urbanmobility/taxi-backend-go/internal/database"
)

func newTestServer(t *testing.T) (*httptest.Server, *sql.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:    "test-secret",
		QueryTimeout: 5 * time.Second,
		RateLimit:    10000,
		RateWindow:   time.Minute,
	}

	server := httptest.NewServer(SetupRouter(cfg, db))
	t.Cleanup(server.Close)

	return server, db
}

func seedZone(t *testing.T, db *sql.DB, id int64, borough, zone string, geometry interface{}) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO zones (location_id, borough, zone, service_zone, geometry) VALUES (?, ?, ?, 'Yellow Zone', ?)",
		id, borough, zone, geometry,
	)
	require.NoError(t, err)
}

func seedTrip(t *testing.T, db *sql.DB, id int64, pickup string, puLoc, doLoc int64, fare, tip float64) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO trips (trip_id, tpep_pickup_datetime, tpep_dropoff_datetime,
			passenger_count, trip_distance, pu_location_id, do_location_id,
			fare_amount, tip_amount, total_amount)
		VALUES (?, ?, ?, 2, 3.5, ?, ?, ?, ?, ?)`,
		id, pickup, pickup, puLoc, doLoc, fare, tip, fare+tip,
	)
	require.NoError(t, err)
}

func getJSON(t *testing.T, url string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestTripsRejectsMalformedDateFrom(t *testing.T) {
	server, _ := newTestServer(t)

	status, body := getJSON(t, server.URL+"/api/trips?date_from=2019/01/01")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "validation_error", body["error"])
	assert.Equal(t, "date_from", body["field"])
	assert.Contains(t, body["message"], "YYYY-MM-DD")
}

func TestTripsRejectsNonPositivePage(t *testing.T) {
	server, _ := newTestServer(t)

	status, body := getJSON(t, server.URL+"/api/trips?page=0")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "page", body["field"])
}

func TestTripsRejectsBadHour(t *testing.T) {
	server, _ := newTestServer(t)

	status, body := getJSON(t, server.URL+"/api/trips?pickup_hour=24")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "pickup_hour", body["field"])
}

func TestTripsDefaultsToAnchorDate(t *testing.T) {
	server, db := newTestServer(t)
	seedZone(t, db, 1, "Manhattan", "Midtown", nil)
	seedTrip(t, db, 1, "2019-01-01 08:00:00", 1, 1, 10, 1)
	seedTrip(t, db, 2, "2019-01-01 23:30:00", 1, 1, 10, 1)
	seedTrip(t, db, 3, "2019-01-02 08:00:00", 1, 1, 10, 1)

	status, body := getJSON(t, server.URL+"/api/trips")

	require.Equal(t, http.StatusOK, status)
	trips := body["trips"].([]interface{})
	assert.Len(t, trips, 2)
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(2), body["total"])
}

func TestTripsSentinelEqualsAbsent(t *testing.T) {
	server, db := newTestServer(t)
	seedZone(t, db, 1, "Manhattan", "Midtown", nil)
	seedTrip(t, db, 1, "2019-01-01 08:00:00", 1, 1, 10, 1)

	_, plain := getJSON(t, server.URL+"/api/trips")
	_, all := getJSON(t, server.URL+"/api/trips?pickup_borough=All")
	_, anySentinel := getJSON(t, server.URL+"/api/trips?dropoff_borough=Any")

	assert.Equal(t, plain["total"], all["total"])
	assert.Equal(t, plain["total"], anySentinel["total"])
}

func TestTripsRowShapeAndUnknownZone(t *testing.T) {
	server, db := newTestServer(t)
	seedZone(t, db, 1, "Manhattan", "Midtown", nil)
	seedTrip(t, db, 1, "2019-01-01 08:00:00", 1, 999, 14.5, 2)

	status, body := getJSON(t, server.URL+"/api/trips")

	require.Equal(t, http.StatusOK, status)
	trips := body["trips"].([]interface{})
	require.Len(t, trips, 1)

	row := trips[0].(map[string]interface{})
	assert.Equal(t, "Midtown", row["pickup_zone"])
	assert.Equal(t, "Unknown", row["dropoff_zone"])
	assert.Equal(t, "Unknown", row["dropoff_borough"])
	assert.Equal(t, 14.5, row["fare"])
	assert.Equal(t, 16.5, row["total"])
}

func TestStatsZeroRowsIsFullyDefined(t *testing.T) {
	server, _ := newTestServer(t)

	status, body := getJSON(t, server.URL+"/api/stats")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["total_trips"])
	assert.Equal(t, float64(0), body["avg_fare"])
	assert.Equal(t, float64(0), body["avg_distance"])
	assert.Equal(t, float64(0), body["avg_tip_pct"])
	assert.Equal(t, "N/A", body["best_borough"])
	assert.Equal(t, "N/A", body["peak_hour"])
}

func TestStatsAggregatesFilteredTrips(t *testing.T) {
	server, db := newTestServer(t)
	seedZone(t, db, 1, "Manhattan", "Midtown", nil)
	seedZone(t, db, 2, "Brooklyn", "Williamsburg", nil)

	seedTrip(t, db, 1, "2019-01-01 17:00:00", 1, 2, 0, 5)
	seedTrip(t, db, 2, "2019-01-01 17:30:00", 1, 2, 10, 1)
	seedTrip(t, db, 3, "2019-01-01 09:00:00", 2, 1, 20, 2)

	status, body := getJSON(t, server.URL+"/api/stats")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(3), body["total_trips"])
	assert.Equal(t, float64(10), body["avg_fare"])
	assert.Equal(t, float64(3.5), body["avg_distance"])
	// Only the two non-zero fares contribute: (10% + 10%) / 2
	assert.Equal(t, float64(10), body["avg_tip_pct"])
	assert.Equal(t, "Manhattan", body["best_borough"])
	assert.Equal(t, "5:00 PM", body["peak_hour"])
}

func TestStatsZoneGranularityKey(t *testing.T) {
	server, db := newTestServer(t)
	seedZone(t, db, 1, "Manhattan", "Midtown", nil)
	seedTrip(t, db, 1, "2019-01-01 08:00:00", 1, 1, 10, 1)

	status, body := getJSON(t, server.URL+"/api/stats?granularity=zone")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Midtown", body["best_zone"])
	assert.NotContains(t, body, "best_borough")
}

func TestStatsEchoesPinnedBorough(t *testing.T) {
	server, db := newTestServer(t)
	seedZone(t, db, 1, "Manhattan", "Midtown", nil)
	seedZone(t, db, 2, "Brooklyn", "Williamsburg", nil)
	seedTrip(t, db, 1, "2019-01-01 08:00:00", 1, 1, 10, 1)
	seedTrip(t, db, 2, "2019-01-01 09:00:00", 2, 1, 10, 1)

	status, body := getJSON(t, server.URL+"/api/stats?pickup_borough=Brooklyn")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["total_trips"])
	assert.Equal(t, "Brooklyn", body["best_borough"])
}

func TestStatsTotalMatchesTripsTotal(t *testing.T) {
	server, db := newTestServer(t)
	seedZone(t, db, 1, "Manhattan", "Midtown", nil)
	for i := 1; i <= 20; i++ {
		seedTrip(t, db, int64(i), fmt.Sprintf("2019-01-01 %02d:10:00", i%24), 1, 1, 10, 1)
	}

	_, stats := getJSON(t, server.URL+"/api/stats?min_fare=5")
	_, trips := getJSON(t, server.URL+"/api/trips?min_fare=5")

	assert.Equal(t, stats["total_trips"], trips["total"])
}

func TestZonesFeatureCollection(t *testing.T) {
	server, db := newTestServer(t)
	polygon := `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}`
	seedZone(t, db, 1, "Manhattan", "Midtown", polygon)
	seedZone(t, db, 2, "Brooklyn", "Williamsburg", nil) // no geometry, skipped

	status, body := getJSON(t, server.URL+"/api/zones")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "FeatureCollection", body["type"])

	features := body["features"].([]interface{})
	require.Len(t, features, 1)

	feature := features[0].(map[string]interface{})
	assert.Equal(t, "Feature", feature["type"])

	props := feature["properties"].(map[string]interface{})
	assert.Equal(t, float64(1), props["location_id"])
	assert.Equal(t, "Manhattan", props["borough"])
	assert.Equal(t, "Midtown", props["zone"])
	assert.Equal(t, "Yellow Zone", props["service_zone"])

	geometry := feature["geometry"].(map[string]interface{})
	assert.Equal(t, "Polygon", geometry["type"])

	centroid := props["centroid"].([]interface{})
	assert.InDelta(t, 0.5, centroid[0].(float64), 0.01)
	assert.InDelta(t, 0.5, centroid[1].(float64), 0.01)
}

func TestAuthRegisterAndLoginFlow(t *testing.T) {
	server, _ := newTestServer(t)

	creds := bytes.NewBufferString(`{"username":"dispatcher","password":"s3cret-pass"}`)
	resp, err := http.Post(server.URL+"/api/auth/register", "application/json", creds)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var registered map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&registered))
	assert.NotEmpty(t, registered["token"])
	assert.Equal(t, "dispatcher", registered["username"])

	creds = bytes.NewBufferString(`{"username":"dispatcher","password":"s3cret-pass"}`)
	resp, err = http.Post(server.URL+"/api/auth/login", "application/json", creds)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthDuplicateRegisterConflicts(t *testing.T) {
	server, _ := newTestServer(t)

	for i, wantStatus := range []int{http.StatusCreated, http.StatusConflict} {
		creds := bytes.NewBufferString(`{"username":"dispatcher","password":"s3cret-pass"}`)
		resp, err := http.Post(server.URL+"/api/auth/register", "application/json", creds)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, wantStatus, resp.StatusCode, "attempt %d", i+1)
	}
}

func TestAuthLoginRejectsWrongPassword(t *testing.T) {
	server, _ := newTestServer(t)

	creds := bytes.NewBufferString(`{"username":"dispatcher","password":"s3cret-pass"}`)
	resp, err := http.Post(server.URL+"/api/auth/register", "application/json", creds)
	require.NoError(t, err)
	resp.Body.Close()

	creds = bytes.NewBufferString(`{"username":"dispatcher","password":"wrong-pass"}`)
	resp, err = http.Post(server.URL+"/api/auth/login", "application/json", creds)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "unauthorized", body["error"])
}

func TestHealthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	status, body := getJSON(t, server.URL+"/health")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
