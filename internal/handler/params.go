package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/urbanmobility/taxi-backend-go/internal/models"
)

// paramError reports a query parameter that failed to parse into its declared
// type, naming the field and the expected format. The policy is strict: bad
// values are rejected, never silently dropped or defaulted.
type paramError struct {
	Field  string
	Reason string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// parseTripFilter parses the shared filter parameter set for /trips and
// /stats. "All" and "Any" on the categorical selectors mean unconstrained,
// same as omitting the parameter. When neither date bound is supplied both
// default to the dataset anchor day.
func parseTripFilter(c *gin.Context) (models.TripFilter, *paramError) {
	var f models.TripFilter

	granularity := c.DefaultQuery("granularity", string(models.GranularityBorough))
	switch models.Granularity(granularity) {
	case models.GranularityZone, models.GranularityBorough:
		f.Granularity = models.Granularity(granularity)
	default:
		return f, &paramError{Field: "granularity", Reason: "must be 'zone' or 'borough'"}
	}

	var perr *paramError
	if f.PickupHour, perr = hourParam(c, "pickup_hour"); perr != nil {
		return f, perr
	}
	if f.DropoffHour, perr = hourParam(c, "dropoff_hour"); perr != nil {
		return f, perr
	}

	if f.DateFrom, perr = dateParam(c, "date_from"); perr != nil {
		return f, perr
	}
	if f.DateTo, perr = dateParam(c, "date_to"); perr != nil {
		return f, perr
	}
	if f.DateFrom == "" && f.DateTo == "" {
		f.DateFrom = models.DefaultDate
		f.DateTo = models.DefaultDate
	}

	if f.MinPassengers, perr = intParam(c, "min_passengers"); perr != nil {
		return f, perr
	}
	if f.MaxPassengers, perr = intParam(c, "max_passengers"); perr != nil {
		return f, perr
	}
	if f.MinDistance, perr = floatParam(c, "min_distance"); perr != nil {
		return f, perr
	}
	if f.MaxDistance, perr = floatParam(c, "max_distance"); perr != nil {
		return f, perr
	}
	if f.MinFare, perr = floatParam(c, "min_fare"); perr != nil {
		return f, perr
	}
	if f.MaxFare, perr = floatParam(c, "max_fare"); perr != nil {
		return f, perr
	}

	f.PickupZone = categoricalParam(c, "pickup_zone")
	f.DropoffZone = categoricalParam(c, "dropoff_zone")
	f.PickupBorough = categoricalParam(c, "pickup_borough")
	f.DropoffBorough = categoricalParam(c, "dropoff_borough")

	return f, nil
}

// parsePage parses the 1-based page number, defaulting to 1
func parsePage(c *gin.Context) (int, *paramError) {
	raw := c.Query("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, &paramError{Field: "page", Reason: "must be a positive integer"}
	}
	return page, nil
}

func dateParam(c *gin.Context, name string) (string, *paramError) {
	raw := c.Query(name)
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return "", &paramError{Field: name, Reason: "must be a date in YYYY-MM-DD format"}
	}
	return raw, nil
}

func hourParam(c *gin.Context, name string) (*int, *paramError) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	hour, err := strconv.Atoi(raw)
	if err != nil || hour < 0 || hour > 23 {
		return nil, &paramError{Field: name, Reason: "must be an integer between 0 and 23"}
	}
	return &hour, nil
}

func intParam(c *gin.Context, name string) (*int, *paramError) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, &paramError{Field: name, Reason: "must be a non-negative integer"}
	}
	return &n, nil
}

func floatParam(c *gin.Context, name string) (*float64, *paramError) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, &paramError{Field: name, Reason: "must be a non-negative number"}
	}
	return &v, nil
}

// categoricalParam reads a zone/borough selector; the "All"/"Any" sentinels
// from the dashboard dropdowns mean no constraint.
func categoricalParam(c *gin.Context, name string) string {
	v := c.Query(name)
	if v == "All" || v == "Any" {
		return ""
	}
	return v
}
