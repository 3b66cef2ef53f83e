package models

// NoResult is the label reported for best zone/borough and peak hour when the
// filtered set is empty.
const NoResult = "N/A"

// TripStats holds the aggregate metrics for the currently filtered trips.
// BestLabel is a zone or borough name depending on the request granularity;
// the handler maps it to the matching JSON key.
type TripStats struct {
	TotalTrips  int64
	AvgFare     float64 // 2 decimal places
	AvgDistance float64 // 1 decimal place
	AvgTipPct   float64 // percent, 1 decimal place
	BestLabel   string
	PeakHour    string // 12-hour clock, e.g. "5:00 PM"
}

// StatsScalars are the single-pass scalar aggregates as read from storage,
// before rounding.
type StatsScalars struct {
	Count       int64
	AvgFare     float64
	AvgDistance float64
	AvgTipRatio float64 // tip/fare mean over rows with fare != 0
}
