package models

// Granularity selects which location dimension column categorical filters and
// the best-pickup grouping operate on.
type Granularity string

const (
	GranularityZone    Granularity = "zone"
	GranularityBorough Granularity = "borough"
)

// DefaultDate is the anchor day the dataset defaults to when a request carries
// no date bounds at all. The seeded dataset is the January 2019 yellow-taxi
// extract, so "no date filter" means this single day rather than a full scan.
const DefaultDate = "2019-01-01"

// TripFilter represents the parsed, typed filter parameters shared by the
// trip listing and stats queries. Nil pointer fields impose no constraint;
// empty strings on the categorical fields mean unconstrained.
type TripFilter struct {
	PickupHour  *int // 0-23
	DropoffHour *int // 0-23

	// Inclusive date range over the pickup timestamp, YYYY-MM-DD.
	// DateTo covers the whole day (through 23:59:59).
	DateFrom string
	DateTo   string

	MinPassengers *int
	MaxPassengers *int
	MinDistance   *float64
	MaxDistance   *float64
	MinFare       *float64
	MaxFare       *float64

	// Only the pair matching Granularity is consulted.
	PickupZone     string
	DropoffZone    string
	PickupBorough  string
	DropoffBorough string

	Granularity Granularity
}

// PinnedPickupLabel returns the pickup-side label the filter is pinned to
// under its granularity, or "" when the pickup grouping is unconstrained.
func (f TripFilter) PinnedPickupLabel() string {
	if f.Granularity == GranularityZone {
		return f.PickupZone
	}
	return f.PickupBorough
}
