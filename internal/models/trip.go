package models

// TripRow is one listing row: a trip joined against the zone dimension on both
// the pickup and dropoff side, with the zone labels denormalized for the
// dashboard table. A trip referencing a missing zone renders as "Unknown".
type TripRow struct {
	No             int64   `json:"no"`
	PickupTime     string  `json:"pickup_time"`
	DropoffTime    string  `json:"dropoff_time"`
	PickupZone     string  `json:"pickup_zone"`
	PickupBorough  string  `json:"pickup_borough"`
	DropoffZone    string  `json:"dropoff_zone"`
	DropoffBorough string  `json:"dropoff_borough"`
	Passengers     int64   `json:"passengers"`
	Distance       float64 `json:"distance"`
	Fare           float64 `json:"fare"`
	Tip            float64 `json:"tip"`
	Total          float64 `json:"total"`
}

// TripPage is the paginated listing response body.
type TripPage struct {
	Trips      []TripRow `json:"trips"`
	Page       int       `json:"page"`
	Total      int64     `json:"total"`
	TotalPages int       `json:"total_pages"`
}

// PageSize is the fixed listing page size.
const PageSize = 15
