package repository

import "github.com/urbanmobility/taxi-backend-go/internal/models"

// tripBaseJoin is the base relation both the listing and stats queries run
// against: the fact table joined to the zone dimension twice, once per side,
// under independent aliases so pickup and dropoff filters never cross-apply.
// LEFT joins keep trips whose zone reference is missing; their labels render
// as "Unknown" instead of dropping the row.
const tripBaseJoin = `FROM trips t
	LEFT JOIN zones puz ON t.pu_location_id = puz.location_id
	LEFT JOIN zones doz ON t.do_location_id = doz.location_id`

const pickupHourExpr = "CAST(strftime('%H', t.tpep_pickup_datetime) AS INTEGER)"
const dropoffHourExpr = "CAST(strftime('%H', t.tpep_dropoff_datetime) AS INTEGER)"

// buildTripConditions translates a filter into WHERE conditions and args over
// tripBaseJoin. Pure: the same filter always yields the same predicate set,
// and both the listing and stats repositories go through it so the two code
// paths cannot drift. Each present field contributes exactly one ANDed
// predicate.
func buildTripConditions(f models.TripFilter) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}

	if f.PickupHour != nil {
		conditions = append(conditions, pickupHourExpr+" = ?")
		args = append(args, *f.PickupHour)
	}
	if f.DropoffHour != nil {
		conditions = append(conditions, dropoffHourExpr+" = ?")
		args = append(args, *f.DropoffHour)
	}

	if f.DateFrom != "" {
		conditions = append(conditions, "t.tpep_pickup_datetime >= ?")
		args = append(args, f.DateFrom+" 00:00:00")
	}
	if f.DateTo != "" {
		// Inclusive upper bound: the whole day counts
		conditions = append(conditions, "t.tpep_pickup_datetime <= ?")
		args = append(args, f.DateTo+" 23:59:59")
	}

	if f.MinPassengers != nil {
		conditions = append(conditions, "t.passenger_count >= ?")
		args = append(args, *f.MinPassengers)
	}
	if f.MaxPassengers != nil {
		conditions = append(conditions, "t.passenger_count <= ?")
		args = append(args, *f.MaxPassengers)
	}

	if f.MinDistance != nil {
		conditions = append(conditions, "t.trip_distance >= ?")
		args = append(args, *f.MinDistance)
	}
	if f.MaxDistance != nil {
		conditions = append(conditions, "t.trip_distance <= ?")
		args = append(args, *f.MaxDistance)
	}

	if f.MinFare != nil {
		conditions = append(conditions, "t.fare_amount >= ?")
		args = append(args, *f.MinFare)
	}
	if f.MaxFare != nil {
		conditions = append(conditions, "t.fare_amount <= ?")
		args = append(args, *f.MaxFare)
	}

	switch f.Granularity {
	case models.GranularityZone:
		if f.PickupZone != "" {
			conditions = append(conditions, "puz.zone = ?")
			args = append(args, f.PickupZone)
		}
		if f.DropoffZone != "" {
			conditions = append(conditions, "doz.zone = ?")
			args = append(args, f.DropoffZone)
		}
	default:
		if f.PickupBorough != "" {
			conditions = append(conditions, "puz.borough = ?")
			args = append(args, f.PickupBorough)
		}
		if f.DropoffBorough != "" {
			conditions = append(conditions, "doz.borough = ?")
			args = append(args, f.DropoffBorough)
		}
	}

	return conditions, args
}

// whereClause renders conditions into a WHERE clause, or "" when unfiltered
func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	clause := " WHERE " + conditions[0]
	for _, c := range conditions[1:] {
		clause += " AND " + c
	}
	return clause
}

// pickupLabelExpr is the grouping expression for the best-pickup aggregate.
// Missing zone references fold into the "Unknown" bucket.
func pickupLabelExpr(g models.Granularity) string {
	if g == models.GranularityZone {
		return "COALESCE(puz.zone, 'Unknown')"
	}
	return "COALESCE(puz.borough, 'Unknown')"
}
