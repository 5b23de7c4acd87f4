package domain

import (
	"fmt"
	"time"
)

// ValidateSeat checks a (row, seat) pair against an airplane's seating
// rectangle. Row and seat bounds are checked independently and reported
// together, keyed by field.
func ValidateSeat(row, seat, rows, seatsInRow int) error {
	fields := make(map[string]string)
	if row < 1 || row > rows {
		fields["row"] = fmt.Sprintf("row must be in range [1, %d], got %d", rows, row)
	}
	if seat < 1 || seat > seatsInRow {
		fields["seat"] = fmt.Sprintf("seat must be in range [1, %d], got %d", seatsInRow, seat)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateRoute rejects routes whose origin and destination airports are
// the same. Duplicate (origin, destination) pairs are left to the
// storage uniqueness constraint.
func ValidateRoute(originID, destinationID int64) error {
	if originID == destinationID {
		return NewValidationError("destination", "origin and destination airports must differ")
	}
	return nil
}

// ValidateFlightTimes rejects flights that arrive strictly before they
// depart. Equal timestamps are accepted.
func ValidateFlightTimes(departure, arrival time.Time) error {
	if arrival.Before(departure) {
		return NewValidationError("arrival_time", "arrival time must not precede departure time")
	}
	return nil
}
