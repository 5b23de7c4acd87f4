package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAirplane_Capacity(t *testing.T) {
	airplane := Airplane{Rows: 10, SeatsInRow: 6}
	assert.Equal(t, 60, airplane.Capacity())
}

func TestValidateSeat_Accepts(t *testing.T) {
	rows, seatsInRow := 10, 6
	for row := 1; row <= rows; row++ {
		for seat := 1; seat <= seatsInRow; seat++ {
			assert.NoError(t, ValidateSeat(row, seat, rows, seatsInRow))
		}
	}
}

func TestValidateSeat_Rejects(t *testing.T) {
	testCases := []struct {
		name      string
		row, seat int
		fields    []string
	}{
		{name: "row zero", row: 0, seat: 1, fields: []string{"row"}},
		{name: "row above range", row: 11, seat: 1, fields: []string{"row"}},
		{name: "seat zero", row: 1, seat: 0, fields: []string{"seat"}},
		{name: "seat above range", row: 1, seat: 7, fields: []string{"seat"}},
		{name: "both out of range", row: 0, seat: 99, fields: []string{"row", "seat"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSeat(tc.row, tc.seat, 10, 6)
			assert.Error(t, err)

			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.Len(t, ve.Fields, len(tc.fields))
			for _, f := range tc.fields {
				assert.Contains(t, ve.Fields, f)
			}
		})
	}
}

func TestValidateSeat_ReportsRangeAndValue(t *testing.T) {
	err := ValidateSeat(12, 3, 10, 6)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "row must be in range [1, 10], got 12", ve.Fields["row"])
}

func TestValidateRoute(t *testing.T) {
	assert.NoError(t, ValidateRoute(1, 2))

	err := ValidateRoute(7, 7)
	assert.Error(t, err)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "destination")
}

func TestValidateFlightTimes(t *testing.T) {
	now := time.Now()

	assert.NoError(t, ValidateFlightTimes(now, now.Add(2*time.Hour)))
	// equal timestamps are allowed
	assert.NoError(t, ValidateFlightTimes(now, now))

	err := ValidateFlightTimes(now.Add(time.Second), now)
	assert.Error(t, err)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "arrival_time")
}

func TestSeatTakenError_Unwrap(t *testing.T) {
	err := &SeatTakenError{FlightID: 1, Row: 1, Seat: 1}
	assert.ErrorIs(t, err, ErrSeatTaken)
	assert.Contains(t, err.Error(), "flight 1")
}
