package repository

import (
	"errors"
	"testing"

	"github.com/avykhor/airport-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewRepositories(t *testing.T) {
	pool := &pgxpool.Pool{}

	assert.NotNil(t, NewAirplaneTypeRepository(pool))
	assert.NotNil(t, NewAirplaneRepository(pool))
	assert.NotNil(t, NewCrewRepository(pool))
	assert.NotNil(t, NewCountryRepository(pool))
	assert.NotNil(t, NewLocationRepository(pool))
	assert.NotNil(t, NewAirportRepository(pool))
	assert.NotNil(t, NewRouteRepository(pool))
	assert.NotNil(t, NewFlightRepository(pool))
	assert.NotNil(t, NewOrderRepository(pool))
}

func TestIsUniqueViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "uq_tickets_flight_row_seat"}

	assert.True(t, isUniqueViolation(err, "uq_tickets_flight_row_seat"))
	assert.False(t, isUniqueViolation(err, "uq_routes_origin_destination"))
	assert.False(t, isUniqueViolation(errors.New("plain"), "uq_tickets_flight_row_seat"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", ConstraintName: "fk_tickets_flight"}

	assert.True(t, isForeignKeyViolation(err, "fk_tickets_flight"))
	assert.False(t, isForeignKeyViolation(err, "fk_tickets_order"))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, isNoRows(pgx.ErrNoRows))
	assert.False(t, isNoRows(errors.New("plain")))
}

func TestMapTicketError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "uq_tickets_flight_row_seat"}
	ticket := &domain.Ticket{Row: 3, Seat: 4, FlightID: 7}

	err := mapTicketError(unique, ticket)

	var taken *domain.SeatTakenError
	assert.ErrorAs(t, err, &taken)
	assert.Equal(t, int64(7), taken.FlightID)
	assert.Equal(t, 3, taken.Row)
	assert.Equal(t, 4, taken.Seat)
	assert.ErrorIs(t, err, domain.ErrSeatTaken)
}
