package repository

import (
	"context"

	"github.com/avykhor/airport-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, f *domain.Flight, crewIDs []int64) error
	Update(ctx context.Context, f *domain.Flight, crewIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

// List returns all flights with seats_available computed from the
// current ticket count, the same derivation the flight list always
// shows: rows * seats_in_row - booked tickets.
func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `
		SELECT f.id, f.airplane_id, f.route_id, f.departure_time, f.arrival_time,
		       a.name, a."rows", a.seats_in_row, a.airplane_type_id,
		       oa.name, ol.city, da.name, dl.city,
		       a."rows" * a.seats_in_row - COUNT(t.id) AS seats_available
		FROM flights f
		JOIN airplanes a ON a.id = f.airplane_id
		JOIN routes r ON r.id = f.route_id
		JOIN airports oa ON oa.id = r.origin_id
		JOIN locations ol ON ol.id = oa.location_id
		JOIN airports da ON da.id = r.destination_id
		JOIN locations dl ON dl.id = da.location_id
		LEFT JOIN tickets t ON t.flight_id = f.id
		GROUP BY f.id, a.id, r.id, oa.id, ol.id, da.id, dl.id
		ORDER BY f.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var (
			f        domain.Flight
			airplane domain.Airplane

			originName, originCity string
			destName, destCity     string
		)
		if err := rows.Scan(&f.ID, &f.AirplaneID, &f.RouteID, &f.DepartureTime, &f.ArrivalTime,
			&airplane.Name, &airplane.Rows, &airplane.SeatsInRow, &airplane.AirplaneTypeID,
			&originName, &originCity, &destName, &destCity,
			&f.SeatsAvailable,
		); err != nil {
			return nil, err
		}
		airplane.ID = f.AirplaneID
		f.Airplane = &airplane
		f.Route = &domain.Route{
			ID:          f.RouteID,
			Origin:      &domain.Airport{Name: originName, Location: &domain.Location{City: originCity}},
			Destination: &domain.Airport{Name: destName, Location: &domain.Location{City: destCity}},
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

// GetByID returns one flight with its airplane dimensions, route
// endpoints, assigned crew, and the taken seats ordered by row then
// seat.
func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `
		SELECT f.id, f.airplane_id, f.route_id, f.departure_time, f.arrival_time,
		       a.name, a."rows", a.seats_in_row, a.airplane_type_id, tp.name,
		       r.origin_id, r.destination_id, r.distance,
		       oa.name, ol.city, da.name, dl.city
		FROM flights f
		JOIN airplanes a ON a.id = f.airplane_id
		JOIN airplane_types tp ON tp.id = a.airplane_type_id
		JOIN routes r ON r.id = f.route_id
		JOIN airports oa ON oa.id = r.origin_id
		JOIN locations ol ON ol.id = oa.location_id
		JOIN airports da ON da.id = r.destination_id
		JOIN locations dl ON dl.id = da.location_id
		WHERE f.id=$1`, id)

	var (
		f                      domain.Flight
		airplane               domain.Airplane
		typeName               string
		route                  domain.Route
		originName, originCity string
		destName, destCity     string
	)
	err := row.Scan(&f.ID, &f.AirplaneID, &f.RouteID, &f.DepartureTime, &f.ArrivalTime,
		&airplane.Name, &airplane.Rows, &airplane.SeatsInRow, &airplane.AirplaneTypeID, &typeName,
		&route.OriginID, &route.DestinationID, &route.Distance,
		&originName, &originCity, &destName, &destCity,
	)
	if isNoRows(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	airplane.ID = f.AirplaneID
	airplane.AirplaneType = &domain.AirplaneType{ID: airplane.AirplaneTypeID, Name: typeName}
	f.Airplane = &airplane

	route.ID = f.RouteID
	route.Origin = &domain.Airport{ID: route.OriginID, Name: originName, Location: &domain.Location{City: originCity}}
	route.Destination = &domain.Airport{ID: route.DestinationID, Name: destName, Location: &domain.Location{City: destCity}}
	f.Route = &route

	crew, err := r.crewForFlight(ctx, id)
	if err != nil {
		return nil, err
	}
	f.Crew = crew

	taken, err := r.takenSeats(ctx, id)
	if err != nil {
		return nil, err
	}
	f.TakenSeats = taken
	f.SeatsAvailable = airplane.Capacity() - len(taken)

	return &f, nil
}

func (r *PGFlightRepository) crewForFlight(ctx context.Context, flightID int64) ([]domain.Crew, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.first_name, c.last_name
		FROM crews c
		JOIN flight_crew fc ON fc.crew_id = c.id
		WHERE fc.flight_id=$1
		ORDER BY c.id`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crew := make([]domain.Crew, 0)
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		crew = append(crew, c)
	}
	return crew, rows.Err()
}

func (r *PGFlightRepository) takenSeats(ctx context.Context, flightID int64) ([]domain.SeatRef, error) {
	rows, err := r.db.Query(ctx, `SELECT "row", seat FROM tickets WHERE flight_id=$1 ORDER BY "row", seat`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.SeatRef, 0)
	for rows.Next() {
		var s domain.SeatRef
		if err := rows.Scan(&s.Row, &s.Seat); err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}

func (r *PGFlightRepository) Create(ctx context.Context, f *domain.Flight, crewIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `INSERT INTO flights (airplane_id, route_id, departure_time, arrival_time) VALUES ($1, $2, $3, $4) RETURNING id`,
		f.AirplaneID, f.RouteID, f.DepartureTime, f.ArrivalTime).Scan(&f.ID)
	if err != nil {
		return r.mapError(err)
	}

	if err := assignCrew(ctx, tx, f.ID, crewIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Update(ctx context.Context, f *domain.Flight, crewIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	res, err := tx.Exec(ctx, `UPDATE flights SET airplane_id=$1, route_id=$2, departure_time=$3, arrival_time=$4 WHERE id=$5`,
		f.AirplaneID, f.RouteID, f.DepartureTime, f.ArrivalTime, f.ID)
	if err != nil {
		return r.mapError(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM flight_crew WHERE flight_id=$1`, f.ID); err != nil {
		return err
	}
	if err := assignCrew(ctx, tx, f.ID, crewIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func assignCrew(ctx context.Context, tx pgx.Tx, flightID int64, crewIDs []int64) error {
	for _, crewID := range crewIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_crew (flight_id, crew_id) VALUES ($1, $2)`, flightID, crewID); err != nil {
			if isForeignKeyViolation(err, "fk_flight_crew_crew") {
				return domain.NewValidationError("crew", "crew member does not exist")
			}
			return err
		}
	}
	return nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGFlightRepository) mapError(err error) error {
	switch {
	case isForeignKeyViolation(err, "fk_flights_airplane"):
		return domain.NewValidationError("airplane", "airplane does not exist")
	case isForeignKeyViolation(err, "fk_flights_route"):
		return domain.NewValidationError("route", "route does not exist")
	}
	return err
}

var _ FlightRepository = (*PGFlightRepository)(nil)
