package repository

import (
	"context"

	"github.com/avykhor/airport-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouteRepository interface {
	List(ctx context.Context) ([]domain.Route, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	Create(ctx context.Context, rt *domain.Route) error
	Update(ctx context.Context, rt *domain.Route) error
	Delete(ctx context.Context, id int64) error
}

type PGRouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

const routeColumns = `r.id, r.origin_id, r.destination_id, r.distance,
	oa.name, oa.location_id, ol.city, ol.country_id, oc.name,
	da.name, da.location_id, dl.city, dl.country_id, dc.name`

const routeJoins = `
	JOIN airports oa ON oa.id = r.origin_id
	JOIN locations ol ON ol.id = oa.location_id
	JOIN countries oc ON oc.id = ol.country_id
	JOIN airports da ON da.id = r.destination_id
	JOIN locations dl ON dl.id = da.location_id
	JOIN countries dc ON dc.id = dl.country_id`

func scanRoute(row pgxRow, rt *domain.Route) error {
	var origin, destination domain.Airport
	var originLoc, destLoc domain.Location
	var originCountry, destCountry domain.Country

	if err := row.Scan(&rt.ID, &rt.OriginID, &rt.DestinationID, &rt.Distance,
		&origin.Name, &origin.LocationID, &originLoc.City, &originLoc.CountryID, &originCountry.Name,
		&destination.Name, &destination.LocationID, &destLoc.City, &destLoc.CountryID, &destCountry.Name,
	); err != nil {
		return err
	}

	originLoc.ID = origin.LocationID
	originCountry.ID = originLoc.CountryID
	originLoc.Country = &originCountry
	origin.ID = rt.OriginID
	origin.Location = &originLoc

	destLoc.ID = destination.LocationID
	destCountry.ID = destLoc.CountryID
	destLoc.Country = &destCountry
	destination.ID = rt.DestinationID
	destination.Location = &destLoc

	rt.Origin = &origin
	rt.Destination = &destination
	return nil
}

func (r *PGRouteRepository) List(ctx context.Context) ([]domain.Route, error) {
	rows, err := r.db.Query(ctx, `SELECT `+routeColumns+` FROM routes r`+routeJoins+` ORDER BY r.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		var rt domain.Route
		if err := scanRoute(rows, &rt); err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}
	return routes, rows.Err()
}

func (r *PGRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	row := r.db.QueryRow(ctx, `SELECT `+routeColumns+` FROM routes r`+routeJoins+` WHERE r.id=$1`, id)
	var rt domain.Route
	err := scanRoute(row, &rt)
	if isNoRows(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *PGRouteRepository) Create(ctx context.Context, rt *domain.Route) error {
	err := r.db.QueryRow(ctx, `INSERT INTO routes (origin_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		rt.OriginID, rt.DestinationID, rt.Distance).Scan(&rt.ID)
	return r.mapError(err)
}

func (r *PGRouteRepository) Update(ctx context.Context, rt *domain.Route) error {
	res, err := r.db.Exec(ctx, `UPDATE routes SET origin_id=$1, destination_id=$2, distance=$3 WHERE id=$4`,
		rt.OriginID, rt.DestinationID, rt.Distance, rt.ID)
	if err != nil {
		return r.mapError(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGRouteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM routes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGRouteRepository) mapError(err error) error {
	switch {
	case isUniqueViolation(err, "uq_routes_origin_destination"):
		return domain.ErrRouteExists
	case isForeignKeyViolation(err, "fk_routes_origin"):
		return domain.NewValidationError("origin", "origin airport does not exist")
	case isForeignKeyViolation(err, "fk_routes_destination"):
		return domain.NewValidationError("destination", "destination airport does not exist")
	}
	return err
}

var _ RouteRepository = (*PGRouteRepository)(nil)
