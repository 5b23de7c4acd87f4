package repository

import (
	"context"

	"github.com/avykhor/airport-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CountryRepository interface {
	List(ctx context.Context) ([]domain.Country, error)
	GetByID(ctx context.Context, id int64) (*domain.Country, error)
	Create(ctx context.Context, c *domain.Country) error
	Update(ctx context.Context, c *domain.Country) error
	Delete(ctx context.Context, id int64) error
}

type LocationRepository interface {
	List(ctx context.Context) ([]domain.Location, error)
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
	Create(ctx context.Context, l *domain.Location) error
	Update(ctx context.Context, l *domain.Location) error
	Delete(ctx context.Context, id int64) error
}

type AirportRepository interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	Create(ctx context.Context, a *domain.Airport) error
	Update(ctx context.Context, a *domain.Airport) error
	Delete(ctx context.Context, id int64) error
}

type PGCountryRepository struct {
	db *pgxpool.Pool
}

func NewCountryRepository(db *pgxpool.Pool) CountryRepository {
	return &PGCountryRepository{db: db}
}

func (r *PGCountryRepository) List(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM countries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := make([]domain.Country, 0)
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

func (r *PGCountryRepository) GetByID(ctx context.Context, id int64) (*domain.Country, error) {
	var c domain.Country
	err := r.db.QueryRow(ctx, `SELECT id, name FROM countries WHERE id=$1`, id).Scan(&c.ID, &c.Name)
	if isNoRows(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PGCountryRepository) Create(ctx context.Context, c *domain.Country) error {
	err := r.db.QueryRow(ctx, `INSERT INTO countries (name) VALUES ($1) RETURNING id`, c.Name).Scan(&c.ID)
	if isUniqueViolation(err, "uq_countries_name") {
		return domain.NewValidationError("name", "country already exists")
	}
	return err
}

func (r *PGCountryRepository) Update(ctx context.Context, c *domain.Country) error {
	res, err := r.db.Exec(ctx, `UPDATE countries SET name=$1 WHERE id=$2`, c.Name, c.ID)
	if isUniqueViolation(err, "uq_countries_name") {
		return domain.NewValidationError("name", "country already exists")
	}
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGCountryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM countries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type PGLocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) LocationRepository {
	return &PGLocationRepository{db: db}
}

const locationColumns = `l.id, l.city, l.country_id, c.name`

func scanLocation(row pgxRow, l *domain.Location) error {
	var countryName string
	if err := row.Scan(&l.ID, &l.City, &l.CountryID, &countryName); err != nil {
		return err
	}
	l.Country = &domain.Country{ID: l.CountryID, Name: countryName}
	return nil
}

func (r *PGLocationRepository) List(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.db.Query(ctx, `SELECT `+locationColumns+` FROM locations l JOIN countries c ON c.id = l.country_id ORDER BY l.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]domain.Location, 0)
	for rows.Next() {
		var l domain.Location
		if err := scanLocation(rows, &l); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *PGLocationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	row := r.db.QueryRow(ctx, `SELECT `+locationColumns+` FROM locations l JOIN countries c ON c.id = l.country_id WHERE l.id=$1`, id)
	var l domain.Location
	err := scanLocation(row, &l)
	if isNoRows(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PGLocationRepository) Create(ctx context.Context, l *domain.Location) error {
	err := r.db.QueryRow(ctx, `INSERT INTO locations (city, country_id) VALUES ($1, $2) RETURNING id`, l.City, l.CountryID).Scan(&l.ID)
	return r.mapError(err)
}

func (r *PGLocationRepository) Update(ctx context.Context, l *domain.Location) error {
	res, err := r.db.Exec(ctx, `UPDATE locations SET city=$1, country_id=$2 WHERE id=$3`, l.City, l.CountryID, l.ID)
	if err != nil {
		return r.mapError(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGLocationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM locations WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGLocationRepository) mapError(err error) error {
	switch {
	case isUniqueViolation(err, "uq_locations_city_country"):
		return domain.NewValidationError("city", "location already exists in this country")
	case isForeignKeyViolation(err, "fk_locations_country"):
		return domain.NewValidationError("country_id", "country does not exist")
	}
	return err
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

const airportColumns = `a.id, a.name, a.location_id, l.city, l.country_id, c.name`

func scanAirport(row pgxRow, a *domain.Airport) error {
	var (
		city        string
		countryID   int64
		countryName string
	)
	if err := row.Scan(&a.ID, &a.Name, &a.LocationID, &city, &countryID, &countryName); err != nil {
		return err
	}
	a.Location = &domain.Location{
		ID:        a.LocationID,
		City:      city,
		CountryID: countryID,
		Country:   &domain.Country{ID: countryID, Name: countryName},
	}
	return nil
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT `+airportColumns+` FROM airports a JOIN locations l ON l.id = a.location_id JOIN countries c ON c.id = l.country_id ORDER BY a.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := scanAirport(rows, &a); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT `+airportColumns+` FROM airports a JOIN locations l ON l.id = a.location_id JOIN countries c ON c.id = l.country_id WHERE a.id=$1`, id)
	var a domain.Airport
	err := scanAirport(row, &a)
	if isNoRows(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, a *domain.Airport) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airports (name, location_id) VALUES ($1, $2) RETURNING id`, a.Name, a.LocationID).Scan(&a.ID)
	return r.mapError(err)
}

func (r *PGAirportRepository) Update(ctx context.Context, a *domain.Airport) error {
	res, err := r.db.Exec(ctx, `UPDATE airports SET name=$1, location_id=$2 WHERE id=$3`, a.Name, a.LocationID, a.ID)
	if err != nil {
		return r.mapError(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGAirportRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM airports WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGAirportRepository) mapError(err error) error {
	switch {
	case isUniqueViolation(err, "uq_airports_name_location"):
		return domain.NewValidationError("name", "airport already exists at this location")
	case isForeignKeyViolation(err, "fk_airports_location"):
		return domain.NewValidationError("location_id", "location does not exist")
	}
	return err
}

var _ CountryRepository = (*PGCountryRepository)(nil)
var _ LocationRepository = (*PGLocationRepository)(nil)
var _ AirportRepository = (*PGAirportRepository)(nil)
