package repository

import (
	"context"

	"github.com/avykhor/airport-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirplaneTypeRepository interface {
	List(ctx context.Context) ([]domain.AirplaneType, error)
	GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error)
	Create(ctx context.Context, t *domain.AirplaneType) error
	Update(ctx context.Context, t *domain.AirplaneType) error
	Delete(ctx context.Context, id int64) error
}

type AirplaneRepository interface {
	List(ctx context.Context) ([]domain.Airplane, error)
	GetByID(ctx context.Context, id int64) (*domain.Airplane, error)
	Create(ctx context.Context, a *domain.Airplane) error
	Update(ctx context.Context, a *domain.Airplane) error
	Delete(ctx context.Context, id int64) error
}

type PGAirplaneTypeRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneTypeRepository(db *pgxpool.Pool) AirplaneTypeRepository {
	return &PGAirplaneTypeRepository{db: db}
}

func (r *PGAirplaneTypeRepository) List(ctx context.Context) ([]domain.AirplaneType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM airplane_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *PGAirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	var t domain.AirplaneType
	err := r.db.QueryRow(ctx, `SELECT id, name FROM airplane_types WHERE id=$1`, id).Scan(&t.ID, &t.Name)
	if isNoRows(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PGAirplaneTypeRepository) Create(ctx context.Context, t *domain.AirplaneType) error {
	return r.db.QueryRow(ctx, `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`, t.Name).Scan(&t.ID)
}

func (r *PGAirplaneTypeRepository) Update(ctx context.Context, t *domain.AirplaneType) error {
	res, err := r.db.Exec(ctx, `UPDATE airplane_types SET name=$1 WHERE id=$2`, t.Name, t.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGAirplaneTypeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM airplane_types WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type PGAirplaneRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneRepository(db *pgxpool.Pool) AirplaneRepository {
	return &PGAirplaneRepository{db: db}
}

const airplaneColumns = `a.id, a.name, a."rows", a.seats_in_row, a.airplane_type_id, t.name`

func scanAirplane(row pgxRow, a *domain.Airplane) error {
	var typeName string
	if err := row.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.AirplaneTypeID, &typeName); err != nil {
		return err
	}
	a.AirplaneType = &domain.AirplaneType{ID: a.AirplaneTypeID, Name: typeName}
	return nil
}

func (r *PGAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	rows, err := r.db.Query(ctx, `SELECT `+airplaneColumns+` FROM airplanes a JOIN airplane_types t ON t.id = a.airplane_type_id ORDER BY a.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		var a domain.Airplane
		if err := scanAirplane(rows, &a); err != nil {
			return nil, err
		}
		airplanes = append(airplanes, a)
	}
	return airplanes, rows.Err()
}

func (r *PGAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	row := r.db.QueryRow(ctx, `SELECT `+airplaneColumns+` FROM airplanes a JOIN airplane_types t ON t.id = a.airplane_type_id WHERE a.id=$1`, id)
	var a domain.Airplane
	err := scanAirplane(row, &a)
	if isNoRows(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PGAirplaneRepository) Create(ctx context.Context, a *domain.Airplane) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airplanes (name, "rows", seats_in_row, airplane_type_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		a.Name, a.Rows, a.SeatsInRow, a.AirplaneTypeID).Scan(&a.ID)
	if isForeignKeyViolation(err, "fk_airplanes_airplane_type") {
		return domain.NewValidationError("airplane_type_id", "airplane type does not exist")
	}
	return err
}

func (r *PGAirplaneRepository) Update(ctx context.Context, a *domain.Airplane) error {
	res, err := r.db.Exec(ctx, `UPDATE airplanes SET name=$1, "rows"=$2, seats_in_row=$3, airplane_type_id=$4 WHERE id=$5`,
		a.Name, a.Rows, a.SeatsInRow, a.AirplaneTypeID, a.ID)
	if isForeignKeyViolation(err, "fk_airplanes_airplane_type") {
		return domain.NewValidationError("airplane_type_id", "airplane type does not exist")
	}
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGAirplaneRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM airplanes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ AirplaneTypeRepository = (*PGAirplaneTypeRepository)(nil)
var _ AirplaneRepository = (*PGAirplaneRepository)(nil)
