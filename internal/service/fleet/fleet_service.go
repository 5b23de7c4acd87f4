package fleet

import (
	"context"

	"github.com/avykhor/airport-api/internal/domain"
	"github.com/avykhor/airport-api/internal/repository"
)

type FleetUseCase interface {
	ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error)
	GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error)
	CreateAirplaneType(ctx context.Context, input AirplaneTypeInput) (*domain.AirplaneType, error)
	UpdateAirplaneType(ctx context.Context, id int64, input AirplaneTypeInput) (*domain.AirplaneType, error)
	DeleteAirplaneType(ctx context.Context, id int64) error

	ListAirplanes(ctx context.Context) ([]domain.Airplane, error)
	GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error)
	CreateAirplane(ctx context.Context, input AirplaneInput) (*domain.Airplane, error)
	UpdateAirplane(ctx context.Context, id int64, input AirplaneInput) (*domain.Airplane, error)
	DeleteAirplane(ctx context.Context, id int64) error

	ListCrews(ctx context.Context) ([]domain.Crew, error)
	GetCrew(ctx context.Context, id int64) (*domain.Crew, error)
	CreateCrew(ctx context.Context, input CrewInput) (*domain.Crew, error)
	UpdateCrew(ctx context.Context, id int64, input CrewInput) (*domain.Crew, error)
	DeleteCrew(ctx context.Context, id int64) error
}

type AirplaneTypeInput struct {
	Name string `json:"name"`
}

type AirplaneInput struct {
	Name           string `json:"name"`
	Rows           int    `json:"rows"`
	SeatsInRow     int    `json:"seats_in_row"`
	AirplaneTypeID int64  `json:"airplane_type_id"`
}

type CrewInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type FleetService struct {
	types     repository.AirplaneTypeRepository
	airplanes repository.AirplaneRepository
	crews     repository.CrewRepository
}

func NewFleetService(
	types repository.AirplaneTypeRepository,
	airplanes repository.AirplaneRepository,
	crews repository.CrewRepository,
) *FleetService {
	return &FleetService{types: types, airplanes: airplanes, crews: crews}
}

func (s *FleetService) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	return s.types.List(ctx)
}

func (s *FleetService) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	return s.types.GetByID(ctx, id)
}

func (s *FleetService) CreateAirplaneType(ctx context.Context, input AirplaneTypeInput) (*domain.AirplaneType, error) {
	if input.Name == "" {
		return nil, domain.NewValidationError("name", "name must not be empty")
	}
	t := &domain.AirplaneType{Name: input.Name}
	if err := s.types.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *FleetService) UpdateAirplaneType(ctx context.Context, id int64, input AirplaneTypeInput) (*domain.AirplaneType, error) {
	if input.Name == "" {
		return nil, domain.NewValidationError("name", "name must not be empty")
	}
	t := &domain.AirplaneType{ID: id, Name: input.Name}
	if err := s.types.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *FleetService) DeleteAirplaneType(ctx context.Context, id int64) error {
	return s.types.Delete(ctx, id)
}

func (s *FleetService) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	return s.airplanes.List(ctx)
}

func (s *FleetService) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	return s.airplanes.GetByID(ctx, id)
}

func (s *FleetService) CreateAirplane(ctx context.Context, input AirplaneInput) (*domain.Airplane, error) {
	if err := validateAirplane(input); err != nil {
		return nil, err
	}
	a := &domain.Airplane{
		Name:           input.Name,
		Rows:           input.Rows,
		SeatsInRow:     input.SeatsInRow,
		AirplaneTypeID: input.AirplaneTypeID,
	}
	if err := s.airplanes.Create(ctx, a); err != nil {
		return nil, err
	}
	return s.airplanes.GetByID(ctx, a.ID)
}

func (s *FleetService) UpdateAirplane(ctx context.Context, id int64, input AirplaneInput) (*domain.Airplane, error) {
	if err := validateAirplane(input); err != nil {
		return nil, err
	}
	a := &domain.Airplane{
		ID:             id,
		Name:           input.Name,
		Rows:           input.Rows,
		SeatsInRow:     input.SeatsInRow,
		AirplaneTypeID: input.AirplaneTypeID,
	}
	if err := s.airplanes.Update(ctx, a); err != nil {
		return nil, err
	}
	return s.airplanes.GetByID(ctx, id)
}

func (s *FleetService) DeleteAirplane(ctx context.Context, id int64) error {
	return s.airplanes.Delete(ctx, id)
}

// validateAirplane rejects non-positive cabin dimensions before they
// reach the database. Zero rows would make every booking invalid.
func validateAirplane(input AirplaneInput) error {
	ve := &domain.ValidationError{Fields: map[string]string{}}
	if input.Name == "" {
		ve.Fields["name"] = "name must not be empty"
	}
	if input.Rows <= 0 {
		ve.Fields["rows"] = "rows must be positive"
	}
	if input.SeatsInRow <= 0 {
		ve.Fields["seats_in_row"] = "seats_in_row must be positive"
	}
	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}

func (s *FleetService) ListCrews(ctx context.Context) ([]domain.Crew, error) {
	return s.crews.List(ctx)
}

func (s *FleetService) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	return s.crews.GetByID(ctx, id)
}

func (s *FleetService) CreateCrew(ctx context.Context, input CrewInput) (*domain.Crew, error) {
	if err := validateCrew(input); err != nil {
		return nil, err
	}
	c := &domain.Crew{FirstName: input.FirstName, LastName: input.LastName}
	if err := s.crews.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *FleetService) UpdateCrew(ctx context.Context, id int64, input CrewInput) (*domain.Crew, error) {
	if err := validateCrew(input); err != nil {
		return nil, err
	}
	c := &domain.Crew{ID: id, FirstName: input.FirstName, LastName: input.LastName}
	if err := s.crews.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *FleetService) DeleteCrew(ctx context.Context, id int64) error {
	return s.crews.Delete(ctx, id)
}

func validateCrew(input CrewInput) error {
	ve := &domain.ValidationError{Fields: map[string]string{}}
	if input.FirstName == "" {
		ve.Fields["first_name"] = "first_name must not be empty"
	}
	if input.LastName == "" {
		ve.Fields["last_name"] = "last_name must not be empty"
	}
	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}

var _ FleetUseCase = (*FleetService)(nil)
