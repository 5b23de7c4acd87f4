package geo

import (
	"context"

	"github.com/avykhor/airport-api/internal/domain"
	"github.com/avykhor/airport-api/internal/repository"
)

type GeoUseCase interface {
	ListCountries(ctx context.Context) ([]domain.Country, error)
	GetCountry(ctx context.Context, id int64) (*domain.Country, error)
	CreateCountry(ctx context.Context, input CountryInput) (*domain.Country, error)
	UpdateCountry(ctx context.Context, id int64, input CountryInput) (*domain.Country, error)
	DeleteCountry(ctx context.Context, id int64) error

	ListLocations(ctx context.Context) ([]domain.Location, error)
	GetLocation(ctx context.Context, id int64) (*domain.Location, error)
	CreateLocation(ctx context.Context, input LocationInput) (*domain.Location, error)
	UpdateLocation(ctx context.Context, id int64, input LocationInput) (*domain.Location, error)
	DeleteLocation(ctx context.Context, id int64) error

	ListAirports(ctx context.Context) ([]domain.Airport, error)
	GetAirport(ctx context.Context, id int64) (*domain.Airport, error)
	CreateAirport(ctx context.Context, input AirportInput) (*domain.Airport, error)
	UpdateAirport(ctx context.Context, id int64, input AirportInput) (*domain.Airport, error)
	DeleteAirport(ctx context.Context, id int64) error
}

type CountryInput struct {
	Name string `json:"name"`
}

type LocationInput struct {
	City      string `json:"city"`
	CountryID int64  `json:"country_id"`
}

type AirportInput struct {
	Name       string `json:"name"`
	LocationID int64  `json:"location_id"`
}

type GeoService struct {
	countries repository.CountryRepository
	locations repository.LocationRepository
	airports  repository.AirportRepository
}

func NewGeoService(
	countries repository.CountryRepository,
	locations repository.LocationRepository,
	airports repository.AirportRepository,
) *GeoService {
	return &GeoService{countries: countries, locations: locations, airports: airports}
}

func (s *GeoService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	return s.countries.List(ctx)
}

func (s *GeoService) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	return s.countries.GetByID(ctx, id)
}

func (s *GeoService) CreateCountry(ctx context.Context, input CountryInput) (*domain.Country, error) {
	if input.Name == "" {
		return nil, domain.NewValidationError("name", "name must not be empty")
	}
	c := &domain.Country{Name: input.Name}
	if err := s.countries.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GeoService) UpdateCountry(ctx context.Context, id int64, input CountryInput) (*domain.Country, error) {
	if input.Name == "" {
		return nil, domain.NewValidationError("name", "name must not be empty")
	}
	c := &domain.Country{ID: id, Name: input.Name}
	if err := s.countries.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GeoService) DeleteCountry(ctx context.Context, id int64) error {
	return s.countries.Delete(ctx, id)
}

func (s *GeoService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.locations.List(ctx)
}

func (s *GeoService) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	return s.locations.GetByID(ctx, id)
}

func (s *GeoService) CreateLocation(ctx context.Context, input LocationInput) (*domain.Location, error) {
	if input.City == "" {
		return nil, domain.NewValidationError("city", "city must not be empty")
	}
	l := &domain.Location{City: input.City, CountryID: input.CountryID}
	if err := s.locations.Create(ctx, l); err != nil {
		return nil, err
	}
	return s.locations.GetByID(ctx, l.ID)
}

func (s *GeoService) UpdateLocation(ctx context.Context, id int64, input LocationInput) (*domain.Location, error) {
	if input.City == "" {
		return nil, domain.NewValidationError("city", "city must not be empty")
	}
	l := &domain.Location{ID: id, City: input.City, CountryID: input.CountryID}
	if err := s.locations.Update(ctx, l); err != nil {
		return nil, err
	}
	return s.locations.GetByID(ctx, id)
}

func (s *GeoService) DeleteLocation(ctx context.Context, id int64) error {
	return s.locations.Delete(ctx, id)
}

func (s *GeoService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.airports.List(ctx)
}

func (s *GeoService) GetAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	return s.airports.GetByID(ctx, id)
}

func (s *GeoService) CreateAirport(ctx context.Context, input AirportInput) (*domain.Airport, error) {
	if input.Name == "" {
		return nil, domain.NewValidationError("name", "name must not be empty")
	}
	a := &domain.Airport{Name: input.Name, LocationID: input.LocationID}
	if err := s.airports.Create(ctx, a); err != nil {
		return nil, err
	}
	return s.airports.GetByID(ctx, a.ID)
}

func (s *GeoService) UpdateAirport(ctx context.Context, id int64, input AirportInput) (*domain.Airport, error) {
	if input.Name == "" {
		return nil, domain.NewValidationError("name", "name must not be empty")
	}
	a := &domain.Airport{ID: id, Name: input.Name, LocationID: input.LocationID}
	if err := s.airports.Update(ctx, a); err != nil {
		return nil, err
	}
	return s.airports.GetByID(ctx, id)
}

func (s *GeoService) DeleteAirport(ctx context.Context, id int64) error {
	return s.airports.Delete(ctx, id)
}

var _ GeoUseCase = (*GeoService)(nil)
