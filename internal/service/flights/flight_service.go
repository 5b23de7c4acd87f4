package flights

import (
	"context"
	"errors"
	"time"

	"github.com/avykhor/airport-api/internal/domain"
	"github.com/avykhor/airport-api/internal/repository"
	"go.uber.org/zap"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input FlightInput) (*domain.Flight, error)
	Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightInput struct {
	AirplaneID    int64     `json:"airplane_id"`
	RouteID       int64     `json:"route_id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	CrewIDs       []int64   `json:"crew_ids"`
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
	log   *zap.Logger
}

func NewFlightService(repo repository.FlightRepository, cache Cache, log *zap.Logger) *FlightService {
	return &FlightService{repo: repo, cache: cache, log: log}
}

// List serves the flight board from redis when a warm copy exists and
// falls back to the database otherwise. The cached copy carries the
// seats_available counts computed at fill time.
func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			s.log.Warn("fill flights cache failed", zap.Error(err))
		}
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, input FlightInput) (*domain.Flight, error) {
	if err := domain.ValidateFlightTimes(input.DepartureTime, input.ArrivalTime); err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		AirplaneID:    input.AirplaneID,
		RouteID:       input.RouteID,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
	}
	if err := s.repo.Create(ctx, flight, input.CrewIDs); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return s.repo.GetByID(ctx, flight.ID)
}

func (s *FlightService) Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error) {
	if err := domain.ValidateFlightTimes(input.DepartureTime, input.ArrivalTime); err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		ID:            id,
		AirplaneID:    input.AirplaneID,
		RouteID:       input.RouteID,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
	}
	if err := s.repo.Update(ctx, flight, input.CrewIDs); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// WarmCache refreshes the flights list cache unconditionally. The
// worker calls it on a ticker so the board stays warm between writes.
func (s *FlightService) WarmCache(ctx context.Context) error {
	if s.cache == nil {
		return errors.New("no cache configured")
	}
	flights, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	return s.cache.SetFlights(ctx, flights)
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		s.log.Warn("invalidate flights cache failed", zap.Error(err))
	}
}

var _ FlightUseCase = (*FlightService)(nil)
