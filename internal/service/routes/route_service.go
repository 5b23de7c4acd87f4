package routes

import (
	"context"

	"github.com/avykhor/airport-api/internal/domain"
	"github.com/avykhor/airport-api/internal/repository"
)

type RouteUseCase interface {
	List(ctx context.Context) ([]domain.Route, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	Create(ctx context.Context, input RouteInput) (*domain.Route, error)
	Update(ctx context.Context, id int64, input RouteInput) (*domain.Route, error)
	Delete(ctx context.Context, id int64) error
}

type RouteInput struct {
	OriginID      int64 `json:"origin_id"`
	DestinationID int64 `json:"destination_id"`
	Distance      int   `json:"distance"`
}

type RouteService struct {
	repo repository.RouteRepository
}

func NewRouteService(repo repository.RouteRepository) *RouteService {
	return &RouteService{repo: repo}
}

func (s *RouteService) List(ctx context.Context) ([]domain.Route, error) {
	return s.repo.List(ctx)
}

func (s *RouteService) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RouteService) Create(ctx context.Context, input RouteInput) (*domain.Route, error) {
	if err := domain.ValidateRoute(input.OriginID, input.DestinationID); err != nil {
		return nil, err
	}

	route := &domain.Route{
		OriginID:      input.OriginID,
		DestinationID: input.DestinationID,
		Distance:      input.Distance,
	}
	if err := s.repo.Create(ctx, route); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, route.ID)
}

func (s *RouteService) Update(ctx context.Context, id int64, input RouteInput) (*domain.Route, error) {
	if err := domain.ValidateRoute(input.OriginID, input.DestinationID); err != nil {
		return nil, err
	}

	route := &domain.Route{
		ID:            id,
		OriginID:      input.OriginID,
		DestinationID: input.DestinationID,
		Distance:      input.Distance,
	}
	if err := s.repo.Update(ctx, route); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *RouteService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var _ RouteUseCase = (*RouteService)(nil)
