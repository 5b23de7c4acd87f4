package routes

import (
	"context"
	"testing"

	"github.com/avykhor/airport-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) List(ctx context.Context) ([]domain.Route, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) Create(ctx context.Context, rt *domain.Route) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, rt *domain.Route) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRouteService_Create_Success(t *testing.T) {
	mockRepo := &MockRouteRepository{}
	service := NewRouteService(mockRepo)

	ctx := context.Background()
	input := RouteInput{OriginID: 1, DestinationID: 2, Distance: 750}

	created := &domain.Route{ID: 3, OriginID: 1, DestinationID: 2, Distance: 750}

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Route")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Route).ID = 3
		}).Return(nil).Once()
	mockRepo.On("GetByID", ctx, int64(3)).Return(created, nil).Once()

	route, err := service.Create(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, created, route)

	mockRepo.AssertExpectations(t)
}

func TestRouteService_Create_SameOriginAndDestination(t *testing.T) {
	mockRepo := &MockRouteRepository{}
	service := NewRouteService(mockRepo)

	route, err := service.Create(context.Background(), RouteInput{OriginID: 1, DestinationID: 1, Distance: 0})

	assert.Nil(t, route)
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "destination")

	mockRepo.AssertNotCalled(t, "Create")
}

func TestRouteService_Create_DuplicatePair(t *testing.T) {
	mockRepo := &MockRouteRepository{}
	service := NewRouteService(mockRepo)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrRouteExists).Once()

	route, err := service.Create(ctx, RouteInput{OriginID: 1, DestinationID: 2, Distance: 750})

	assert.Nil(t, route)
	assert.ErrorIs(t, err, domain.ErrRouteExists)

	mockRepo.AssertExpectations(t)
}

func TestRouteService_Update_SameOriginAndDestination(t *testing.T) {
	mockRepo := &MockRouteRepository{}
	service := NewRouteService(mockRepo)

	route, err := service.Update(context.Background(), 3, RouteInput{OriginID: 5, DestinationID: 5, Distance: 100})

	assert.Nil(t, route)
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)

	mockRepo.AssertNotCalled(t, "Update")
}

func TestRouteService_Delete(t *testing.T) {
	mockRepo := &MockRouteRepository{}
	service := NewRouteService(mockRepo)

	ctx := context.Background()
	mockRepo.On("Delete", ctx, int64(3)).Return(nil).Once()

	assert.NoError(t, service.Delete(ctx, 3))
	mockRepo.AssertExpectations(t)
}
