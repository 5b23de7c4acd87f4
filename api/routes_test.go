package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avykhor/airport-api/internal/domain"
	"github.com/avykhor/airport-api/internal/service/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRouteUseCase struct {
	mock.Mock
}

func (m *MockRouteUseCase) List(ctx context.Context) ([]domain.Route, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockRouteUseCase) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteUseCase) Create(ctx context.Context, input routes.RouteInput) (*domain.Route, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteUseCase) Update(ctx context.Context, id int64, input routes.RouteInput) (*domain.Route, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRouteHandler_create_SameAirports(t *testing.T) {
	mockService := &MockRouteUseCase{}
	handler := NewRouteHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"origin_id":1,"destination_id":1,"distance":0}`
	c.Request = httptest.NewRequest("POST", "/routes", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Create", c.Request.Context(), routes.RouteInput{OriginID: 1, DestinationID: 1, Distance: 0}).
		Return(nil, domain.NewValidationError("destination", "origin and destination must differ"))

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "destination")

	mockService.AssertExpectations(t)
}

func TestRouteHandler_create_DuplicatePair(t *testing.T) {
	mockService := &MockRouteUseCase{}
	handler := NewRouteHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"origin_id":1,"destination_id":2,"distance":750}`
	c.Request = httptest.NewRequest("POST", "/routes", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Create", c.Request.Context(), mock.Anything).Return(nil, domain.ErrRouteExists)

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

func TestRouteHandler_get(t *testing.T) {
	mockService := &MockRouteUseCase{}
	handler := NewRouteHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	c.Request = httptest.NewRequest("GET", "/routes/3", nil)

	route := &domain.Route{ID: 3, OriginID: 1, DestinationID: 2, Distance: 750}
	mockService.On("GetByID", c.Request.Context(), int64(3)).Return(route, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"distance":750`)

	mockService.AssertExpectations(t)
}
