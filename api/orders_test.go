package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avykhor/airport-api/internal/domain"
	"github.com/avykhor/airport-api/internal/service/orders"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOrderUseCase struct {
	mock.Mock
}

func (m *MockOrderUseCase) Create(ctx context.Context, userID int64, input orders.CreateOrderInput) (*domain.Order, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) List(ctx context.Context, userID int64) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) GetByID(ctx context.Context, userID, id int64) (*domain.Order, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) CreateTicket(ctx context.Context, input orders.TicketSpecInput, orderID int64) (*domain.Ticket, error) {
	args := m.Called(ctx, input, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockOrderUseCase) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockOrderUseCase) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func authedContext(t *testing.T, w *httptest.ResponseRecorder, userID int64) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	c.Set("auth.user_id", userID)
	return c
}

func TestOrderHandler_create_Success(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(t, w, 42)

	body := `{"tickets":[{"row":3,"seat":4,"flight_id":1}]}`
	c.Request = httptest.NewRequest("POST", "/orders", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	created := &domain.Order{
		ID:        1,
		UserID:    42,
		Reference: "e1b4c8a0-0000-0000-0000-000000000000",
		Tickets:   []domain.Ticket{{ID: 1, Row: 3, Seat: 4, FlightID: 1, OrderID: 1}},
	}

	mockService.On("Create", c.Request.Context(), int64(42), mock.AnythingOfType("orders.CreateOrderInput")).
		Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"reference"`)

	mockService.AssertExpectations(t)
}

func TestOrderHandler_create_NoUser(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/orders", strings.NewReader(`{"tickets":[]}`))

	handler.create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestOrderHandler_create_SeatTaken(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(t, w, 42)

	body := `{"tickets":[{"row":3,"seat":4,"flight_id":1}]}`
	c.Request = httptest.NewRequest("POST", "/orders", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Create", c.Request.Context(), int64(42), mock.Anything).
		Return(nil, &domain.SeatTakenError{FlightID: 1, Row: 3, Seat: 4})

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already taken")

	mockService.AssertExpectations(t)
}

func TestOrderHandler_create_ValidationError(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(t, w, 42)

	body := `{"tickets":[{"row":99,"seat":99,"flight_id":1}]}`
	c.Request = httptest.NewRequest("POST", "/orders", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	ve := &domain.ValidationError{Fields: map[string]string{
		"row":  "row must be in range [1, 10], got 99",
		"seat": "seat must be in range [1, 6], got 99",
	}}
	mockService.On("Create", c.Request.Context(), int64(42), mock.Anything).Return(nil, ve)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{
		"row":  "row must be in range [1, 10], got 99",
		"seat": "seat must be in range [1, 6], got 99"
	}`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestOrderHandler_list_ScopedToCaller(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(t, w, 42)
	c.Request = httptest.NewRequest("GET", "/orders", nil)

	list := []domain.Order{{ID: 1, UserID: 42, Reference: "ref-1"}}
	mockService.On("List", c.Request.Context(), int64(42)).Return(list, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestOrderHandler_get_ForeignOrderIsNotFound(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	w := httptest.NewRecorder()
	c := authedContext(t, w, 42)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Request = httptest.NewRequest("GET", "/orders/7", nil)

	// Order 7 belongs to someone else; the repository scoping makes it
	// indistinguishable from a missing order.
	mockService.On("GetByID", c.Request.Context(), int64(42), int64(7)).Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestTicketHandler_create(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"row":2,"seat":3,"flight_id":1,"order_id":9}`
	c.Request = httptest.NewRequest("POST", "/tickets", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	ticket := &domain.Ticket{ID: 5, Row: 2, Seat: 3, FlightID: 1, OrderID: 9}
	spec := orders.TicketSpecInput{Row: 2, Seat: 3, FlightID: 1}
	mockService.On("CreateTicket", c.Request.Context(), spec, int64(9)).Return(ticket, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestTicketHandler_list(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/tickets", nil)

	tickets := []domain.Ticket{{ID: 1, Row: 1, Seat: 1, FlightID: 1, OrderID: 1}}
	mockService.On("ListTickets", c.Request.Context()).Return(tickets, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
