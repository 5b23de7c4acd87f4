package orders

import (
	"context"
	"errors"
	"time"

	"github.com/avykhor/airport-api/internal/domain"
	"github.com/avykhor/airport-api/internal/kafka"
	"github.com/avykhor/airport-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderUseCase interface {
	Create(ctx context.Context, userID int64, input CreateOrderInput) (*domain.Order, error)
	List(ctx context.Context, userID int64) ([]domain.Order, error)
	GetByID(ctx context.Context, userID, id int64) (*domain.Order, error)

	CreateTicket(ctx context.Context, input TicketSpecInput, orderID int64) (*domain.Ticket, error)
	ListTickets(ctx context.Context) ([]domain.Ticket, error)
	GetTicket(ctx context.Context, id int64) (*domain.Ticket, error)
}

type Cache interface {
	AcquireSeatLock(ctx context.Context, flightID int64, row, seat int, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, flightID int64, row, seat int) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type OrderService struct {
	orders             repository.OrderRepository
	flights            repository.FlightRepository
	cache              Cache
	producer           Producer
	orderTopic         string
	notificationsTopic string
	lockTTL            time.Duration
	log                *zap.Logger
}

type CreateOrderInput struct {
	Tickets []TicketSpecInput `json:"tickets"`
}

type TicketSpecInput struct {
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
	FlightID int64 `json:"flight_id"`
}

type OrderServiceOption func(*OrderService)

func WithNotificationsTopic(topic string) OrderServiceOption {
	return func(s *OrderService) {
		s.notificationsTopic = topic
	}
}

func NewOrderService(
	orders repository.OrderRepository,
	flights repository.FlightRepository,
	cache Cache,
	producer Producer,
	orderTopic string,
	lockTTL time.Duration,
	log *zap.Logger,
	opts ...OrderServiceOption,
) *OrderService {
	service := &OrderService{
		orders:     orders,
		flights:    flights,
		cache:      cache,
		producer:   producer,
		orderTopic: orderTopic,
		lockTTL:    lockTTL,
		log:        log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Create books every requested seat under one new order, atomically:
// either the order and all its tickets are persisted, or nothing is.
// Seat bounds are validated against each flight's airplane before any
// write; the collision guard is the storage unique constraint, with a
// best-effort redis lock as fast path.
func (s *OrderService) Create(ctx context.Context, userID int64, input CreateOrderInput) (*domain.Order, error) {
	if len(input.Tickets) == 0 {
		return nil, domain.NewValidationError("tickets", "order must contain at least one ticket")
	}

	if err := s.validateSpecs(ctx, input.Tickets); err != nil {
		return nil, err
	}

	locked, err := s.lockSeats(ctx, input.Tickets)
	if len(locked) > 0 {
		defer s.releaseSeats(ctx, locked)
	}
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:    userID,
		Reference: uuid.NewString(),
		Tickets:   make([]domain.Ticket, len(input.Tickets)),
	}
	for i, spec := range input.Tickets {
		order.Tickets[i] = domain.Ticket{Row: spec.Row, Seat: spec.Seat, FlightID: spec.FlightID}
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, "order_created", order)
	s.invalidateFlights(ctx)
	return order, nil
}

// validateSpecs resolves each spec's flight (once per flight) and runs
// the seat validator against the airplane's dimensions.
func (s *OrderService) validateSpecs(ctx context.Context, specs []TicketSpecInput) error {
	flightsByID := make(map[int64]*domain.Flight)
	for _, spec := range specs {
		flight, ok := flightsByID[spec.FlightID]
		if !ok {
			var err error
			flight, err = s.flights.GetByID(ctx, spec.FlightID)
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("flight", "flight does not exist")
			}
			if err != nil {
				return err
			}
			flightsByID[spec.FlightID] = flight
		}

		if err := domain.ValidateSeat(spec.Row, spec.Seat, flight.Airplane.Rows, flight.Airplane.SeatsInRow); err != nil {
			return err
		}
	}
	return nil
}

func (s *OrderService) lockSeats(ctx context.Context, specs []TicketSpecInput) ([]TicketSpecInput, error) {
	if s.cache == nil {
		return nil, nil
	}

	locked := make([]TicketSpecInput, 0, len(specs))
	for _, spec := range specs {
		ok, err := s.cache.AcquireSeatLock(ctx, spec.FlightID, spec.Row, spec.Seat, s.lockTTL)
		if err != nil {
			return locked, err
		}
		if !ok {
			return locked, &domain.SeatTakenError{FlightID: spec.FlightID, Row: spec.Row, Seat: spec.Seat}
		}
		locked = append(locked, spec)
	}
	return locked, nil
}

func (s *OrderService) releaseSeats(ctx context.Context, specs []TicketSpecInput) {
	for _, spec := range specs {
		if err := s.cache.ReleaseSeatLock(ctx, spec.FlightID, spec.Row, spec.Seat); err != nil {
			s.log.Warn("release seat lock failed",
				zap.Int64("flight_id", spec.FlightID), zap.Int("row", spec.Row), zap.Int("seat", spec.Seat), zap.Error(err))
		}
	}
}

func (s *OrderService) List(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) GetByID(ctx context.Context, userID, id int64) (*domain.Order, error) {
	return s.orders.GetByIDForUser(ctx, id, userID)
}

// CreateTicket is the administrative single-ticket path. It runs the
// same guard as order creation against an existing order.
func (s *OrderService) CreateTicket(ctx context.Context, input TicketSpecInput, orderID int64) (*domain.Ticket, error) {
	if err := s.validateSpecs(ctx, []TicketSpecInput{input}); err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{Row: input.Row, Seat: input.Seat, FlightID: input.FlightID, OrderID: orderID}
	if err := s.orders.CreateTicket(ctx, ticket); err != nil {
		return nil, err
	}

	s.invalidateFlights(ctx)
	return ticket, nil
}

func (s *OrderService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	return s.orders.ListTickets(ctx)
}

func (s *OrderService) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	return s.orders.GetTicket(ctx, id)
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.producer == nil || s.orderTopic == "" {
		return
	}

	event := kafka.OrderEvent{
		Type:      eventType,
		OrderID:   order.ID,
		Reference: order.Reference,
		UserID:    order.UserID,
		Tickets:   make([]kafka.TicketEvent, 0, len(order.Tickets)),
		CreatedAt: order.CreatedAt,
	}
	for _, t := range order.Tickets {
		event.Tickets = append(event.Tickets, kafka.TicketEvent{FlightID: t.FlightID, Row: t.Row, Seat: t.Seat})
	}

	if err := s.producer.Publish(ctx, s.orderTopic, order.Reference, event); err != nil {
		s.log.Warn("publish order event failed", zap.String("reference", order.Reference), zap.Error(err))
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, order.Reference, event); err != nil {
			s.log.Warn("publish notification failed", zap.String("reference", order.Reference), zap.Error(err))
		}
	}
}

func (s *OrderService) invalidateFlights(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		s.log.Warn("invalidate flights cache failed", zap.Error(err))
	}
}

var _ OrderUseCase = (*OrderService)(nil)
