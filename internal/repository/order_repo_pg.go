package repository

import (
	"context"

	"github.com/avykhor/airport-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository interface {
	// Create persists the order and every ticket it carries in one
	// transaction. On any failure nothing is persisted.
	Create(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error)

	CreateTicket(ctx context.Context, t *domain.Ticket) error
	ListTickets(ctx context.Context) ([]domain.Ticket, error)
	GetTicket(ctx context.Context, id int64) (*domain.Ticket, error)
	CountTicketsForFlight(ctx context.Context, flightID int64) (int, error)
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `INSERT INTO orders (user_id, reference) VALUES ($1, $2) RETURNING id, created_at`,
		order.UserID, order.Reference).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for i := range order.Tickets {
		t := &order.Tickets[i]
		t.OrderID = order.ID
		if err := insertTicket(ctx, tx, t); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func insertTicket(ctx context.Context, tx pgx.Tx, t *domain.Ticket) error {
	err := tx.QueryRow(ctx, `INSERT INTO tickets ("row", seat, flight_id, order_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		t.Row, t.Seat, t.FlightID, t.OrderID).Scan(&t.ID)
	return mapTicketError(err, t)
}

// mapTicketError turns storage constraint violations into domain
// errors. The unique index over (flight_id, row, seat) is the
// authoritative double-booking guard, so violations surface as
// SeatTakenError regardless of any earlier application-level checks.
func mapTicketError(err error, t *domain.Ticket) error {
	switch {
	case isUniqueViolation(err, "uq_tickets_flight_row_seat"):
		return &domain.SeatTakenError{FlightID: t.FlightID, Row: t.Row, Seat: t.Seat}
	case isForeignKeyViolation(err, "fk_tickets_flight"):
		return domain.NewValidationError("flight", "flight does not exist")
	case isForeignKeyViolation(err, "fk_tickets_order"):
		return domain.NewValidationError("order", "order does not exist")
	}
	return err
}

func (r *PGOrderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, reference, created_at FROM orders WHERE user_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Reference, &o.CreatedAt); err != nil {
			return nil, err
		}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ticketRows, err := r.db.Query(ctx, `
		SELECT t.id, t."row", t.seat, t.flight_id, t.order_id
		FROM tickets t
		JOIN orders o ON o.id = t.order_id
		WHERE o.user_id=$1
		ORDER BY t.order_id, t.id`, userID)
	if err != nil {
		return nil, err
	}
	defer ticketRows.Close()

	for ticketRows.Next() {
		var t domain.Ticket
		if err := ticketRows.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID); err != nil {
			return nil, err
		}
		if i, ok := index[t.OrderID]; ok {
			orders[i].Tickets = append(orders[i].Tickets, t)
		}
	}
	return orders, ticketRows.Err()
}

// GetByIDForUser scopes the lookup to the owner, so a foreign order is
// indistinguishable from a missing one.
func (r *PGOrderRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRow(ctx, `SELECT id, user_id, reference, created_at FROM orders WHERE id=$1 AND user_id=$2`, id, userID).
		Scan(&o.ID, &o.UserID, &o.Reference, &o.CreatedAt)
	if isNoRows(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT id, "row", seat, flight_id, order_id FROM tickets WHERE order_id=$1 ORDER BY id`, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID); err != nil {
			return nil, err
		}
		o.Tickets = append(o.Tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PGOrderRepository) CreateTicket(ctx context.Context, t *domain.Ticket) error {
	err := r.db.QueryRow(ctx, `INSERT INTO tickets ("row", seat, flight_id, order_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		t.Row, t.Seat, t.FlightID, t.OrderID).Scan(&t.ID)
	return mapTicketError(err, t)
}

func (r *PGOrderRepository) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT id, "row", seat, flight_id, order_id FROM tickets ORDER BY "row", seat`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *PGOrderRepository) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	var t domain.Ticket
	err := r.db.QueryRow(ctx, `SELECT id, "row", seat, flight_id, order_id FROM tickets WHERE id=$1`, id).
		Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID)
	if isNoRows(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PGOrderRepository) CountTicketsForFlight(ctx context.Context, flightID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tickets WHERE flight_id=$1`, flightID).Scan(&count)
	return count, err
}

var _ OrderRepository = (*PGOrderRepository)(nil)
