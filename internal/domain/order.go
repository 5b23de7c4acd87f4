package domain

import "time"

type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   []Ticket  `json:"tickets"`
}

type Ticket struct {
	ID       int64 `json:"id"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
	FlightID int64 `json:"flight_id"`
	OrderID  int64 `json:"order_id"`
}

// TicketSpec is a requested seat within an order before anything is
// persisted.
type TicketSpec struct {
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
	FlightID int64 `json:"flight_id"`
}
