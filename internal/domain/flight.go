package domain

import "time"

type Flight struct {
	ID            int64     `json:"id"`
	AirplaneID    int64     `json:"airplane_id"`
	RouteID       int64     `json:"route_id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Airplane      *Airplane `json:"airplane,omitempty"`
	Route         *Route    `json:"route,omitempty"`
	Crew          []Crew    `json:"crew,omitempty"`

	// SeatsAvailable is derived from the current ticket count at read
	// time, never stored.
	SeatsAvailable int       `json:"seats_available"`
	TakenSeats     []SeatRef `json:"taken_seats,omitempty"`
}

// SeatRef identifies one seat on a flight's airplane.
type SeatRef struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}
