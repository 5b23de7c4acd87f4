package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrSeatTaken   = errors.New("seat is already taken")
	ErrRouteExists = errors.New("route for this origin and destination already exists")
)

// ValidationError reports business-rule violations keyed by field name,
// so callers can surface them next to the offending input.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

// SeatTakenError identifies the exact seat that collided with an
// existing booking on the same flight.
type SeatTakenError struct {
	FlightID int64
	Row      int
	Seat     int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat %d in row %d is already taken on flight %d", e.Seat, e.Row, e.FlightID)
}

func (e *SeatTakenError) Unwrap() error {
	return ErrSeatTaken
}
