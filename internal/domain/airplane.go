package domain

import "encoding/json"

type AirplaneType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Airplane struct {
	ID             int64         `json:"id"`
	Name           string        `json:"name"`
	Rows           int           `json:"rows"`
	SeatsInRow     int           `json:"seats_in_row"`
	AirplaneTypeID int64         `json:"airplane_type_id"`
	AirplaneType   *AirplaneType `json:"airplane_type,omitempty"`
}

// Capacity is the total number of seats on the airplane.
func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

// MarshalJSON includes the derived capacity alongside the stored
// dimensions.
func (a Airplane) MarshalJSON() ([]byte, error) {
	type alias Airplane
	return json.Marshal(struct {
		alias
		Capacity int `json:"capacity"`
	}{alias(a), a.Capacity()})
}
