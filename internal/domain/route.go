package domain

type Route struct {
	ID            int64    `json:"id"`
	OriginID      int64    `json:"origin_id"`
	DestinationID int64    `json:"destination_id"`
	Distance      int      `json:"distance"`
	Origin        *Airport `json:"origin,omitempty"`
	Destination   *Airport `json:"destination,omitempty"`
}
