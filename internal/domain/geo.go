package domain

type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Location struct {
	ID        int64    `json:"id"`
	City      string   `json:"city"`
	CountryID int64    `json:"country_id"`
	Country   *Country `json:"country,omitempty"`
}

type Airport struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	LocationID int64     `json:"location_id"`
	Location   *Location `json:"location,omitempty"`
}
