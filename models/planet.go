package models

// Planet represents a planet of the catalogue.
// Population is nil when unknown.
type Planet struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Climate    string `json:"climate" db:"climate"`
	Terrain    string `json:"terrain" db:"terrain"`
	Population *int64 `json:"population" db:"population"`
}

// CreatePlanetRequest represents the body of POST /planets
type CreatePlanetRequest struct {
	Name       string `json:"name"`
	Climate    string `json:"climate,omitempty"`
	Terrain    string `json:"terrain,omitempty"`
	Population *int64 `json:"population,omitempty"`
}
