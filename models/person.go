package models

// Person represents a character of the catalogue.
// PlanetName is the name of the home planet, joined in on read.
type Person struct {
	ID         int64   `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	Species    string  `json:"species" db:"species"`
	BirthYear  string  `json:"birth_year" db:"birth_year"`
	Gender     string  `json:"gender" db:"gender"`
	PlanetID   *int64  `json:"planet_id" db:"planet_id"`
	PlanetName *string `json:"planet" db:"planet"`
}

// CreatePersonRequest represents the body of POST /people
// PlanetID is mandatory and must reference an existing planet.
type CreatePersonRequest struct {
	Name      string `json:"name"`
	PlanetID  *int64 `json:"planet_id"`
	Species   string `json:"species,omitempty"`
	BirthYear string `json:"birth_year,omitempty"`
	Gender    string `json:"gender,omitempty"`
}
