package models

// Favorite links a user to exactly one planet or one person.
type Favorite struct {
	ID       int64  `json:"id" db:"id"`
	UserID   int64  `json:"user_id" db:"user_id"`
	PeopleID *int64 `json:"people_id" db:"people_id"`
	PlanetID *int64 `json:"planet_id" db:"planet_id"`
}

// AddFavoriteRequest represents the body of POST /favorite/planet/{id}
// and POST /favorite/people/{id}
type AddFavoriteRequest struct {
	UserID *int64 `json:"user_id"`
}

// UserFavorites is the response of GET /users/favorites
type UserFavorites struct {
	Planets []Planet `json:"planets"`
	People  []Person `json:"people"`
}
