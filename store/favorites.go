package store

import (
	"context"
	"database/sql"

	"starwars-api/models"

	"github.com/juju/errors"
)

const favoriteColumns = "id, user_id, people_id, planet_id"

// FindFavoritePlanet returns the favorite linking userID to planetID
func (q *Queries) FindFavoritePlanet(ctx context.Context, userID, planetID int64) (models.Favorite, error) {
	return q.findFavorite(ctx, "planet_id", userID, planetID)
}

// FindFavoritePerson returns the favorite linking userID to peopleID
func (q *Queries) FindFavoritePerson(ctx context.Context, userID, peopleID int64) (models.Favorite, error) {
	return q.findFavorite(ctx, "people_id", userID, peopleID)
}

// findFavorite looks a favorite up by owner and target. column is one of
// the fixed target column names, never user input.
func (q *Queries) findFavorite(ctx context.Context, column string, userID, targetID int64) (models.Favorite, error) {
	var fav models.Favorite
	err := q.get(ctx, &fav, "SELECT "+favoriteColumns+" FROM favorites WHERE user_id = ? AND "+column+" = ?", userID, targetID)
	if err == sql.ErrNoRows {
		return models.Favorite{}, errors.NotFoundf("favorite %s %d of user %d", column, targetID, userID)
	}
	if err != nil {
		return models.Favorite{}, errors.Annotate(err, "finding favorite")
	}
	return fav, nil
}

// CreateFavorite persists a favorite. Exactly one of PeopleID and PlanetID
// must be set. A duplicate (user, target) pair yields AlreadyExists and an
// unresolved reference yields NotFound.
func (q *Queries) CreateFavorite(ctx context.Context, fav models.Favorite) (models.Favorite, error) {
	if (fav.PeopleID == nil) == (fav.PlanetID == nil) {
		return models.Favorite{}, errors.NotValidf("favorite without exactly one of person or planet")
	}

	id, err := q.insert(ctx, "INSERT INTO favorites (user_id, people_id, planet_id) VALUES (?, ?, ?)",
		fav.UserID, fav.PeopleID, fav.PlanetID)
	if err != nil {
		return models.Favorite{}, errors.Annotatef(err, "creating favorite for user %d", fav.UserID)
	}

	fav.ID = id
	return fav, nil
}

// ListFavorites returns all favorite rows of a user in primary key order
func (q *Queries) ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	favs := []models.Favorite{}
	err := q.selectAll(ctx, &favs, "SELECT "+favoriteColumns+" FROM favorites WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, errors.Annotatef(err, "listing favorites of user %d", userID)
	}
	return favs, nil
}

// ListFavoritePlanets returns the planets a user marked as favorite
func (q *Queries) ListFavoritePlanets(ctx context.Context, userID int64) ([]models.Planet, error) {
	planets := []models.Planet{}
	err := q.selectAll(ctx, &planets, `SELECT pl.id, pl.name, pl.climate, pl.terrain, pl.population
FROM favorites f
JOIN planets pl ON pl.id = f.planet_id
WHERE f.user_id = ?
ORDER BY f.id`, userID)
	if err != nil {
		return nil, errors.Annotatef(err, "listing favorite planets of user %d", userID)
	}
	return planets, nil
}

// ListFavoritePeople returns the people a user marked as favorite
func (q *Queries) ListFavoritePeople(ctx context.Context, userID int64) ([]models.Person, error) {
	people := []models.Person{}
	err := q.selectAll(ctx, &people, selectPeople+`
JOIN favorites f ON f.people_id = p.id
WHERE f.user_id = ?
ORDER BY f.id`, userID)
	if err != nil {
		return nil, errors.Annotatef(err, "listing favorite people of user %d", userID)
	}
	return people, nil
}
