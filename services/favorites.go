package services

import (
	"context"

	"starwars-api/models"
	"starwars-api/store"

	"github.com/juju/errors"
)

// FavoriteService records favorites, at most one per (user, target) pair
type FavoriteService struct {
	store *store.Store
}

// NewFavoriteService creates a favorite service
func NewFavoriteService(st *store.Store) *FavoriteService {
	return &FavoriteService{store: st}
}

// AddFavoritePlanet marks planetID as a favorite of userID.
// userID is nil when the request did not carry one.
func (s *FavoriteService) AddFavoritePlanet(ctx context.Context, userID *int64, planetID int64) (models.Favorite, error) {
	if userID == nil {
		return models.Favorite{}, errors.NotValidf("missing user_id")
	}

	var fav models.Favorite
	err := s.store.InTx(ctx, func(q *store.Queries) error {
		if err := requireUser(ctx, q, *userID); err != nil {
			return errors.Trace(err)
		}
		exists, err := q.PlanetExists(ctx, planetID)
		if err != nil {
			return errors.Trace(err)
		}
		if !exists {
			return errors.NotFoundf("planet %d", planetID)
		}

		_, err = q.FindFavoritePlanet(ctx, *userID, planetID)
		if err == nil {
			return errors.AlreadyExistsf("planet %d as a favorite of user %d", planetID, *userID)
		}
		if !errors.Is(err, errors.NotFound) {
			return errors.Trace(err)
		}

		fav, err = q.CreateFavorite(ctx, models.Favorite{UserID: *userID, PlanetID: &planetID})
		if errors.Is(err, errors.AlreadyExists) {
			// Lost a race against a concurrent insert of the same pair.
			return errors.AlreadyExistsf("planet %d as a favorite of user %d", planetID, *userID)
		}
		return errors.Trace(err)
	})
	if err != nil {
		return models.Favorite{}, errors.Trace(err)
	}
	return fav, nil
}

// AddFavoritePerson marks peopleID as a favorite of userID.
// userID is nil when the request did not carry one.
func (s *FavoriteService) AddFavoritePerson(ctx context.Context, userID *int64, peopleID int64) (models.Favorite, error) {
	if userID == nil {
		return models.Favorite{}, errors.NotValidf("missing user_id")
	}

	var fav models.Favorite
	err := s.store.InTx(ctx, func(q *store.Queries) error {
		if err := requireUser(ctx, q, *userID); err != nil {
			return errors.Trace(err)
		}
		exists, err := q.PersonExists(ctx, peopleID)
		if err != nil {
			return errors.Trace(err)
		}
		if !exists {
			return errors.NotFoundf("person %d", peopleID)
		}

		_, err = q.FindFavoritePerson(ctx, *userID, peopleID)
		if err == nil {
			return errors.AlreadyExistsf("person %d as a favorite of user %d", peopleID, *userID)
		}
		if !errors.Is(err, errors.NotFound) {
			return errors.Trace(err)
		}

		fav, err = q.CreateFavorite(ctx, models.Favorite{UserID: *userID, PeopleID: &peopleID})
		if errors.Is(err, errors.AlreadyExists) {
			return errors.AlreadyExistsf("person %d as a favorite of user %d", peopleID, *userID)
		}
		return errors.Trace(err)
	})
	if err != nil {
		return models.Favorite{}, errors.Trace(err)
	}
	return fav, nil
}

// ListFavorites returns the planets and people a user marked as favorite
func (s *FavoriteService) ListFavorites(ctx context.Context, userID int64) (models.UserFavorites, error) {
	var result models.UserFavorites
	err := s.store.InTx(ctx, func(q *store.Queries) error {
		if err := requireUser(ctx, q, userID); err != nil {
			return errors.Trace(err)
		}

		var err error
		if result.Planets, err = q.ListFavoritePlanets(ctx, userID); err != nil {
			return errors.Trace(err)
		}
		result.People, err = q.ListFavoritePeople(ctx, userID)
		return errors.Trace(err)
	})
	if err != nil {
		return models.UserFavorites{}, errors.Trace(err)
	}
	return result, nil
}

func requireUser(ctx context.Context, q *store.Queries, userID int64) error {
	exists, err := q.UserExists(ctx, userID)
	if err != nil {
		return errors.Trace(err)
	}
	if !exists {
		return errors.NotFoundf("user %d", userID)
	}
	return nil
}
