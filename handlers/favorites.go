package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"starwars-api/models"

	"go.uber.org/zap"
)

// AddFavoritePlanet handles POST /favorite/planet/{planet_id} with body {user_id}
func (a *API) AddFavoritePlanet(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	planetID, ok := pathID(ctx, w, r, "planet_id")
	if !ok {
		return
	}
	req, ok := decodeFavoriteRequest(ctx, w, r)
	if !ok {
		return
	}

	logRequest(ctx, "info", "Adding favorite planet", zap.Int64("planet_id", planetID))

	fav, err := a.favorites.AddFavoritePlanet(ctx, req.UserID, planetID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "Favorite planet added", zap.Int64("favorite_id", fav.ID), zap.Int64("user_id", fav.UserID))
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Planet added to favorites"})
}

// AddFavoritePerson handles POST /favorite/people/{people_id} with body {user_id}
func (a *API) AddFavoritePerson(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	peopleID, ok := pathID(ctx, w, r, "people_id")
	if !ok {
		return
	}
	req, ok := decodeFavoriteRequest(ctx, w, r)
	if !ok {
		return
	}

	logRequest(ctx, "info", "Adding favorite person", zap.Int64("people_id", peopleID))

	fav, err := a.favorites.AddFavoritePerson(ctx, req.UserID, peopleID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "Favorite person added", zap.Int64("favorite_id", fav.ID), zap.Int64("user_id", fav.UserID))
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Person added to favorites"})
}

// decodeFavoriteRequest reads {user_id}. An empty body is accepted here and
// rejected by the service as a missing user_id.
func decodeFavoriteRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) (models.AddFavoriteRequest, bool) {
	var req models.AddFavoriteRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err == io.EOF {
		return req, true
	}
	if err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, badRequest("Invalid JSON"))
		return req, false
	}
	return req, true
}
