package handlers

import (
	"context"
	"net/http"

	"starwars-api/models"

	"go.uber.org/zap"
)

// GetPeople handles GET /people
func (a *API) GetPeople(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	people, err := a.catalog.ListPeople(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	logRequest(ctx, "debug", "People retrieved", zap.Int("count", len(people)))
	writeJSON(w, http.StatusOK, people)
}

// GetPerson handles GET /people/{id}
func (a *API) GetPerson(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(ctx, w, r, "id")
	if !ok {
		return
	}

	person, err := a.catalog.GetPerson(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, person)
}

// CreatePerson handles POST /people. planet_id must name an existing planet.
func (a *API) CreatePerson(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.CreatePersonRequest
	if !decodeBody(ctx, w, r, &req) {
		return
	}

	logRequest(ctx, "info", "Creating person", zap.String("name", req.Name))

	person, err := a.catalog.CreatePerson(ctx, req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "Person created successfully", zap.Int64("people_id", person.ID))
	writeJSON(w, http.StatusCreated, person)
}

// GetPlanets handles GET /planets
func (a *API) GetPlanets(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	planets, err := a.catalog.ListPlanets(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	logRequest(ctx, "debug", "Planets retrieved", zap.Int("count", len(planets)))
	writeJSON(w, http.StatusOK, planets)
}

// GetPlanet handles GET /planets/{id}
func (a *API) GetPlanet(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(ctx, w, r, "id")
	if !ok {
		return
	}

	planet, err := a.catalog.GetPlanet(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, planet)
}

// CreatePlanet handles POST /planets
func (a *API) CreatePlanet(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlanetRequest
	if !decodeBody(ctx, w, r, &req) {
		return
	}

	logRequest(ctx, "info", "Creating planet", zap.String("name", req.Name))

	planet, err := a.catalog.CreatePlanet(ctx, req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "Planet created successfully", zap.Int64("planet_id", planet.ID))
	writeJSON(w, http.StatusCreated, planet)
}
