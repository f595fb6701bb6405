package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/umakantv/go-utils/httpserver"
)

// Route describes one endpoint of the API
type Route struct {
	Name    string
	Method  string
	Path    string
	Handler httpserver.HandlerFunc
}

// Routes returns the endpoint table. Numeric path variables are constrained
// so that /users/favorites never matches /users/{id}.
func (a *API) Routes() []Route {
	return []Route{
		{Name: "HealthCheck", Method: http.MethodGet, Path: "/health", Handler: a.HealthCheck},

		{Name: "ListUsers", Method: http.MethodGet, Path: "/users", Handler: a.GetUsers},
		{Name: "CreateUser", Method: http.MethodPost, Path: "/users", Handler: a.CreateUser},
		{Name: "ListUserFavorites", Method: http.MethodGet, Path: "/users/favorites", Handler: a.GetUserFavorites},
		{Name: "GetUser", Method: http.MethodGet, Path: "/users/{id:[0-9]+}", Handler: a.GetUser},
		{Name: "DeleteUser", Method: http.MethodDelete, Path: "/users/{id:[0-9]+}", Handler: a.DeleteUser},

		{Name: "ListPeople", Method: http.MethodGet, Path: "/people", Handler: a.GetPeople},
		{Name: "CreatePerson", Method: http.MethodPost, Path: "/people", Handler: a.CreatePerson},
		{Name: "GetPerson", Method: http.MethodGet, Path: "/people/{id:[0-9]+}", Handler: a.GetPerson},

		{Name: "ListPlanets", Method: http.MethodGet, Path: "/planets", Handler: a.GetPlanets},
		{Name: "CreatePlanet", Method: http.MethodPost, Path: "/planets", Handler: a.CreatePlanet},
		{Name: "GetPlanet", Method: http.MethodGet, Path: "/planets/{id:[0-9]+}", Handler: a.GetPlanet},

		{Name: "AddFavoritePlanet", Method: http.MethodPost, Path: "/favorite/planet/{planet_id:[0-9]+}", Handler: a.AddFavoritePlanet},
		{Name: "AddFavoritePerson", Method: http.MethodPost, Path: "/favorite/people/{people_id:[0-9]+}", Handler: a.AddFavoritePerson},
	}
}

// NewRouter mounts instrumented routes on a plain gorilla/mux router,
// for serving the API without the go-utils server (tests, embedding).
func NewRouter(routes []Route) *mux.Router {
	router := mux.NewRouter()
	for _, rt := range routes {
		h := Instrument(rt)
		router.HandleFunc(rt.Path, func(w http.ResponseWriter, r *http.Request) {
			h(r.Context(), w, r)
		}).Methods(rt.Method).Name(rt.Name)
	}
	return router
}
