package handlers

import (
	"context"
	"net/http"

	"starwars-api/services"
)

// API serves the catalogue over HTTP
type API struct {
	users     *services.UserService
	catalog   *services.CatalogService
	favorites *services.FavoriteService
}

// NewAPI creates the HTTP API over the given services
func NewAPI(users *services.UserService, catalog *services.CatalogService, favorites *services.FavoriteService) *API {
	return &API{
		users:     users,
		catalog:   catalog,
		favorites: favorites,
	}
}

// HealthCheck handles GET /health
func (a *API) HealthCheck(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "starwars-api"})
}
