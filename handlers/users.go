package handlers

import (
	"context"
	"net/http"
	"strconv"

	"starwars-api/models"

	"go.uber.org/zap"
)

// userResponse is the public shape of a user
type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func serializeUser(u models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email}
}

// GetUsers handles GET /users - list all users
func (a *API) GetUsers(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	logRequest(ctx, "info", "Listing users")

	users, err := a.users.ListUsers(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, serializeUser(u))
	}

	logRequest(ctx, "info", "Users retrieved successfully", zap.Int("count", len(resp)))
	writeJSON(w, http.StatusOK, resp)
}

// GetUser handles GET /users/{id} - get user by ID
func (a *API) GetUser(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(ctx, w, r, "id")
	if !ok {
		return
	}

	user, err := a.users.GetUser(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, serializeUser(user))
}

// CreateUser handles POST /users - register a new user.
// The password is hashed and never echoed back.
func (a *API) CreateUser(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !decodeBody(ctx, w, r, &req) {
		return
	}

	logRequest(ctx, "info", "Creating user", zap.String("email", req.Email))

	user, err := a.users.CreateUser(ctx, req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "User created successfully", zap.Int64("user_id", user.ID))
	writeJSON(w, http.StatusCreated, serializeUser(user))
}

// DeleteUser handles DELETE /users/{id} - delete a user and its favorites
func (a *API) DeleteUser(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(ctx, w, r, "id")
	if !ok {
		return
	}

	logRequest(ctx, "info", "Deleting user", zap.Int64("user_id", id))

	if err := a.users.DeleteUser(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "User deleted successfully", zap.Int64("user_id", id))
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// GetUserFavorites handles GET /users/favorites?user_id= - list a user's
// favorite planets and people
func (a *API) GetUserFavorites(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("user_id")
	if idStr == "" {
		logRequest(ctx, "error", "Missing user_id query parameter")
		writeJSON(w, http.StatusBadRequest, badRequest("user_id query parameter is required"))
		return
	}
	userID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		logRequest(ctx, "error", "Invalid user_id query parameter", zap.String("user_id", idStr))
		writeJSON(w, http.StatusBadRequest, badRequest("Invalid user_id"))
		return
	}

	favs, err := a.favorites.ListFavorites(ctx, userID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "Favorites retrieved successfully",
		zap.Int64("user_id", userID), zap.Int("planets", len(favs.Planets)), zap.Int("people", len(favs.People)))
	writeJSON(w, http.StatusOK, favs)
}
