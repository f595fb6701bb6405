package store

import (
	"context"
	"database/sql"

	"starwars-api/models"

	"github.com/juju/errors"
)

const userColumns = "id, email, password, is_active"

// ListUsers returns all users in primary key order
func (q *Queries) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := q.selectAll(ctx, &users, "SELECT "+userColumns+" FROM users ORDER BY id"); err != nil {
		return nil, errors.Annotate(err, "listing users")
	}
	return users, nil
}

// GetUser returns the user with the given id
func (q *Queries) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	err := q.get(ctx, &user, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return models.User{}, errors.NotFoundf("user %d", id)
	}
	if err != nil {
		return models.User{}, errors.Annotatef(err, "getting user %d", id)
	}
	return user, nil
}

// FindUserByEmail returns the user registered with exactly this email
func (q *Queries) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := q.get(ctx, &user, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
	if err == sql.ErrNoRows {
		return models.User{}, errors.NotFoundf("user with email %q", email)
	}
	if err != nil {
		return models.User{}, errors.Annotatef(err, "finding user by email")
	}
	return user, nil
}

// UserExists reports whether a user with the given id exists
func (q *Queries) UserExists(ctx context.Context, id int64) (bool, error) {
	n, err := q.count(ctx, "SELECT COUNT(*) FROM users WHERE id = ?", id)
	if err != nil {
		return false, errors.Annotatef(err, "checking user %d", id)
	}
	return n > 0, nil
}

// CreateUser persists a user and returns it with its assigned id.
// The password must already be hashed.
func (q *Queries) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.Email == "" || user.Password == "" {
		return models.User{}, errors.NotValidf("empty user email or password")
	}

	id, err := q.insert(ctx, "INSERT INTO users (email, password, is_active) VALUES (?, ?, ?)",
		user.Email, user.Password, user.IsActive)
	if errors.Is(err, errors.AlreadyExists) {
		return models.User{}, errors.AlreadyExistsf("user with email %q", user.Email)
	}
	if err != nil {
		return models.User{}, errors.Annotate(err, "creating user")
	}

	user.ID = id
	return user, nil
}

// DeleteUser removes a user together with all of its favorites.
// Favorites are deleted explicitly so the cascade does not depend on the
// driver enforcing foreign keys.
func (q *Queries) DeleteUser(ctx context.Context, id int64) error {
	if _, err := q.ext.ExecContext(ctx, q.ext.Rebind("DELETE FROM favorites WHERE user_id = ?"), id); err != nil {
		return errors.Annotatef(err, "deleting favorites of user %d", id)
	}

	result, err := q.ext.ExecContext(ctx, q.ext.Rebind("DELETE FROM users WHERE id = ?"), id)
	if err != nil {
		return errors.Annotatef(err, "deleting user %d", id)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Trace(err)
	}
	if rowsAffected == 0 {
		return errors.NotFoundf("user %d", id)
	}
	return nil
}
