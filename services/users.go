package services

import (
	"context"
	"strings"

	"starwars-api/models"
	"starwars-api/store"

	"github.com/juju/errors"
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the hashing cost used when none is configured
const DefaultBcryptCost = 12

// UserService registers and looks up users
type UserService struct {
	store      *store.Store
	bcryptCost int
}

// NewUserService creates a user service. A zero cost selects DefaultBcryptCost.
func NewUserService(st *store.Store, bcryptCost int) *UserService {
	if bcryptCost == 0 {
		bcryptCost = DefaultBcryptCost
	}
	return &UserService{
		store:      st,
		bcryptCost: bcryptCost,
	}
}

// CreateUser registers a user. Email and password are required and the
// email must not be taken; the comparison is case-sensitive. The password
// is stored as a bcrypt hash.
func (s *UserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return models.User{}, errors.NotValidf("empty email or password")
	}
	if err := checkLen("email", email, maxEmailLen); err != nil {
		return models.User{}, errors.Trace(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return models.User{}, errors.Annotate(err, "hashing password")
	}

	var user models.User
	err = s.store.InTx(ctx, func(q *store.Queries) error {
		_, err := q.FindUserByEmail(ctx, email)
		if err == nil {
			return errors.AlreadyExistsf("user with email %q", email)
		}
		if !errors.Is(err, errors.NotFound) {
			return errors.Trace(err)
		}

		user, err = q.CreateUser(ctx, models.User{
			Email:    email,
			Password: string(hashedPassword),
			IsActive: true,
		})
		return errors.Trace(err)
	})
	if err != nil {
		return models.User{}, errors.Trace(err)
	}
	return user, nil
}

// ListUsers returns all users
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	return users, errors.Trace(err)
}

// GetUser returns a single user
func (s *UserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	return user, errors.Trace(err)
}

// DeleteUser removes a user and all of its favorites
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.store.InTx(ctx, func(q *store.Queries) error {
		return errors.Trace(q.DeleteUser(ctx, id))
	})
}
