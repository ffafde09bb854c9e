package store

import (
	"context"
	"sync"

	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/models"
)

// userRepository is the in-memory implementation of [UserRepository].
// All state is process-local and lost on restart.
//
// The slice is guarded by a single mutex so that concurrent
// registrations are linearized: the duplicate-email check and the
// append happen atomically, which is what keeps the email-uniqueness
// invariant under concurrent requests.
type userRepository struct {
	logger *logger.Logger

	mu    sync.Mutex
	users []models.User
	ids   *idSource
}

// NewUserRepository constructs an empty in-memory [UserRepository].
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(ids *idSource, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		logger: logger,
		ids:    ids,
	}
}

// CreateUser stores a new account and returns it with a server-assigned
// ID. The email-uniqueness check and the insert run under the same lock.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			log.Debug().Str("email", user.Email).Msg("duplicate email rejected")
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	user.ID = r.ids.Next()
	r.users = append(r.users, user)

	return user, nil
}

// FindUserByEmail retrieves the account whose Email matches exactly
// (case-sensitive).
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

// FindUserByID retrieves the account with the given ID.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

// Count returns the number of stored accounts.
func (r *userRepository) Count(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.users)
}
