package service

import (
	"context"
	"fmt"
	"time"

	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/internal/store"
	"github.com/routeops/route-tracker/internal/utils"
	"github.com/routeops/route-tracker/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and the
// bearer token lifecycle using a UserRepository for storage.
//
// The password is stored and compared verbatim and the token is a
// reversible prefix credential. Both are known defects of the wire
// contract this service reproduces; neither is silently fixed here.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Register creates a new driver account.
//
// The role is fixed to the default and CreatedAt is set to now; the
// repository assigns the ID and enforces email uniqueness.
//
// Returns the stored user or a wrapped storage error
// (store.ErrEmailAlreadyExists when the email is taken).
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		Email:     request.Email,
		Password:  request.Password,
		Name:      request.Name,
		Company:   request.Company,
		Role:      models.DefaultRole,
		CreatedAt: time.Now(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Debug().Str("id", registeredUser.ID).Str("email", registeredUser.Email).Msg("user registered")

	return registeredUser, nil
}

// Login authenticates an existing account.
//
// It looks the account up by email and compares the supplied password
// exactly against the stored one.
//
// Returns the authenticated user record or:
//   - A wrapped storage error if the lookup fails (unknown email —
//     see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the passwords do not match.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if foundUser.Password != request.Password {
		log.Error().
			Str("id", foundUser.ID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	return foundUser, nil
}

// GetUser loads the account behind an already-resolved owner ID.
// This is the only lookup the current-user endpoint performs after the
// auth middleware; everywhere else the ID is trusted as-is.
func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues the bearer credential for the given user.
//
// The derivation is deterministic: the credential embeds the account ID
// and is reversible via ParseToken. It never fails for a stored user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return utils.IssueToken(user.ID), nil
}

// ParseToken recovers the account ID embedded in a raw credential string.
//
// Any parse failure is normalised to ErrTokenIsInvalid so that callers
// do not need to inspect codec-level errors. No check is made that an
// account with the recovered ID exists.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ParseToken(tokenString)
	if err != nil {
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
