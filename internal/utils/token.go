package utils

import (
	"errors"
	"strings"

	"github.com/routeops/route-tracker/models"
)

// TokenPrefix is the fixed marker every issued credential starts with.
// The credential is simply the prefix followed by the account ID, which
// makes it reversible and trivially forgeable. The scheme is preserved
// as-is for wire compatibility with existing clients; any string of the
// right shape authenticates as the embedded account.
const TokenPrefix = "demo-token-"

// ErrInvalidToken is returned by ParseToken when the credential does not
// carry the expected prefix or embeds an empty account ID.
var ErrInvalidToken = errors.New("invalid token")

// IssueToken derives the bearer credential for the given account ID.
//
// The derivation is deterministic and pure: the same userID always
// yields the same credential, and distinct IDs yield distinct
// credentials. No expiry or signature is attached.
func IssueToken(userID string) models.Token {
	return models.Token{
		Value:  TokenPrefix + userID,
		UserID: userID,
	}
}

// ParseToken reverses IssueToken: it recovers the account ID embedded in
// a raw credential string.
//
// Returns ErrInvalidToken if the credential does not start with
// TokenPrefix or the embedded ID is empty. No account-existence check is
// performed here; callers that need one must look the ID up themselves.
func ParseToken(tokenString string) (models.Token, error) {
	if !strings.HasPrefix(tokenString, TokenPrefix) {
		return models.Token{}, ErrInvalidToken
	}

	userID := strings.TrimPrefix(tokenString, TokenPrefix)
	if userID == "" {
		return models.Token{}, ErrInvalidToken
	}

	return models.Token{Value: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the credential part from a raw
// "Authorization" header value of the form "<scheme> <token>".
// The scheme token is discarded without verification.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
