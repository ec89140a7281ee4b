package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/parkview/go-grievance-backend/internal/domain"
	"github.com/parkview/go-grievance-backend/internal/repo"
)

// AuthService checks login attempts against the provisioned accounts.
type AuthService struct {
	store  *repo.Store
	region string
}

// NewAuthService wires an AuthService over store, scoped to region.
func NewAuthService(store *repo.Store, region string) *AuthService {
	return &AuthService{store: store, region: region}
}

// Authenticate verifies a login attempt. Checks run in a fixed order:
// credentials first, then the area code on record, then the account's
// region against the service region. Each failure maps to its own
// sentinel so the caller can explain the rejection, except that unknown
// usernames and wrong passwords share ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password, areaCode string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.store.FindUserByUsername(username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	hash := repo.HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(user.PasswordHash)) != 1 {
		return nil, ErrInvalidCredentials
	}
	if strings.TrimSpace(areaCode) != user.AreaCode {
		return nil, ErrAreaCodeMismatch
	}
	if user.Region != s.region {
		log.Ctx(ctx).Warn().
			Str("username", user.Username).
			Str("region", user.Region).
			Msg("login rejected: account outside service region")
		return nil, ErrRegionMismatch
	}

	return user, nil
}
