package service

import (
	"context"

	"github.com/MKhiriev/meds-gateway/internal/config"
	"github.com/MKhiriev/meds-gateway/internal/logger"
	"github.com/MKhiriev/meds-gateway/internal/utils"
	"github.com/MKhiriev/meds-gateway/models"
)

// authService is the concrete implementation of AuthService.
// It holds the single credential pair configured for the gateway.
type authService struct {
	// expected is the configured credential pair; read-only after construction.
	expected models.Credentials

	logger *logger.Logger
}

// NewAuthService constructs an AuthService that accepts exactly the
// credentials in cfg.
//
// Returns ErrNoExpectedCredentials if either value is empty: an empty expected
// password would otherwise let an empty presented password through.
func NewAuthService(cfg config.Auth, logger *logger.Logger) (AuthService, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, ErrNoExpectedCredentials
	}

	return &authService{
		expected: models.Credentials{Username: cfg.Username, Password: cfg.Password},
		logger:   logger,
	}, nil
}

// VerifyCredentials compares both fields in constant time. The two
// comparisons always run and are combined without short-circuiting, so the
// outcome reveals nothing about which field differed.
func (a *authService) VerifyCredentials(ctx context.Context, presented models.Credentials) error {
	usernameMatch := utils.ConstantTimeCompare(presented.Username, a.expected.Username)
	passwordMatch := utils.ConstantTimeCompare(presented.Password, a.expected.Password)

	if usernameMatch&passwordMatch != 1 {
		logger.FromContext(ctx).Warn().
			Str("func", "authService.VerifyCredentials").
			Msg("authentication failed")
		return ErrAuthenticationFailed
	}

	return nil
}
