package config

import (
	"fmt"
	"os"
	"strconv"
)

// AuthConfig holds configuration for bearer-token authentication on the HTTP
// API. Authentication is optional: when AUTH_SECRET is unset the API runs
// open and NewAuthConfig returns (nil, nil).
type AuthConfig struct {
	Secret          string
	ExpirationHours int
}

// NewAuthConfig creates the auth configuration from environment variables.
// It reads AUTH_SECRET (optional) and AUTH_EXPIRATION_HOURS (default: 24).
func NewAuthConfig() (*AuthConfig, error) {
	secret := os.Getenv("AUTH_SECRET")
	if secret == "" {
		return nil, nil
	}

	expirationStr := os.Getenv("AUTH_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24"
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_EXPIRATION_HOURS: %v", err)
	}
	if expirationHours < 1 {
		return nil, fmt.Errorf("AUTH_EXPIRATION_HOURS must be at least 1 hour, got: %d", expirationHours)
	}

	return &AuthConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
	}, nil
}
