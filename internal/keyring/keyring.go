// Package keyring stores recipe-provider API keys in the OS keyring. Keys
// live in their own namespace, separate from journal storage: clearing the
// journal never touches credentials.
package keyring

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"mealtrack/internal/constants"
	"mealtrack/internal/models"
)

var (
	// ErrNotFound is returned when no API key is stored for a provider
	ErrNotFound = errors.New("API key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

func account(source models.Source) string {
	return "apikey-" + string(source)
}

// envVar is the environment fallback for a provider's key, e.g.
// SPOONACULAR_API_KEY. It lets users supply keys via the environment or a
// .env file instead of the keyring.
func envVar(source models.Source) string {
	return strings.ToUpper(string(source)) + "_API_KEY"
}

// GetAPIKey retrieves the API key for a provider, preferring the OS keyring
// and falling back to the provider's environment variable. Returns
// ErrNotFound if neither is set.
func GetAPIKey(source models.Source) (string, error) {
	key, err := keyring.Get(constants.AppName, account(source))
	if err == nil && key != "" {
		return key, nil
	}
	if env := os.Getenv(envVar(source)); env != "" {
		return env, nil
	}
	if err == nil || err == keyring.ErrNotFound {
		return "", ErrNotFound
	}
	return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
}

// SetAPIKey stores the API key for a provider in the OS keyring.
func SetAPIKey(source models.Source, key string) error {
	if key == "" {
		return errors.New("API key cannot be empty")
	}
	if err := keyring.Set(constants.AppName, account(source), key); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}
	return nil
}

// DeleteAPIKey removes a provider's API key from the OS keyring.
func DeleteAPIKey(source models.Source) error {
	err := keyring.Delete(constants.AppName, account(source))
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete API key from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
