package impl

import (
	"io"
	"log/slog"
	"time"

	"hrdesk/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Issuer:        "hrdesk-test",
			SessionTTL:    time.Hour,
			LookupTimeout: time.Second,
			BcryptCost:    4,
		},
		PasswordPolicy: &config.PasswordPolicyConfig{MinLength: 6},
	}
}

func ptr[T any](v T) *T {
	return &v
}

// fixedClock returns successive instants one second apart starting at start.
func fixedClock(start time.Time) func() time.Time {
	next := start

	return func() time.Time {
		now := next
		next = next.Add(time.Second)

		return now
	}
}
