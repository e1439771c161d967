package configs

import (
	"errors"
	"time"
)

// devSecret is the command-line client's built-in storage key. The server
// must never seal cookies with it.
const devSecret = "adpanel-dev-secret"

// Session configures the sealed session cookie. Secret is server-only key
// material with no default.
type Session struct {
	Secret       string        `env:"SECRET"`
	CookieName   string        `env:"COOKIE_NAME" envDefault:"adpanel_session"`
	TTL          time.Duration `env:"TTL" envDefault:"24h"`
	SecureCookie bool          `env:"SECURE_COOKIE" envDefault:"false"`
}

// Validate refuses an unset secret or the client's built-in one.
func (c Session) Validate() error {
	switch c.Secret {
	case "":
		return errors.New("SESSION_SECRET is not set")
	case devSecret:
		return errors.New("SESSION_SECRET must not be the built-in client key")
	}
	return nil
}
