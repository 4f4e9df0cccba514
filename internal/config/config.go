// Package config reads runtime settings from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server settings.
type Config struct {
	Addr         string
	WebDir       string
	DatabaseURL  string
	SQLitePath   string
	CORSOrigins  []string
	AuthDisabled bool
	// ForwardAuth trusts the Remote-User header set by a reverse proxy.
	ForwardAuth bool
	OIDC        OIDC
}

// OIDC holds the single sign-on client settings.
type OIDC struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether enough is configured to attempt discovery.
func (o OIDC) Enabled() bool {
	return o.Issuer != "" && o.ClientID != ""
}

// Load seeds the environment from the given .env files (".env" when none
// are named) and then reads the configuration. Missing files are ignored.
// Variables already set in the environment win over file values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment.
func FromEnv() (Config, error) {
	authDisabled, err := envBool("AUTH_DISABLED")
	if err != nil {
		return Config{}, err
	}
	forwardAuth, err := envBool("FORWARD_AUTH")
	if err != nil {
		return Config{}, err
	}

	return Config{
		Addr:         env("ADDR", ":8080"),
		WebDir:       os.Getenv("WEB_DIR"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SQLitePath:   os.Getenv("SQLITE_PATH"),
		CORSOrigins:  splitList(os.Getenv("CORS_ORIGINS")),
		AuthDisabled: authDisabled,
		ForwardAuth:  forwardAuth,
		OIDC: OIDC{
			Issuer:       os.Getenv("OIDC_ISSUER"),
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
		},
	}, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envBool parses key as a boolean, treating unset as false.
func envBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
