// bizpulse/config/jwt.go
package config

import (
	"log/slog"
	"os"
)

var JwtKey []byte

// LoadJwtKey reads the signing key from the environment. The fallback is
// only meant for local development; production must set JWT_SECRET.
func LoadJwtKey() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Warn("JWT_SECRET is not set, using insecure development key")
		secret = "bizpulse-dev-secret"
	}
	JwtKey = []byte(secret)
}
