package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all environment-driven settings for the API server.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	// DATABASE_URL selects the driver: "postgres://..." uses postgres,
	// a "user:pass@tcp(...)" DSN uses mysql, anything else is treated as
	// a SQLite file path.
	DatabaseURL string `env:"DATABASE_URL" envDefault:"spotlight_dev.db"`

	JWTSecret       string        `env:"JWT_SECRET" envDefault:"jwt-secret-key-change-in-production"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"720h"`

	SpotifyClientID     string `env:"SPOTIFY_CLIENT_ID"`
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET"`
	SpotifyRedirectURI  string `env:"SPOTIFY_REDIRECT_URI" envDefault:"http://127.0.0.1:5173/auth/spotify/callback"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://127.0.0.1:5173,http://localhost:5173,http://localhost:3000"`

	UploadDir      string `env:"UPLOAD_DIR" envDefault:"uploads/avatars"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
