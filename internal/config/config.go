package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"inkwell/internal/crypto"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	JWTSecret   string `env:"JWT_SECRET"`
	Port        string `env:"PORT" envDefault:"8080"`
	// KDFIterations is the PBKDF2 work factor for passwords and PINs.
	KDFIterations int `env:"KDF_ITERATIONS" envDefault:"10000"`
}

// New loads .env if present, then the environment, then flag overrides.
func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	flag.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Postgres connection string")
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "secret for signing JWTs")
	flag.StringVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	flag.IntVar(&cfg.KDFIterations, "kdf-iterations", cfg.KDFIterations, "PBKDF2 iteration count")
	flag.Parse()

	if cfg.KDFIterations < crypto.DefaultIterations {
		cfg.KDFIterations = crypto.DefaultIterations
	}
	return cfg
}
