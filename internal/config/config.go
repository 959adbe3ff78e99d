package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	GRPC     GRPC     `envPrefix:"GRPC_"`
	Database Database `envPrefix:"DATABASE_"`
	JWT      JWT      `envPrefix:"JWT_"`
	Bcrypt   Bcrypt   `envPrefix:"BCRYPT_"`
	CORS     CORS     `envPrefix:"CORS_"`
}

// HTTP contains REST server parameters.
type HTTP struct {
	Port               string        `env:"PORT" envDefault:"3000"`
	EnableHTTPS        bool          `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string        `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string        `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	ReadHeaderTimeout  time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
}

// GRPC contains health-check listener parameters.
type GRPC struct {
	Enabled        bool          `env:"ENABLED" envDefault:"true"`
	Port           string        `env:"PORT" envDefault:"50051"`
	HealthInterval time.Duration `env:"HEALTH_INTERVAL" envDefault:"10s"`
}

// Database contains connection and pool parameters.
type Database struct {
	Host            string        `env:"HOST" envDefault:"localhost"`
	Port            int           `env:"PORT" envDefault:"5432"`
	User            string        `env:"USER" envDefault:"recipebox"`
	Password        string        `env:"PASSWORD" envDefault:"recipebox"`
	Name            string        `env:"NAME" envDefault:"recipebox"`
	SSLMode         string        `env:"SSL_MODE" envDefault:"disable"`
	MaxConns        int           `env:"MAX_CONNS" envDefault:"10"`
	AcquireTimeout  time.Duration `env:"ACQUIRE_TIMEOUT" envDefault:"5s"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
	TimeZone        string        `env:"TIME_ZONE" envDefault:"-08:00"`
	Isolation       string        `env:"ISOLATION" envDefault:"serializable"`
}

// DSN renders the connection URL for the pgx driver.
func (d Database) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + strconv.Itoa(d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

// JWT contains token signing parameters.
type JWT struct {
	Secret string        `env:"SECRET,required,notEmpty"`
	TTL    time.Duration `env:"TTL" envDefault:"24h"`
}

// Bcrypt contains password hashing parameters.
// A zero Concurrency means GOMAXPROCS.
type Bcrypt struct {
	Cost        int `env:"COST" envDefault:"10"`
	Concurrency int `env:"CONCURRENCY" envDefault:"0"`
}

// CORS contains cross-origin parameters.
type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// NewConfig loads configuration from a .env file, if present, and
// environment variables. Variables already set in the environment win.
func NewConfig() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.GRPC.Enabled && c.GRPC.HealthInterval <= 0 {
		return fmt.Errorf("GRPC_HEALTH_INTERVAL must be positive, got %s", c.GRPC.HealthInterval)
	}
	return nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
