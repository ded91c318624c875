package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Store   StoreConfig
	Lock    LockConfig
	Redis   RedisConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"parkme"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"parkme"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// StoreConfig selects the booking registry backend: "postgres" or "memory".
type StoreConfig struct {
	Driver   string `envconfig:"STORE_DRIVER" default:"postgres"`
	SeedFile string `envconfig:"STORE_SEED_FILE"`
}

// LockConfig drives the per-spot lock. The postgres store always locks the
// spot row; Driver only applies to the memory store ("local" or "redis").
type LockConfig struct {
	Driver        string        `envconfig:"LOCK_DRIVER" default:"local"`
	WaitTimeout   time.Duration `envconfig:"LOCK_WAIT_TIMEOUT" default:"3s"`
	LeaseTTL      time.Duration `envconfig:"LOCK_LEASE_TTL" default:"30s"`
	RetryInterval time.Duration `envconfig:"LOCK_RETRY_INTERVAL" default:"25ms"`
	KeyPrefix     string        `envconfig:"LOCK_KEY_PREFIX" default:"parkme:spot-lock:"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type BookingConfig struct {
	TicketPrefix      string        `envconfig:"BOOKING_TICKET_PREFIX" default:"PKM"`
	MaxTicketAttempts int           `envconfig:"BOOKING_MAX_TICKET_ATTEMPTS" default:"5"`
	NoShowGrace       time.Duration `envconfig:"BOOKING_NO_SHOW_GRACE" default:"0s"`
	SweepInterval     time.Duration `envconfig:"BOOKING_NO_SHOW_SWEEP_INTERVAL" default:"1m"`
	SweepBatchSize    int           `envconfig:"BOOKING_NO_SHOW_SWEEP_BATCH" default:"100"`
	SweepEnabled      bool          `envconfig:"BOOKING_NO_SHOW_SWEEP_ENABLED" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Store: StoreConfig{
			Driver: "postgres",
		},
		Lock: LockConfig{
			Driver:        "local",
			WaitTimeout:   2 * time.Second,
			LeaseTTL:      10 * time.Second,
			RetryInterval: 10 * time.Millisecond,
			KeyPrefix:     "parkme-test:spot-lock:",
		},
		Booking: BookingConfig{
			TicketPrefix:      "PKM",
			MaxTicketAttempts: 5,
			SweepInterval:     time.Minute,
			SweepBatchSize:    100,
			SweepEnabled:      false,
		},
	}
}
