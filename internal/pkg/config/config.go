package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Booking   BookingConfig
	Messaging MessagingConfig
	Scheduler SchedulerConfig
	Tracing   TracingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`

	// LockTimeout bounds the wait for a contended stock row. 0 waits forever.
	LockTimeout  time.Duration `envconfig:"DB_LOCK_TIMEOUT" default:"5s"`
	TxMaxRetries int           `envconfig:"DB_TX_MAX_RETRIES" default:"3"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
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
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// BookingConfig has no default for the cancellation grace: operators must
// choose the policy explicitly.
type BookingConfig struct {
	CancellationGrace time.Duration `envconfig:"BOOKING_CANCELLATION_GRACE" required:"true"`
	Storage           string        `envconfig:"BOOKING_STORAGE" default:"postgres"`
	CacheTTL          time.Duration `envconfig:"BOOKING_AVAILABILITY_CACHE_TTL" default:"5s"`
	CacheSize         int           `envconfig:"BOOKING_AVAILABILITY_CACHE_SIZE" default:"4096"`
	ListLimit         int           `envconfig:"BOOKING_LIST_LIMIT" default:"50"`
}

type MessagingConfig struct {
	AMQPURL          string        `envconfig:"AMQP_URL"`
	Exchange         string        `envconfig:"AMQP_EXCHANGE" default:"rental.notifications"`
	DispatchInterval time.Duration `envconfig:"NOTIFY_DISPATCH_INTERVAL" default:"2s"`
	BatchSize        int           `envconfig:"NOTIFY_BATCH_SIZE" default:"50"`
	MaxAttempts      int           `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"5"`
}

type SchedulerConfig struct {
	CompletionSweepInterval time.Duration `envconfig:"COMPLETION_SWEEP_INTERVAL" default:"1m"`
	CompletionBatchSize     int           `envconfig:"COMPLETION_BATCH_SIZE" default:"200"`
}

type TracingConfig struct {
	Enabled     bool    `envconfig:"OTEL_ENABLED" default:"false"`
	Endpoint    string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	ServiceName string  `envconfig:"OTEL_SERVICE_NAME" default:"rental-engine"`
	Environment string  `envconfig:"ENV" default:"dev"`
	SampleRatio float64 `envconfig:"OTEL_SAMPLE_RATIO" default:"1"`
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c BookingConfig) Validate() error {
	if c.CancellationGrace < 0 {
		return fmt.Errorf("BOOKING_CANCELLATION_GRACE must not be negative, got %s", c.CancellationGrace)
	}
	switch c.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("BOOKING_STORAGE must be %q or %q, got %q", StoragePostgres, StorageMemory, c.Storage)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Booking.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDBConfig reads only the DB_* variables, for tools that never serve
// traffic.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
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

			LockTimeout:  5 * time.Second,
			TxMaxRetries: 3,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Booking: BookingConfig{
			CancellationGrace: 24 * time.Hour,
			Storage:           StoragePostgres,
			CacheTTL:          time.Second,
			CacheSize:         128,
			ListLimit:         50,
		},
		Messaging: MessagingConfig{
			Exchange:         "rental.notifications",
			DispatchInterval: time.Hour,
			BatchSize:        50,
			MaxAttempts:      5,
		},
		Scheduler: SchedulerConfig{
			CompletionSweepInterval: time.Hour,
			CompletionBatchSize:     200,
		},
	}
}
