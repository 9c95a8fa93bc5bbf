package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - empty URL: optional integrations (Redis, AMQP) are disabled
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	AMQP      AMQPConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	RateLimit RateLimitConfig
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
}

type MongoConfig struct {
	URI            string        `envconfig:"MONGO_URI" required:"true"`
	Database       string        `envconfig:"MONGO_DATABASE" default:"hotel_booking"`
	ConnectTimeout time.Duration `envconfig:"MONGO_CONNECT_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	URL     string `envconfig:"REDIS_URL"`
	Channel string `envconfig:"REDIS_SUPPORT_CHANNEL" default:"support_events"`
}

func (c RedisConfig) Enabled() bool { return c.URL != "" }

type AMQPConfig struct {
	URL   string `envconfig:"AMQP_URL"`
	Queue string `envconfig:"AMQP_SUPPORT_QUEUE" default:"support.message_appended"`
}

func (c AMQPConfig) Enabled() bool { return c.URL != "" }

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
	Secret          string `envconfig:"JWT_SECRET" required:"true"`
	AccessDuration  string `envconfig:"JWT_ACCESS_DURATION" default:"1h"`
	RefreshDuration string `envconfig:"JWT_REFRESH_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Capacity       int           `envconfig:"RATE_LIMIT_CAPACITY" default:"10"`
	RefillTokens   int           `envconfig:"RATE_LIMIT_REFILL_TOKENS" default:"1"`
	RefillInterval time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"6s"`
	TTL            time.Duration `envconfig:"RATE_LIMIT_TTL" default:"10m"`
	Prefix         string        `envconfig:"RATE_LIMIT_PREFIX" default:"rl"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is a local convenience; deployments provide real environment variables
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

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
			MaxConns: 10,
		},
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27018",
			Database:       "hotel_booking_test",
			ConnectTimeout: 5 * time.Second,
		},
		Redis: RedisConfig{Channel: "support_events"},
		AMQP:  AMQPConfig{Queue: "support.message_appended"},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:          "test-secret-key-for-jwt-signing-only",
			AccessDuration:  "1h",
			RefreshDuration: "24h",
		},
		Cookie: CookieConfig{SameSite: "Lax"},
		RateLimit: RateLimitConfig{
			Enabled:        false,
			Capacity:       10,
			RefillTokens:   1,
			RefillInterval: time.Second,
			TTL:            time.Minute,
			Prefix:         "rl",
		},
	}
}
