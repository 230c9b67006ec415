package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	KV      KVConfig
	CORS    CORSConfig
	Log     LogConfig
	Cookie  CookieConfig
	Guard   GuardConfig
	Hotel   HotelConfig
	Image   ImageConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type BackendConfig struct {
	BaseURL      string        `envconfig:"BACKEND_BASE_URL" default:"http://localhost:8080/api/v1"`
	Timeout      time.Duration `envconfig:"BACKEND_TIMEOUT" default:"15s"`
	RPS          float64       `envconfig:"BACKEND_RPS" default:"50"`
	Burst        int           `envconfig:"BACKEND_BURST" default:"20"`
	Fanout       int           `envconfig:"BACKEND_FANOUT" default:"8"`
	MaxBodyBytes int64         `envconfig:"BACKEND_MAX_BODY_BYTES" default:"33554432"`
}

const (
	KVDriverMemory   = "memory"
	KVDriverRedis    = "redis"
	KVDriverPostgres = "postgres"
)

type KVConfig struct {
	Driver        string `envconfig:"KV_DRIVER" default:"memory"`
	Namespace     string `envconfig:"KV_NAMESPACE" default:"hotel-portal"`
	RedisAddr     string `envconfig:"KV_REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"KV_REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"KV_REDIS_DB" default:"0"`
	PostgresDSN   string `envconfig:"KV_POSTGRES_DSN"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:4200,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	// MaxAge caps the credential cookie lifetime; the token's own expiry
	// wins when it is earlier.
	MaxAge time.Duration `envconfig:"COOKIE_MAX_AGE" default:"24h"`
}

const (
	ModuleFlagsEnforce = "enforce"
	ModuleFlagsLegacy  = "legacy"
)

type GuardConfig struct {
	// ModuleFlags is "enforce" (disabled modules deny navigation) or "legacy"
	// (module flags never deny).
	ModuleFlags string        `envconfig:"GUARD_MODULE_FLAGS" default:"enforce"`
	FlagTTL     time.Duration `envconfig:"GUARD_MODULE_FLAG_TTL" default:"30s"`
}

type HotelConfig struct {
	TimeZone string `envconfig:"HOTEL_TIMEZONE" default:"UTC"`
}

type ImageConfig struct {
	// ThumbnailWidth of 0 keeps list images at full size.
	ThumbnailWidth int `envconfig:"IMAGE_THUMBNAIL_WIDTH" default:"300"`
}

func (h HotelConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(h.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid HOTEL_TIMEZONE %q: %w", h.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	switch cfg.KV.Driver {
	case KVDriverMemory, KVDriverRedis, KVDriverPostgres:
	default:
		return Config{}, fmt.Errorf("unsupported KV_DRIVER %q", cfg.KV.Driver)
	}
	switch cfg.Guard.ModuleFlags {
	case ModuleFlagsEnforce, ModuleFlagsLegacy:
	default:
		return Config{}, fmt.Errorf("unsupported GUARD_MODULE_FLAGS %q", cfg.Guard.ModuleFlags)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Backend: BackendConfig{
			BaseURL:      "http://localhost:18080/api/v1",
			Timeout:      2 * time.Second,
			RPS:          1000,
			Burst:        1000,
			Fanout:       4,
			MaxBodyBytes: 1 << 20,
		},
		KV: KVConfig{
			Driver:    KVDriverMemory,
			Namespace: "test",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
			MaxAge:   24 * time.Hour,
		},
		Guard: GuardConfig{
			ModuleFlags: ModuleFlagsEnforce,
			FlagTTL:     30 * time.Second,
		},
		Hotel: HotelConfig{
			TimeZone: "UTC",
		},
	}
}
