package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"

	AssetBackendStatic   = "static"
	AssetBackendSupabase = "supabase"
	AssetBackendS3       = "s3"
)

type Config struct {
	// Database
	DatabaseURL    string
	StorageBackend string
	DBMaxOpenConns int

	// Server
	Port        string
	Environment string
	BaseURL     string
	CORSOrigin  string
	LogLevel    string

	// TrustedProxies lists the proxy addresses or CIDRs whose forwarding
	// headers are honored. Empty trusts none; the socket address is used.
	TrustedProxies []string

	// Identity
	DemoUserID    int64
	AuthJWTSecret string

	// Simulated generation
	SimulateLatency bool

	// Rate limiting
	RateLimitMax    int
	RateLimitWindow time.Duration

	// Assets
	AssetBackend       string
	AssetPublicBaseURL string

	// Supabase storage
	SupabaseURL           string
	SupabaseServiceKey    string
	SupabaseStorageBucket string

	// S3 storage
	S3 S3Config
}

type S3Config struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	UsePathStyle  bool
	Prefix        string
}

// Load reads the environment, after merging a .env file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageBackendPostgres)),
		DBMaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 10),

		Port:        getEnv("PORT", "5000"),
		Environment: getEnv("ENVIRONMENT", "production"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:5000"),
		CORSOrigin:  getEnv("CORS_ORIGIN", "*"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		TrustedProxies: getList("TRUSTED_PROXIES"),

		DemoUserID:    getInt64("DEMO_USER_ID", 1),
		AuthJWTSecret: getEnv("AUTH_JWT_SECRET", ""),

		SimulateLatency: getBool("SIMULATE_LATENCY", true),

		RateLimitMax:    getInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", 15*time.Minute),

		AssetBackend:       strings.ToLower(getEnv("ASSET_BACKEND", AssetBackendStatic)),
		AssetPublicBaseURL: getEnv("ASSET_PUBLIC_BASE_URL", "https://storage.realartist.ai"),

		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey:    getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "project-assets"),

		S3: S3Config{
			Endpoint:      getEnv("S3_ENDPOINT", ""),
			Region:        getEnv("S3_REGION", ""),
			AccessKey:     getEnv("S3_ACCESS_KEY", ""),
			SecretKey:     getEnv("S3_SECRET_KEY", ""),
			Bucket:        getEnv("S3_BUCKET", ""),
			PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
			UsePathStyle:  getBool("S3_USE_PATH_STYLE", false),
			Prefix:        getEnv("S3_PREFIX", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageBackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}
	case StorageBackendMemory:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q", StorageBackendPostgres, StorageBackendMemory)
	}

	switch c.AssetBackend {
	case AssetBackendStatic:
	case AssetBackendSupabase:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required")
		}
		if c.SupabaseServiceKey == "" {
			return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
		}
	case AssetBackendS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3_REGION is required")
		}
		if c.S3.AccessKey == "" || c.S3.SecretKey == "" {
			return fmt.Errorf("S3_ACCESS_KEY and S3_SECRET_KEY are required")
		}
	default:
		return fmt.Errorf("ASSET_BACKEND must be one of static, supabase, s3")
	}

	if c.DemoUserID <= 0 {
		return fmt.Errorf("DEMO_USER_ID must be positive")
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive")
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) == nil {
			if _, _, err := net.ParseCIDR(proxy); err != nil {
				return fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP or CIDR", proxy)
			}
		}
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getList splits a comma-separated variable, dropping blanks. Unset yields nil.
func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return i
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
