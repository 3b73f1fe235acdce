package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"

	OTPStoreMemory = "memory"
	OTPStoreRedis  = "redis"
)

type (
	HTTPServer struct {
		Port               string
		RequestTimeout     time.Duration // middleware timeout
		RateLimiterQPS     int           // token bucket refill per second
		RateLimiterBurst   int           // token bucket capacity
		PprofEnabled       bool
		PprofPort          string
		CORSAllowedOrigins []string
	}

	Storage struct {
		Driver  string
		DataDir string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Auth struct {
		JWTSecret        string
		JWTTTL           time.Duration
		AdminPassword    string
		SeedDemoAccounts bool
	}

	Freight struct {
		RatePerTonKm decimal.Decimal
	}

	Verification struct {
		Store           string
		TTL             time.Duration
		ExposeCode      bool
		CleanupInterval time.Duration
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Kafka struct {
		Brokers []string
		Topic   string
		Sarama  Sarama
	}

	Sarama struct {
		Version string
	}

	Config struct {
		Server       HTTPServer
		Storage      Storage
		Database     Database
		Auth         Auth
		Freight      Freight
		Verification Verification
		Redis        Redis
		Kafka        Kafka
	}
)

// Enabled reports whether waybill events should go to a broker.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	jwtTTL, err := osGetEnvDuration("JWT_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	seedDemo, err := osGetBool("SEED_DEMO_ACCOUNTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rate, err := osGetDecimal("FREIGHT_RATE_PER_TON_KM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	otpTTL, err := osGetEnvDuration("OTP_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	otpExpose, err := osGetBool("OTP_EXPOSE_CODE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cleanupInterval, err := osGetEnvDuration("BACKGROUND_VERIFICATION_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Server: HTTPServer{
			Port:               os.Getenv("PORT"),
			RequestTimeout:     requestTimeout,
			RateLimiterQPS:     rateLimiterQPS,
			RateLimiterBurst:   rateLimiterBurst,
			PprofEnabled:       pprofEnabled,
			PprofPort:          os.Getenv("PPROF_PORT"),
			CORSAllowedOrigins: osGetList("CORS_ALLOWED_ORIGINS"),
		},
		Storage: Storage{
			Driver:  osGetDefault("STORAGE_DRIVER", StorageDriverFile),
			DataDir: os.Getenv("STORAGE_DATA_DIR"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Auth: Auth{
			JWTSecret:        os.Getenv("JWT_SECRET"),
			JWTTTL:           jwtTTL,
			AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
			SeedDemoAccounts: seedDemo,
		},
		Freight: Freight{
			RatePerTonKm: rate,
		},
		Verification: Verification{
			Store:           osGetDefault("OTP_STORE", OTPStoreMemory),
			TTL:             otpTTL,
			ExposeCode:      otpExpose,
			CleanupInterval: cleanupInterval,
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Kafka: Kafka{
			Brokers: osGetList("KAFKA_BROKERS"),
			Topic:   os.Getenv("KAFKA_TOPIC_WAYBILL_EVENTS"),
			Sarama: Sarama{
				Version: os.Getenv("KAFKA_SARAMA_VERSION"),
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	switch cfg.Storage.Driver {
	case StorageDriverFile:
		if cfg.Storage.DataDir == "" {
			return errors.New("STORAGE_DATA_DIR is required for the file storage driver")
		}
	case StorageDriverPostgres:
		if err := validateDatabase(cfg.Database); err != nil {
			return err
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageDriverFile, StorageDriverPostgres, cfg.Storage.Driver)
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if cfg.Auth.JWTTTL == time.Duration(0) {
		return errors.New("JWT_TTL is required")
	}
	if cfg.Auth.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD is required")
	}

	if !cfg.Freight.RatePerTonKm.IsPositive() {
		return errors.New("FREIGHT_RATE_PER_TON_KM is required and must be positive")
	}

	if cfg.Verification.TTL == time.Duration(0) {
		return errors.New("OTP_TTL is required")
	}
	switch cfg.Verification.Store {
	case OTPStoreMemory:
		if cfg.Verification.CleanupInterval == time.Duration(0) {
			return errors.New("BACKGROUND_VERIFICATION_CLEANUP_INTERVAL is required for the memory OTP store")
		}
	case OTPStoreRedis:
		if cfg.Redis.Addr == "" {
			return errors.New("REDIS_ADDR is required for the redis OTP store")
		}
	default:
		return fmt.Errorf("OTP_STORE must be %q or %q, got %q", OTPStoreMemory, OTPStoreRedis, cfg.Verification.Store)
	}

	if cfg.Kafka.Enabled() {
		if cfg.Kafka.Topic == "" {
			return errors.New("KAFKA_TOPIC_WAYBILL_EVENTS is required when KAFKA_BROKERS is set")
		}
		if cfg.Kafka.Sarama.Version == "" {
			return errors.New("KAFKA_SARAMA_VERSION is required when KAFKA_BROKERS is set")
		}
	}

	return nil
}

func validateDatabase(db Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func osGetDefault(s, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(s)); val != "" {
		return val
	}
	return fallback
}

func osGetList(s string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(s), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetDecimal(s string) (decimal.Decimal, error) {
	val := os.Getenv(s)
	if val == "" {
		return decimal.Zero, nil
	}

	res, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
