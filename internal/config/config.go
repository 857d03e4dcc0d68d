package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Worker   WorkerConfig
	Logging  LoggingConfig
	EventBus EventBusConfig
	Storage  StorageConfig
	Upload   UploadConfig
	Matching MatchingConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

// WorkerConfig bounds how payment confirmations are fanned out and retried.
type WorkerConfig struct {
	PoolSize       int
	MaxRetries     int
	RetryBaseDelay time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

type EventBusConfig struct {
	ChannelBufferSize int
	ConsumerWorkers   int
}

const (
	StorageDriverMemory = "memory"
	StorageDriverSQLite = "sqlite"
)

type StorageConfig struct {
	Driver     string
	SQLitePath string
	SeedFile   string
}

type UploadConfig struct {
	MaxStatementBytes int64
	MaxSlipBytes      int64
	// BodyLimit is the echo body limit applied to every request, e.g. "12M".
	BodyLimit string
}

type MatchingConfig struct {
	BankTolerance  decimal.Decimal
	ProofTolerance decimal.Decimal
}

type SecurityConfig struct {
	// TrustedAccount seeds the settings at startup when none is stored yet.
	TrustedAccount        string
	RequireTrustedAccount bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Worker: WorkerConfig{
			PoolSize:       getIntEnv("WORKER_POOL_SIZE", 4),
			MaxRetries:     getIntEnv("MAX_RETRIES", 3),
			RetryBaseDelay: getDurationEnv("RETRY_BASE_DELAY", 200*time.Millisecond),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		EventBus: EventBusConfig{
			ChannelBufferSize: getIntEnv("EVENT_CHANNEL_BUFFER_SIZE", 1000),
			ConsumerWorkers:   getIntEnv("EVENT_CONSUMER_WORKERS", 2),
		},
		Storage: StorageConfig{
			Driver:     strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverMemory)),
			SQLitePath: getEnv("STORAGE_SQLITE_PATH", "data/rent-recon.db"),
			SeedFile:   getEnv("STORAGE_SEED_FILE", ""),
		},
		Upload: UploadConfig{
			MaxStatementBytes: getInt64Env("UPLOAD_MAX_STATEMENT_BYTES", 5<<20),
			MaxSlipBytes:      getInt64Env("UPLOAD_MAX_SLIP_BYTES", 1<<20),
			BodyLimit:         getEnv("UPLOAD_BODY_LIMIT", "12M"),
		},
		Matching: MatchingConfig{
			BankTolerance:  getDecimalEnv("MATCH_BANK_TOLERANCE", decimal.NewFromInt(1)),
			ProofTolerance: getDecimalEnv("MATCH_PROOF_TOLERANCE", decimal.NewFromInt(100)),
		},
		Security: SecurityConfig{
			TrustedAccount:        getEnv("TRUSTED_RECIPIENT_ACCOUNT", ""),
			RequireTrustedAccount: getBoolEnv("REQUIRE_TRUSTED_ACCOUNT", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getInt64Env(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil || value <= 0 {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := decimal.NewFromString(valueStr)
	if err != nil || !value.IsPositive() {
		log.Printf("Invalid decimal for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
