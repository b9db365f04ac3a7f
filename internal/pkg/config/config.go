package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
)

type Config struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	JWTSecret       string        `env:"JWT_SECRET"`
	TokenTTL        time.Duration `env:"TOKEN_TTL,        default=24h"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Storage StorageConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Search  SearchConfig
}

type StorageConfig struct {
	Driver              string `env:"STORAGE_DRIVER,        default=memory"`
	UsersFile           string `env:"USERS_FILE,            default=data/registered_users.json"`
	SeedSampleData      bool   `env:"SEED_SAMPLE_DATA,      default=true"`
	RevocationCacheSize int    `env:"REVOCATION_CACHE_SIZE, default=10000"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=campus_portal"`
}

// RedisConfig is optional; an empty Addr disables redis.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type SearchConfig struct {
	Limit     int           `env:"SEARCH_LIMIT,      default=10"`
	Debounce  time.Duration `env:"SEARCH_DEBOUNCE,   default=300ms"`
	CacheSize int           `env:"SEARCH_CACHE_SIZE, default=256"`
	CacheTTL  time.Duration `env:"SEARCH_CACHE_TTL,  default=1m"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Sprintf("config: failed to read .env: %v", err))
	}

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if err := cfg.validate(); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return &cfg
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageMongo:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.JWTSecret == "" && c.Env == "production" {
		return errors.New("JWT_SECRET is required in production")
	}
	if c.Search.Limit <= 0 {
		return fmt.Errorf("SEARCH_LIMIT must be positive, got %d", c.Search.Limit)
	}
	return nil
}
