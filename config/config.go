package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const ENV_PROD = "prod"
const ENV_DEV = "dev"

// Server config
const DEFAULT_LISTEN_ADDR = ":8080"

// Eating helper API config
const DEFAULT_API_BASE_URL = "http://localhost:8000"
const DEFAULT_API_TIMEOUT = 10 * time.Second

// Redis Config
const DEFAULT_REDIS_ADDR = "redis:6379"
const DEFAULT_REDIS_DB = 0

// Cache / refresher config
const DEFAULT_CACHE_TTL = 30 * time.Minute
const DEFAULT_REFRESH_INTERVAL = 15 * time.Minute

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const WEEKLY_NUTRITION_RESOURCE = "weekly_nutrition.json"
const RECIPES_RESOURCE = "recipes.json"

// Environment variables
const (
	CONFIG_PATH_ENV      = "EATING_HELPER_CONFIG"
	ENVIRONMENT_ENV      = "EATING_HELPER_ENV"
	LISTEN_ADDR_ENV      = "EATING_HELPER_LISTEN_ADDR"
	API_BASE_URL_ENV     = "EATING_HELPER_API_BASE_URL"
	CACHE_TTL_ENV        = "EATING_HELPER_CACHE_TTL"
	REFRESH_INTERVAL_ENV = "EATING_HELPER_REFRESH_INTERVAL"
	REDIS_ADDR_ENV       = "REDIS_ADDR"
	REDIS_PASSWORD_ENV   = "REDIS_PASSWORD"
	REDIS_DB_ENV         = "REDIS_DB"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string `yaml:"environment"`
	ListenAddr  string `yaml:"listen_addr"`

	APIBaseURL string        `yaml:"api_base_url"`
	APITimeout time.Duration `yaml:"api_timeout"`

	// Empty RedisAddr disables caching.
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	CacheTTL        time.Duration `yaml:"cache_ttl"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`

	// Fixtures served by the mock API outside prod.
	WeeklyNutritionFixture string `yaml:"weekly_nutrition_fixture"`
	RecipesFixture         string `yaml:"recipes_fixture"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Environment:            ENV_DEV,
		ListenAddr:             DEFAULT_LISTEN_ADDR,
		APIBaseURL:             DEFAULT_API_BASE_URL,
		APITimeout:             DEFAULT_API_TIMEOUT,
		RedisAddr:              DEFAULT_REDIS_ADDR,
		RedisDB:                DEFAULT_REDIS_DB,
		CacheTTL:               DEFAULT_CACHE_TTL,
		RefreshInterval:        DEFAULT_REFRESH_INTERVAL,
		WeeklyNutritionFixture: GetResourcePath(WEEKLY_NUTRITION_RESOURCE),
		RecipesFixture:         GetResourcePath(RECIPES_RESOURCE),
	}
}

// LoadConfig applies, in order, defaults, the YAML file at path (if any, else
// $EATING_HELPER_CONFIG) and environment variables, then validates.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(CONFIG_PATH_ENV)
	}
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	setString := func(env string, dst *string) {
		if v, ok := os.LookupEnv(env); ok {
			*dst = v
		}
	}
	setDuration := func(env string, dst *time.Duration) error {
		v, ok := os.LookupEnv(env)
		if !ok {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
		*dst = d
		return nil
	}

	setString(ENVIRONMENT_ENV, &cfg.Environment)
	setString(LISTEN_ADDR_ENV, &cfg.ListenAddr)
	setString(API_BASE_URL_ENV, &cfg.APIBaseURL)
	setString(REDIS_ADDR_ENV, &cfg.RedisAddr)
	setString(REDIS_PASSWORD_ENV, &cfg.RedisPassword)

	if v, ok := os.LookupEnv(REDIS_DB_ENV); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", REDIS_DB_ENV, err)
		}
		cfg.RedisDB = n
	}
	if err := setDuration(CACHE_TTL_ENV, &cfg.CacheTTL); err != nil {
		return err
	}
	return setDuration(REFRESH_INTERVAL_ENV, &cfg.RefreshInterval)
}

// Validate reports the first problem found in cfg.
func (cfg *Config) Validate() error {
	if cfg.ListenAddr == "" {
		return errors.New("listen address is required")
	}
	if cfg.APITimeout <= 0 {
		return errors.New("api timeout must be positive")
	}
	if cfg.CacheTTL < 0 {
		return errors.New("cache ttl must not be negative")
	}
	if cfg.RefreshInterval < 0 {
		return errors.New("refresh interval must not be negative")
	}
	if cfg.IsProd() {
		if cfg.APIBaseURL == "" {
			return errors.New("api base url is required in prod")
		}
	} else if cfg.WeeklyNutritionFixture == "" || cfg.RecipesFixture == "" {
		return fmt.Errorf("fixtures are required in environment %q", cfg.Environment)
	}
	return nil
}

// IsProd reports whether the real upstream API should be used.
func (cfg *Config) IsProd() bool {
	return cfg.Environment == ENV_PROD
}

// CacheEnabled reports whether a Redis address is configured.
func (cfg *Config) CacheEnabled() bool {
	return cfg.RedisAddr != ""
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
