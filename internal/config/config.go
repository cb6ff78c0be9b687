// Package config loads the server configuration.
//
// Values are resolved in this order, later sources overriding earlier ones:
// built-in defaults, an optional YAML file, and RECHENMODUL_* environment
// variables. Environment files (.env) are loaded into the process
// environment first without overriding variables that are already set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/rechenmodul/format"
	"github.com/arloliu/rechenmodul/store"
)

// EnvPrefix prefixes every environment variable, e.g. RECHENMODUL_LISTEN.
const EnvPrefix = "RECHENMODUL"

// Config holds the server settings.
type Config struct {
	Listen            string `yaml:"listen" envconfig:"LISTEN"`
	LogLevel          string `yaml:"logLevel" envconfig:"LOG_LEVEL"`
	LogFormat         string `yaml:"logFormat" envconfig:"LOG_FORMAT"` // json or console
	MaxSampleSize     int    `yaml:"maxSampleSize" envconfig:"MAX_SAMPLE_SIZE"`
	MaxDistinctValues int    `yaml:"maxDistinctValues" envconfig:"MAX_DISTINCT_VALUES"`
	MaxBodyBytes      int64  `yaml:"maxBodyBytes" envconfig:"MAX_BODY_BYTES"`
	TokenCompression  string `yaml:"tokenCompression" envconfig:"TOKEN_COMPRESSION"`
	TokenEncoding     string `yaml:"tokenEncoding" envconfig:"TOKEN_ENCODING"` // raw or gorilla
	ReadTimeout       int    `yaml:"readTimeout" envconfig:"READ_TIMEOUT"`   // seconds
	WriteTimeout      int    `yaml:"writeTimeout" envconfig:"WRITE_TIMEOUT"` // seconds
	RateLimit         int    `yaml:"rateLimit" envconfig:"RATE_LIMIT"`       // requests per minute and client
	RateBurst         int    `yaml:"rateBurst" envconfig:"RATE_BURST"`
	Workers           int    `yaml:"workers" envconfig:"WORKERS"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Listen:            ":8080",
		LogLevel:          "info",
		LogFormat:         "json",
		MaxSampleSize:     store.DefaultMaxSampleSize,
		MaxDistinctValues: store.DefaultMaxDistinctValues,
		MaxBodyBytes:      1 << 20,
		TokenCompression:  "zstd",
		TokenEncoding:     "gorilla",
		ReadTimeout:       10,
		WriteTimeout:      10,
		RateLimit:         600,
		RateBurst:         100,
		Workers:           2,
	}
}

// Sources names the optional inputs of Load.
type Sources struct {
	// ConfigFile is a YAML file; empty means none.
	ConfigFile string
	// EnvFiles are dotenv files. Missing files are ignored.
	EnvFiles []string
}

// Load resolves the configuration from src and validates it.
func Load(src Sources) (*Config, error) {
	for _, file := range src.EnvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}

	cfg := Default()
	if src.ConfigFile != "" {
		if err := readFile(cfg, src.ConfigFile); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", src.ConfigFile, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func readFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer func() {
		_ = f.Close()
	}()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)

	return decoder.Decode(cfg)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return errors.New("listen address must not be empty")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid log format %q: want json or console", c.LogFormat)
	}
	if c.MaxSampleSize <= 0 || c.MaxDistinctValues <= 0 {
		return fmt.Errorf("sample limits must be positive, got size %d and distinct values %d",
			c.MaxSampleSize, c.MaxDistinctValues)
	}
	if c.MaxSampleSize > 0xFFFF {
		return fmt.Errorf("max sample size %d exceeds 65535", c.MaxSampleSize)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive, got %d", c.MaxBodyBytes)
	}
	if _, err := format.ParseCompressionType(c.TokenCompression); err != nil {
		return fmt.Errorf("invalid token compression: %w", err)
	}
	if _, err := format.ParseEncodingType(c.TokenEncoding); err != nil {
		return fmt.Errorf("invalid token encoding: %w", err)
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		return errors.New("timeouts must not be negative")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d", c.RateLimit)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}

	return nil
}

// Limits returns the store limits.
func (c *Config) Limits() store.Limits {
	return store.Limits{MaxSampleSize: c.MaxSampleSize, MaxDistinctValues: c.MaxDistinctValues}
}

// Compression returns the token compression. Call Validate first.
func (c *Config) Compression() format.CompressionType {
	compression, _ := format.ParseCompressionType(c.TokenCompression)
	return compression
}

// Encoding returns the token payload encoding. Call Validate first.
func (c *Config) Encoding() format.EncodingType {
	encoding, _ := format.ParseEncodingType(c.TokenEncoding)
	return encoding
}

// ReadTimeoutDuration returns ReadTimeout as a duration.
func (c *Config) ReadTimeoutDuration() time.Duration {
	return time.Duration(c.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns WriteTimeout as a duration.
func (c *Config) WriteTimeoutDuration() time.Duration {
	return time.Duration(c.WriteTimeout) * time.Second
}

// NewLogger builds a zap logger for the configured level and format.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	if c.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
