// Copyright 2025 James Ross
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// HashFunc names the content-hash family used by the exact-dedup engine.
type HashFunc string

const (
	HashMD5    HashFunc = "md5"
	HashSHA256 HashFunc = "sha256"
	HashXXH3   HashFunc = "xxh3"
)

type ExactConfig struct {
	HashFunc  HashFunc `mapstructure:"hash_func" yaml:"hash_func"`
	BatchSize int      `mapstructure:"batch_size" yaml:"batch_size"`
}

type MinHashConfig struct {
	NGram          int     `mapstructure:"ngram" yaml:"ngram"`
	MinTokens      int     `mapstructure:"min_tokens" yaml:"min_tokens"`
	NumPerm        int     `mapstructure:"num_perm" yaml:"num_perm"`
	Threshold      float64 `mapstructure:"threshold" yaml:"threshold"`
	Seed           int64   `mapstructure:"seed" yaml:"seed"`
	FalsePositiveW float64 `mapstructure:"false_positive_weight" yaml:"false_positive_weight"`
	FalseNegativeW float64 `mapstructure:"false_negative_weight" yaml:"false_negative_weight"`
}

type Observability struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	MetricsPort int    `mapstructure:"metrics_port" yaml:"metrics_port"`
}

type Config struct {
	Column        string        `mapstructure:"column" yaml:"column"`
	Workers       int           `mapstructure:"workers" yaml:"workers"`
	Exact         ExactConfig   `mapstructure:"exact" yaml:"exact"`
	MinHash       MinHashConfig `mapstructure:"minhash" yaml:"minhash"`
	Observability Observability `mapstructure:"observability" yaml:"observability"`
}

func defaultConfig() *Config {
	return &Config{
		Column:  "text",
		Workers: 0, // 0 means runtime.GOMAXPROCS(0)
		Exact: ExactConfig{
			HashFunc:  HashXXH3,
			BatchSize: 10000,
		},
		MinHash: MinHashConfig{
			NGram:          5,
			MinTokens:      5,
			NumPerm:        128,
			Threshold:      0.8,
			Seed:           42,
			FalsePositiveW: 0.5,
			FalseNegativeW: 0.5,
		},
		Observability: Observability{
			LogLevel:    "info",
			MetricsPort: 9090,
		},
	}
}

// Load reads configuration from a YAML file, with env var overrides and
// sensible defaults when the file does not exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := defaultConfig()
	v.SetDefault("column", def.Column)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("exact.hash_func", string(def.Exact.HashFunc))
	v.SetDefault("exact.batch_size", def.Exact.BatchSize)
	v.SetDefault("minhash.ngram", def.MinHash.NGram)
	v.SetDefault("minhash.min_tokens", def.MinHash.MinTokens)
	v.SetDefault("minhash.num_perm", def.MinHash.NumPerm)
	v.SetDefault("minhash.threshold", def.MinHash.Threshold)
	v.SetDefault("minhash.seed", def.MinHash.Seed)
	v.SetDefault("minhash.false_positive_weight", def.MinHash.FalsePositiveW)
	v.SetDefault("minhash.false_negative_weight", def.MinHash.FalseNegativeW)
	v.SetDefault("observability.log_level", def.Observability.LogLevel)
	v.SetDefault("observability.metrics_port", def.Observability.MetricsPort)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks config constraints.
func Validate(cfg *Config) error {
	switch cfg.Exact.HashFunc {
	case HashMD5, HashSHA256, HashXXH3:
	default:
		return fmt.Errorf("exact.hash_func must be one of md5|sha256|xxh3, got %q", cfg.Exact.HashFunc)
	}
	if cfg.Exact.BatchSize < 1 {
		return fmt.Errorf("exact.batch_size must be >= 1")
	}
	if cfg.MinHash.NGram < 1 {
		return fmt.Errorf("minhash.ngram must be >= 1")
	}
	if cfg.MinHash.NumPerm < 1 {
		return fmt.Errorf("minhash.num_perm must be >= 1")
	}
	if cfg.MinHash.Threshold <= 0 || cfg.MinHash.Threshold >= 1 {
		return fmt.Errorf("minhash.threshold must be in (0,1), got %.3f", cfg.MinHash.Threshold)
	}
	if cfg.Observability.MetricsPort <= 0 || cfg.Observability.MetricsPort > 65535 {
		return fmt.Errorf("observability.metrics_port must be 1..65535")
	}
	if cfg.Column == "" {
		return fmt.Errorf("column must be non-empty")
	}
	return nil
}

// StatsInterval is the cadence at which the pipeline driver logs progress.
const StatsInterval = 2 * time.Second

// Dump renders the effective configuration as YAML, for operators running
// with --print-config to confirm what defaults and env overrides resolved
// to before a long batch starts.
func (cfg *Config) Dump() ([]byte, error) {
	return yaml.Marshal(cfg)
}
