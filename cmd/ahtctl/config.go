package main

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is ahtctl's process configuration, loadable from a YAML file or
// overridden by environment variables prefixed AHTCTL_.
type Config struct {
	// Hash selects the hash function new tables use: "xxhash" or "fnv1a".
	Hash string `mapstructure:"hash" yaml:"hash"`

	// InitialBuckets is N for a freshly created table.
	InitialBuckets int `mapstructure:"initial_buckets" yaml:"initial_buckets"`

	// BloomFalsePositiveRate is a target false-positive rate for the probe
	// package's bloom filter. It is loaded and written out by config-init,
	// but no ahtctl command reads it.
	BloomFalsePositiveRate float64 `mapstructure:"bloom_false_positive_rate" yaml:"bloom_false_positive_rate"`
}

func defaultConfig() Config {
	return Config{
		Hash:                   "xxhash",
		InitialBuckets:         8,
		BloomFalsePositiveRate: 0.01,
	}
}

// loadConfig reads path (if non-empty) over the defaults, then lets
// AHTCTL_-prefixed environment variables override individual fields.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("ahtctl")
	v.AutomaticEnv()

	v.SetDefault("hash", cfg.Hash)
	v.SetDefault("initial_buckets", cfg.InitialBuckets)
	v.SetDefault("bloom_false_positive_rate", cfg.BloomFalsePositiveRate)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// marshalDefaultConfig renders the default configuration as YAML, for the
// `config-init` command to write out as a starting point.
func marshalDefaultConfig() ([]byte, error) {
	return yaml.Marshal(defaultConfig())
}
