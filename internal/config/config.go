// Package config loads tunables that are not part of the on-disk format —
// the file-copy chunk size, default verbosity — the way
// internal/disk.LoadDMGConfig in the teacher repo loads DMG handling
// tunables with Viper: optional config file, environment override,
// defaults that apply when neither is present.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds tunables for the CLI front ends. None of these fields
// affect on-disk decoding — §3/§4 are fixed by the image format, not
// configurable.
type Config struct {
	// CopyChunkSize bounds the file materializer's internal copy buffer
	// (§9 "Buffers"). The reference implementation uses 4096.
	CopyChunkSize int `mapstructure:"copy_chunk_size"`

	// DefaultVerbose sets the initial verbosity when -v is not passed.
	DefaultVerbose bool `mapstructure:"default_verbose"`
}

// Load reads an optional "mfs-config" file (yaml) from the current
// directory, "./config", or $HOME/.mfs, falling back to defaults when no
// file is present. Environment variables prefixed MFS_ override file
// values, matching the teacher's APFS_ prefix convention.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("mfs-config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.mfs")

	v.SetDefault("copy_chunk_size", 4096)
	v.SetDefault("default_verbose", false)

	v.SetEnvPrefix("MFS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file: defaults and environment still apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}
