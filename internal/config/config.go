// SPDX-License-Identifier: EPL-2.0

// Package config holds the settings shared by the audpack commands. Values
// start from Default, may be overridden by a YAML file and finally by
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/ik5/audpack"
	"github.com/ik5/audpack/codec/quant"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Codec    string `yaml:"codec"`
	Stage    string `yaml:"stage"`
	Level    int    `yaml:"level,omitempty"`
	Width    int    `yaml:"width,omitempty"`
	KeepTail bool   `yaml:"keep_tail,omitempty"`

	// Rate and Mono convert input before compress; 0 and false keep it as is.
	Rate int  `yaml:"rate,omitempty"`
	Mono bool `yaml:"mono,omitempty"`

	// Workers bounds how many files the batch command processes at once.
	Workers  int    `yaml:"workers,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

func Default() Config {
	opts := audpack.DefaultOptions()

	return Config{
		Codec:    opts.Codec.String(),
		Stage:    opts.Stage.String(),
		Width:    quant.DefaultWidth,
		Workers:  runtime.NumCPU(),
		LogLevel: "error",
	}
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: invalid YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}

	return Parse(data)
}

func (c Config) Validate() error {
	if _, err := c.Options(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Rate < 0 {
		return fmt.Errorf("%w: rate must not be negative, got %d", ErrInvalidConfig, c.Rate)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := c.SlogLevel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Options converts the codec settings into audpack.Options.
func (c Config) Options() (audpack.Options, error) {
	codec, err := audpack.ParseCodec(c.Codec)
	if err != nil {
		return audpack.Options{}, err
	}
	kind, err := audpack.ParseStage(c.Stage)
	if err != nil {
		return audpack.Options{}, err
	}
	if c.Width != 0 {
		if _, err := quant.New(c.Width); err != nil {
			return audpack.Options{}, err
		}
	}

	return audpack.Options{
		Codec:    codec,
		Stage:    kind,
		Level:    c.Level,
		Width:    c.Width,
		KeepTail: c.KeepTail,
	}, nil
}

// SlogLevel maps LogLevel (debug, info, warn, error) to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelError, fmt.Errorf("log level: %w", err)
	}

	return l, nil
}

func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
