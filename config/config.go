// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads renderer configuration from YAML files
// and BBCODE_ environment variables.
//
// A configuration file looks like
//
//	internal_domains: [furaffinity.net, facdn.net]
//	user_url: /users/{name}/
//	icon_url: https://a.facdn.net/{name}.gif
//	submission_url: /view/{id}/
//	colors: [red, green, blue]
//	max_depth: 21
//	max_input_size: 65536
//	sanitize: true
//	log_level: debug
//
// Every key can be overridden by an environment variable
// named by the key in upper case with a BBCODE_ prefix,
// such as BBCODE_MAX_DEPTH=10.
// Lists in the environment are comma-separated.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/FurAffinity/bbcode"
	"github.com/FurAffinity/bbcode/internal/logging"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by the errors for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// A File is the contents of a configuration file.
type File struct {
	InternalDomains []string `mapstructure:"internal_domains" yaml:"internal_domains"`
	UserURL         string   `mapstructure:"user_url" yaml:"user_url"`
	IconURL         string   `mapstructure:"icon_url" yaml:"icon_url"`
	SubmissionURL   string   `mapstructure:"submission_url" yaml:"submission_url"`

	// Colors replaces the built-in list of color names when not empty.
	Colors []string `mapstructure:"colors" yaml:"colors"`

	MaxDepth     int    `mapstructure:"max_depth" yaml:"max_depth"`
	MaxInputSize int    `mapstructure:"max_input_size" yaml:"max_input_size"`
	Sanitize     bool   `mapstructure:"sanitize" yaml:"sanitize"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns the settings used for keys that are not set.
func Default() File {
	cfg := bbcode.DefaultConfig()
	return File{
		InternalDomains: []string{},
		UserURL:         cfg.UserURL,
		IconURL:         cfg.IconURL,
		SubmissionURL:   cfg.SubmissionURL,
		Colors:          []string{},
		MaxDepth:        cfg.MaxDepth,
		LogLevel:        "info",
	}
}

// Decode reads YAML settings from r.
// Unknown keys are an error. Keys not present keep their default values.
func Decode(r io.Reader) (File, error) {
	f := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return File{}, fmt.Errorf("config: decoding: %w", err)
	}
	if err := f.validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Load reads settings from the YAML file at path, if path is not empty,
// and then from BBCODE_ environment variables.
func Load(path string) (File, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("internal_domains", def.InternalDomains)
	v.SetDefault("user_url", def.UserURL)
	v.SetDefault("icon_url", def.IconURL)
	v.SetDefault("submission_url", def.SubmissionURL)
	v.SetDefault("colors", def.Colors)
	v.SetDefault("max_depth", def.MaxDepth)
	v.SetDefault("max_input_size", def.MaxInputSize)
	v.SetDefault("sanitize", def.Sanitize)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix("BBCODE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return File{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	if err := f.validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

func (f *File) validate() error {
	if f.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d", ErrInvalid, f.MaxDepth)
	}
	if f.MaxInputSize < 0 {
		return fmt.Errorf("%w: max_input_size %d", ErrInvalid, f.MaxInputSize)
	}
	if _, err := logging.ParseLevel(f.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, f.LogLevel)
	}
	return nil
}

// Config returns the renderer configuration for f.
// The renderer logs to standard error at f's log level.
func (f File) Config() (bbcode.Config, error) {
	level, err := logging.ParseLevel(f.LogLevel)
	if err != nil {
		return bbcode.Config{}, fmt.Errorf("%w: log_level %q", ErrInvalid, f.LogLevel)
	}
	cfg := bbcode.Config{
		InternalDomains: f.InternalDomains,
		UserURL:         f.UserURL,
		IconURL:         f.IconURL,
		SubmissionURL:   f.SubmissionURL,
		MaxDepth:        f.MaxDepth,
		MaxInputSize:    f.MaxInputSize,
		Sanitize:        f.Sanitize,
		Logger:          logging.New(os.Stderr, level),
	}
	if len(f.Colors) > 0 {
		cfg.Colors = make(map[string]bool, len(f.Colors))
		for _, c := range f.Colors {
			cfg.Colors[c] = true
		}
	}
	return cfg, nil
}

// Renderer returns a renderer configured by f.
func (f File) Renderer() (*bbcode.Renderer, error) {
	cfg, err := f.Config()
	if err != nil {
		return nil, err
	}
	return bbcode.New(cfg)
}
