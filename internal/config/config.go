/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package config loads the user-editable YAML configuration with read-only
// environment overrides applied at runtime.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PlaybackConfig controls default playback behavior; command-line flags win
// over these values.
type PlaybackConfig struct {
	AutoAdvanceMs int  `yaml:"auto_advance_ms"` // 0 disables timed advancing
	ClearScreen   bool `yaml:"clear_screen"`
}

// ThemeConfig remaps markup color names onto builtin terminal color names.
type ThemeConfig struct {
	Colors map[string]string `yaml:"colors"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// AppConfig is the persisted configuration schema. Bump ConfigVersion on
// backward-incompatible structure changes.
type AppConfig struct {
	ConfigVersion int            `yaml:"config_version"`
	Playback      PlaybackConfig `yaml:"playback"`
	Theme         ThemeConfig    `yaml:"theme"`
	Logging       LoggingConfig  `yaml:"logging"`
	History       HistoryConfig  `yaml:"history"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Playback:      PlaybackConfig{AutoAdvanceMs: 0, ClearScreen: true},
		Theme:         ThemeConfig{},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
		History:       HistoryConfig{Enabled: true},
	}
}

// Env var names used as overrides.
const (
	EnvAutoAdvanceMs = "TPP_AUTO_ADVANCE_MS"
	EnvClearScreen   = "TPP_CLEAR_SCREEN"
	EnvHistory       = "TPP_HISTORY"
	EnvLogLevel      = "TPP_LOG_LEVEL"
	EnvLogFormat     = "TPP_LOG_FORMAT"
	EnvLogSource     = "TPP_LOG_SOURCE"
	EnvLogFile       = "TPP_LOG_FILE"
)

// Dir returns the per-user tpp configuration directory.
func Dir() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "tpp")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "tpp")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "tpp")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return base, nil
}

// Path returns the per-user config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// fileConfig mirrors AppConfig for decoding the user file. Fields whose
// defaults are not the zero value are pointers, so an omitted key is
// distinguishable from an explicit false/0 and never clobbers a default.
type fileConfig struct {
	ConfigVersion int `yaml:"config_version"`
	Playback      struct {
		AutoAdvanceMs *int  `yaml:"auto_advance_ms"`
		ClearScreen   *bool `yaml:"clear_screen"`
	} `yaml:"playback"`
	Theme   ThemeConfig   `yaml:"theme"`
	Logging LoggingConfig `yaml:"logging"`
	History struct {
		Enabled *bool `yaml:"enabled"`
	} `yaml:"history"`
}

// Load reads the user config file (if present), applies defaults, and merges
// environment overrides on top.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := Path()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg fileConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML, creating the config directory if needed.
func Save(cfg AppConfig) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *fileConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Playback.AutoAdvanceMs != nil {
		dst.Playback.AutoAdvanceMs = *src.Playback.AutoAdvanceMs
	}
	if src.Playback.ClearScreen != nil {
		dst.Playback.ClearScreen = *src.Playback.ClearScreen
	}
	if src.History.Enabled != nil {
		dst.History.Enabled = *src.History.Enabled
	}
	if len(src.Theme.Colors) > 0 {
		dst.Theme.Colors = src.Theme.Colors
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvAutoAdvanceMs)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Playback.AutoAdvanceMs = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvClearScreen)); v != "" {
		cfg.Playback.ClearScreen = isTruthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvHistory)); v != "" {
		cfg.History.Enabled = isTruthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = isTruthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func isTruthy(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}
