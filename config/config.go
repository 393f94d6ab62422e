// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON configuration store for vitrine.
// Usage: One file (vitrine.json) holds sections of key/value pairs; defaults
// are merged underneath so a partial file is always valid.

package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

const systemConfigName = "vitrine.json"

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

// Store holds the merged configuration.
type Store struct {
	mu       sync.RWMutex
	sections map[string]Section
}

// Default returns a store containing only the built-in defaults.
func Default() *Store {
	s := &Store{sections: make(map[string]Section)}
	s.merge(defaults())
	return s
}

// Load reads the config file at path (or the default location when path is
// empty) and merges it over the defaults. A missing file is not an error.
func Load(path string) (*Store, error) {
	s := Default()
	if path == "" {
		path = defaultPath()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config: No config file at %s, using defaults", path)
			return s, nil
		}
		return s, fmt.Errorf("read config: %w", err)
	}

	var parsed map[string]Section
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return s, fmt.Errorf("parse config: %w", err)
	}
	s.merge(parsed)
	return s, nil
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return systemConfigName
	}
	return filepath.Join(dir, "vitrine", systemConfigName)
}

func (s *Store) merge(sections map[string]Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, section := range sections {
		if s.sections[name] == nil {
			s.sections[name] = make(Section, len(section))
		}
		for k, v := range section {
			s.sections[name][k] = v
		}
	}
}

// Section returns a copy of the named section, empty when absent.
func (s *Store) Section(name string) Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(Section)
	for k, v := range s.sections[name] {
		out[k] = v
	}
	return out
}

// Set overrides one value; used by env overrides and tests.
func (s *Store) Set(section, key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sections[section] == nil {
		s.sections[section] = make(Section)
	}
	s.sections[section][key] = value
}

// String reads a string value with fallback.
func (sec Section) String(key, fallback string) string {
	if raw, ok := sec[key]; ok {
		if str, ok := raw.(string); ok {
			return str
		}
	}
	return fallback
}

// Int reads an integer value with fallback. JSON numbers arrive as float64.
func (sec Section) Int(key string, fallback int) int {
	if raw, ok := sec[key]; ok {
		switch v := raw.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		case string:
			if parsed, err := strconv.Atoi(v); err == nil {
				return parsed
			}
		}
	}
	return fallback
}

// Float reads a float value with fallback.
func (sec Section) Float(key string, fallback float64) float64 {
	if raw, ok := sec[key]; ok {
		switch v := raw.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case int64:
			return float64(v)
		case string:
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				return parsed
			}
		}
	}
	return fallback
}

// Bool reads a boolean value with fallback.
func (sec Section) Bool(key string, fallback bool) bool {
	if raw, ok := sec[key]; ok {
		switch v := raw.(type) {
		case bool:
			return v
		case string:
			if parsed, err := strconv.ParseBool(v); err == nil {
				return parsed
			}
		}
	}
	return fallback
}

// DurationMS reads a millisecond count as a duration with fallback.
func (sec Section) DurationMS(key string, fallbackMS int64) time.Duration {
	fallback := time.Duration(fallbackMS) * time.Millisecond
	if raw, ok := sec[key]; ok {
		switch v := raw.(type) {
		case int:
			return time.Duration(v) * time.Millisecond
		case int64:
			return time.Duration(v) * time.Millisecond
		case float64:
			return time.Duration(v) * time.Millisecond
		case string:
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				return time.Duration(parsed) * time.Millisecond
			}
		}
	}
	return fallback
}

// Palette reads nested hex color maps, e.g. the "theme" section.
func (s *Store) Palette(name string) map[string]map[string]string {
	out := make(map[string]map[string]string)
	for group, raw := range s.Section(name) {
		entries, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		out[group] = make(map[string]string, len(entries))
		for k, v := range entries {
			if hex, ok := v.(string); ok {
				out[group][k] = hex
			}
		}
	}
	return out
}
