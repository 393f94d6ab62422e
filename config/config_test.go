// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultStoreHasMotionSection(t *testing.T) {
	s := Default()
	motion := s.Section("motion")
	if got := motion.DurationMS("throttle_ms", 0); got != 100*time.Millisecond {
		t.Fatalf("throttle_ms = %v, want 100ms", got)
	}
	if got := motion.DurationMS("scroll_duration_ms", 0); got != 800*time.Millisecond {
		t.Fatalf("scroll_duration_ms = %v, want 800ms", got)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vitrine.json")
	raw := `{"motion": {"throttle_ms": 250}, "extra": {"answer": 42}}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	motion := s.Section("motion")
	if got := motion.DurationMS("throttle_ms", 0); got != 250*time.Millisecond {
		t.Errorf("throttle_ms = %v, want 250ms (file override)", got)
	}
	// Untouched defaults survive.
	if got := motion.DurationMS("frame_ms", 0); got != 16*time.Millisecond {
		t.Errorf("frame_ms = %v, want 16ms (default)", got)
	}
	if got := s.Section("extra").Int("answer", 0); got != 42 {
		t.Errorf("extra.answer = %d, want 42", got)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if got := s.Section("page").Int("nav_height", 0); got != 1 {
		t.Fatalf("nav_height = %d, want default 1", got)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vitrine.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error for malformed config")
	}
}

func TestSectionTypedAccessors(t *testing.T) {
	sec := Section{
		"s":   "hello",
		"i":   float64(7), // JSON numbers decode as float64
		"f":   0.5,
		"b":   true,
		"str": "12",
	}
	if got := sec.String("s", ""); got != "hello" {
		t.Errorf("String = %q", got)
	}
	if got := sec.Int("i", 0); got != 7 {
		t.Errorf("Int = %d, want 7", got)
	}
	if got := sec.Int("str", 0); got != 12 {
		t.Errorf("Int from string = %d, want 12", got)
	}
	if got := sec.Float("f", 0); got != 0.5 {
		t.Errorf("Float = %v, want 0.5", got)
	}
	if !sec.Bool("b", false) {
		t.Error("Bool = false, want true")
	}
	if got := sec.Int("missing", 9); got != 9 {
		t.Errorf("missing key fallback = %d, want 9", got)
	}
}

func TestOverridesApply(t *testing.T) {
	s := Default()
	o := Overrides{ReducedMotion: true, ThrottleMS: 50}
	o.Apply(s)

	motion := s.Section("motion")
	if !motion.Bool("reduced", false) {
		t.Error("reduced override not applied")
	}
	if got := motion.DurationMS("throttle_ms", 0); got != 50*time.Millisecond {
		t.Errorf("throttle_ms = %v, want 50ms", got)
	}
	// Frame interval untouched.
	if got := motion.DurationMS("frame_ms", 0); got != 16*time.Millisecond {
		t.Errorf("frame_ms = %v, want 16ms", got)
	}
}

func TestParseOverridesFromEnv(t *testing.T) {
	t.Setenv("VITRINE_REDUCED_MOTION", "true")
	t.Setenv("VITRINE_THROTTLE_MS", "75")

	o, err := ParseOverrides()
	if err != nil {
		t.Fatalf("ParseOverrides: %v", err)
	}
	if !o.ReducedMotion || o.ThrottleMS != 75 {
		t.Fatalf("overrides = %+v, want reduced motion and throttle 75", o)
	}
}
