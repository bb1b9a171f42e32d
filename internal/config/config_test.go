package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFluctusConfig()) {
		t.Errorf("embedded defaults differ from DefaultFluctusConfig():\n got %+v\nwant %+v", cfg, DefaultFluctusConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  flip_speed: 900\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Player.FlipSpeed != 900 {
		t.Errorf("FlipSpeed = %f, expected 900", cfg.Player.FlipSpeed)
	}
	if cfg.Player.Size != 20 {
		t.Errorf("unset keys should keep defaults, Size = %f", cfg.Player.Size)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"negative size", "player:\n  size: -1\n", "player.size"},
		{"inverted interval", "difficulty:\n  initial:\n    spawn_interval_min: 2\n    spawn_interval_max: 1\n", "inverted"},
		{"zero coin odds", "spawner:\n  coin_odds: 0\n", "coin_odds"},
		{"rail inside player", "player:\n  rail_height: 5\n", "rail_height"},
		{"malformed yaml", "player: [", "config:"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFluctusCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("wave:\n  band_height: 80\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFluctus(path)
	if err != nil {
		t.Fatalf("LoadFluctus() failed: %v", err)
	}
	if cfg.Wave.BandHeight != 80 {
		t.Errorf("BandHeight = %f, expected 80", cfg.Wave.BandHeight)
	}

	if _, err := LoadFluctus(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFluctus() should fail for a missing custom path")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultFluctusConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), ".inf") {
		t.Errorf("open upper bounds should encode as .inf:\n%s", data)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFluctusConfig()) {
		t.Error("Marshal/Parse should preserve the configuration")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ParsePreset(insane) error = %v, expected ErrUnknownPreset", err)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultFluctusConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.HeadStart != 45 {
		t.Errorf("hard preset: enabled=%v head_start=%f", cfg.Difficulty.Enabled, cfg.Difficulty.HeadStart)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultFluctusConfig()
	ApplyPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultFluctusConfig()) {
		t.Error("empty preset should leave the config untouched")
	}
}
