package config

import (
	"testing"

	"schaak/internal/core"
)

func validConfig() Config {
	return Config{
		Theme: "off",
		White: core.PlayerConfig{Type: core.PlayerHuman},
		Black: core.PlayerConfig{Type: core.PlayerComputer},
	}
}

func TestValidateAccepts(t *testing.T) {
	for _, theme := range []string{"off", "brown", "green", "gray"} {
		cfg := validConfig()
		cfg.Theme = theme
		if err := cfg.Validate(); err != nil {
			t.Errorf("theme %s: %v", theme, err)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	t.Run("unknown theme", func(t *testing.T) {
		cfg := validConfig()
		cfg.Theme = "plaid"
		if err := cfg.Validate(); err == nil {
			t.Error("unknown theme should fail validation")
		}
	})
	t.Run("missing player type", func(t *testing.T) {
		cfg := validConfig()
		cfg.White = core.PlayerConfig{}
		if err := cfg.Validate(); err == nil {
			t.Error("zero player type should fail validation")
		}
	})
	t.Run("out of range player type", func(t *testing.T) {
		cfg := validConfig()
		cfg.Black = core.PlayerConfig{Type: 9}
		if err := cfg.Validate(); err == nil {
			t.Error("unknown player type should fail validation")
		}
	})
}

func TestParsePlayerType(t *testing.T) {
	cases := []struct {
		in   string
		want core.PlayerType
	}{
		{"h", core.PlayerHuman},
		{"human", core.PlayerHuman},
		{"c", core.PlayerComputer},
		{"computer", core.PlayerComputer},
	}
	for _, tc := range cases {
		got, err := ParsePlayerType(tc.in)
		if err != nil {
			t.Errorf("ParsePlayerType(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePlayerType(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParsePlayerType("robot"); err == nil {
		t.Error("unknown player type string should fail")
	}
}
