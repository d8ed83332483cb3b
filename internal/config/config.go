package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"schaak/internal/core"
)

// Config carries the runtime options of the interactive game, built from
// command-line flags and checked once at startup.
type Config struct {
	// StoragePath is the SQLite database file; empty disables persistence.
	StoragePath string
	Theme       string `validate:"oneof=off brown green gray"`
	Seed        int64
	White       core.PlayerConfig `validate:"required"`
	Black       core.PlayerConfig `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ParsePlayerType maps a flag value to a player type.
func ParsePlayerType(s string) (core.PlayerType, error) {
	switch s {
	case "h", "human":
		return core.PlayerHuman, nil
	case "c", "computer":
		return core.PlayerComputer, nil
	default:
		return 0, fmt.Errorf("invalid player type %q (use: h, human, c, computer)", s)
	}
}
