package core

import (
	"github.com/google/uuid"
)

type PlayerType int

const (
	PlayerHuman PlayerType = iota + 1
	PlayerComputer
)

func (t PlayerType) String() string {
	if t == PlayerComputer {
		return "computer"
	}
	return "human"
}

// Player is one side of a game.
type Player struct {
	ID    string
	Color Color
	Type  PlayerType
}

// PlayerConfig selects a player type at game creation.
type PlayerConfig struct {
	Type PlayerType `validate:"required,oneof=1 2"`
}

// NewPlayer creates a Player from PlayerConfig
func NewPlayer(config PlayerConfig, color Color) *Player {
	return &Player{
		ID:    uuid.New().String(),
		Color: color,
		Type:  config.Type,
	}
}
