package game

import (
	"schaak/internal/core"
	"schaak/internal/engine"
)

// MoveResult tracks the outcome of a move
type MoveResult struct {
	Move      string
	Player    core.Color
	GameState core.State
}

// Game owns one live position, its two players, and the game outcome.
type Game struct {
	pos        *engine.Position
	players    map[core.Color]*core.Player
	state      core.State
	lastResult *MoveResult
}

func New(whitePlayer, blackPlayer *core.Player) *Game {
	return &Game{
		pos: engine.New(),
		players: map[core.Color]*core.Player{
			core.ColorWhite: whitePlayer,
			core.ColorBlack: blackPlayer,
		},
		state: core.StateOngoing,
	}
}

// Position exposes the live rules state. Callers mutate it through the
// engine's own operations.
func (g *Game) Position() *engine.Position {
	return g.pos
}

func (g *Game) NextTurn() core.Color {
	return g.pos.Turn
}

func (g *Game) NextPlayer() *core.Player {
	return g.players[g.pos.Turn]
}

func (g *Game) Player(c core.Color) *core.Player {
	return g.players[c]
}

// Moves lists the performed-move history in coordinate text form.
func (g *Game) Moves() []string {
	moves := make([]string, 0, len(g.pos.History))
	for _, m := range g.pos.History {
		moves = append(moves, m.String())
	}
	return moves
}

func (g *Game) State() core.State {
	return g.state
}

func (g *Game) SetState(s core.State) {
	g.state = s
}

func (g *Game) SetLastResult(result *MoveResult) {
	g.lastResult = result
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}
