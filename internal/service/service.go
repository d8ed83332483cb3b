package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"

	"schaak/internal/board"
	"schaak/internal/core"
	"schaak/internal/engine"
	"schaak/internal/game"
	"schaak/internal/player"
	"schaak/internal/storage"
)

// Service is a pure state manager for chess games with optional persistence
type Service struct {
	games  map[string]*game.Game
	mu     sync.RWMutex
	store  *storage.Store // nil if persistence disabled
	rng    *rand.Rand
	logger *log.Entry
}

// New creates a new service instance with optional storage. The seed
// drives the computer player's uniform-random move choice.
func New(store *storage.Store, seed int64) *Service {
	return &Service{
		games:  make(map[string]*game.Game),
		store:  store,
		rng:    rand.New(rand.NewSource(seed)),
		logger: log.WithField("component", "service"),
	}
}

// NewGame creates a game with player configuration
func (s *Service) NewGame(id string, whiteConfig, blackConfig core.PlayerConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}

	whitePlayer := core.NewPlayer(whiteConfig, core.ColorWhite)
	blackPlayer := core.NewPlayer(blackConfig, core.ColorBlack)

	s.games[id] = game.New(whitePlayer, blackPlayer)

	// Persist if storage enabled
	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:        id,
			WhitePlayerID: whitePlayer.ID,
			WhiteType:     int(whitePlayer.Type),
			BlackPlayerID: blackPlayer.ID,
			BlackType:     int(blackPlayer.Type),
			Result:        core.StateOngoing.String(),
			StartTimeUTC:  time.Now().UTC(),
		})
	}

	return nil
}

// GetGame retrieves a game by ID
func (s *Service) GetGame(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	return g, nil
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Ensure UUID uniqueness (handle potential conflicts)
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// MakeHumanMove validates and applies a move given in coordinate text
// ("e2e4"). Rejected moves leave the game untouched.
func (s *Service) MakeHumanMove(gameID, moveText string) (*game.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	if g.State() != core.StateOngoing {
		return nil, fmt.Errorf("game is over: %s", g.State())
	}

	from, to, err := core.ParseMoveText(moveText)
	if err != nil {
		return nil, err
	}

	pos := g.Position()
	src := pos.Board.PieceAt(from)
	if src.Kind == core.NoPiece {
		return nil, fmt.Errorf("no piece on %s", from)
	}
	if src.Color != pos.Turn {
		return nil, fmt.Errorf("it is %s's turn", pos.Turn.Name())
	}

	mover := pos.Turn
	recorded := len(pos.History)
	if !pos.AttemptMove(from, to) {
		return nil, fmt.Errorf("%s is not a legal destination for %s", to, from)
	}

	return s.finishMove(gameID, g, mover, moveText, recorded), nil
}

// MakeComputerMove picks a uniformly random legal move for the side to
// move and applies it.
func (s *Service) MakeComputerMove(gameID string) (*game.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	if g.State() != core.StateOngoing {
		return nil, fmt.Errorf("game is over: %s", g.State())
	}

	pos := g.Position()
	mover := pos.Turn
	m, ok := player.ChooseRandom(s.rng, pos)
	if !ok {
		return nil, fmt.Errorf("no move available for %s", mover.Name())
	}

	recorded := len(pos.History)
	pos.MakeMove(m)

	return s.finishMove(gameID, g, mover, m.From.String()+m.To.String(), recorded), nil
}

// finishMove runs the shared tail of a move: persist the new history
// records, complete the turn, and evaluate the outcome. Castling appends
// two history records; both are persisted.
func (s *Service) finishMove(gameID string, g *game.Game, mover core.Color, moveText string, recorded int) *game.MoveResult {
	pos := g.Position()

	if s.store != nil {
		for i, pm := range pos.History[recorded:] {
			s.store.RecordMove(storage.MoveRecord{
				GameID:      gameID,
				MoveNumber:  recorded + i + 1,
				Move:        pm.String(),
				PlayerColor: mover.String(),
				MoveTimeUTC: time.Now().UTC(),
			})
		}
	}

	pos.EndTurn()

	if outcome := pos.Outcome(); outcome != core.StateOngoing {
		g.SetState(outcome)
		if s.store != nil {
			s.store.RecordResult(gameID, outcome.String())
		}
		s.logger.WithField("game", gameID).WithField("result", outcome.String()).Info("game over")
	}

	result := &game.MoveResult{
		Move:      moveText,
		Player:    mover,
		GameState: g.State(),
	}
	g.SetLastResult(result)
	return result
}

// LegalTargets lists the legal destination squares for the piece on the
// given square, for input highlighting and target validation.
func (s *Service) LegalTargets(gameID string, from core.Coord) ([]core.Coord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}

	pos := g.Position()
	src := pos.Board.PieceAt(from)
	if src.Kind == core.NoPiece {
		return nil, fmt.Errorf("no piece on %s", from)
	}
	if src.Color != pos.Turn {
		return nil, fmt.Errorf("the piece on %s is not %s's", from, pos.Turn.Name())
	}

	return engine.Destinations(pos.Moves(from, true)), nil
}

// SetPromotion selects the piece kind used by subsequent pawn promotions
// in the game.
func (s *Service) SetPromotion(gameID string, kind core.PieceKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}
	return g.Position().SetNextPromotion(kind)
}

// Board returns a copy of the game's current board.
func (s *Service) Board(gameID string) (board.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return board.Board{}, fmt.Errorf("game not found: %s", gameID)
	}
	return g.Position().Board, nil
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}
	delete(s.games, gameID)
	return nil
}

// Close cleans up resources
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*game.Game)

	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
