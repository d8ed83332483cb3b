// Package main plays two random movers against each other through the
// worker/coordinator scaffold: each side runs in its own goroutine with a
// private position mirror, exchanging applied moves with the coordinator
// over channels. Useful for soaking the rules engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/google/uuid"

	"schaak/internal/core"
	"schaak/internal/engine"
	"schaak/internal/player"
	"schaak/internal/storage"
)

func main() {
	log.SetHandler(cli.New(os.Stderr))

	var (
		seed        = flag.Int64("seed", time.Now().UnixNano(), "Random seed for both movers")
		tick        = flag.Duration("tick", 5*time.Millisecond, "Worker poll interval")
		maxPlies    = flag.Int("max-plies", 300, "Stop after this many plies without a result")
		storagePath = flag.String("storage-path", "", "Path to SQLite database file (disables persistence if empty)")
	)
	flag.Parse()

	var store *storage.Store
	if *storagePath != "" {
		var err error
		store, err = storage.NewStore(*storagePath)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize storage")
		}
		if err := store.InitDB(); err != nil {
			log.WithError(err).Fatal("failed to initialize schema")
		}
		defer store.Close()
	}

	gameID := uuid.New().String()
	logger := log.WithField("game", gameID)

	pos := engine.New()

	whitePlayer := core.NewPlayer(core.PlayerConfig{Type: core.PlayerComputer}, core.ColorWhite)
	blackPlayer := core.NewPlayer(core.PlayerConfig{Type: core.PlayerComputer}, core.ColorBlack)

	if store != nil {
		store.RecordNewGame(storage.GameRecord{
			GameID:        gameID,
			WhitePlayerID: whitePlayer.ID,
			WhiteType:     int(whitePlayer.Type),
			BlackPlayerID: blackPlayer.ID,
			BlackType:     int(blackPlayer.Type),
			Result:        core.StateOngoing.String(),
			StartTimeUTC:  time.Now().UTC(),
		})
	}

	// One inbound and one outbound channel per worker; the coordinator is
	// the only bridge between them.
	toWhite := make(chan player.MoveInfo, 1)
	fromWhite := make(chan player.MoveInfo, 1)
	toBlack := make(chan player.MoveInfo, 1)
	fromBlack := make(chan player.MoveInfo, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	white := player.NewWorker(core.ColorWhite, pos, rand.New(rand.NewSource(*seed)), toWhite, fromWhite)
	black := player.NewWorker(core.ColorBlack, pos, rand.New(rand.NewSource(*seed+1)), toBlack, fromBlack)
	go white.Run(ctx, *tick)
	go black.Run(ctx, *tick)

	result := coordinate(ctx, logger, pos, store, gameID, fromWhite, toBlack, fromBlack, toWhite, *maxPlies)

	if store != nil {
		store.RecordResult(gameID, result.String())
	}

	fmt.Printf("\n%s\n\n", pos.Board.ToASCII())
	logger.WithField("result", result.String()).
		WithField("plies", len(pos.History)).
		Info("finished")
}

// coordinate owns the authoritative position: it applies each move a
// worker sends and relays it to the opposing worker, so every side sees
// at most one external move before computing its own.
func coordinate(ctx context.Context, logger *log.Entry, pos *engine.Position, store *storage.Store,
	gameID string, fromWhite <-chan player.MoveInfo, toBlack chan<- player.MoveInfo,
	fromBlack <-chan player.MoveInfo, toWhite chan<- player.MoveInfo, maxPlies int) core.State {

	for len(pos.History) < maxPlies {
		var mi player.MoveInfo
		var relay chan<- player.MoveInfo
		mover := pos.Turn

		select {
		case mi = <-fromWhite:
			relay = toBlack
		case mi = <-fromBlack:
			relay = toWhite
		case <-ctx.Done():
			return core.StateOngoing
		case <-time.After(5 * time.Second):
			// Neither side can move: the stalemate gap, or both workers
			// stopped. Leave the game unresolved.
			return core.StateOngoing
		}

		recorded := len(pos.History)
		pos.MakeMove(mi.Move)
		pos.EndTurn()

		for i, pm := range pos.History[recorded:] {
			logger.WithField("move", pm.String()).
				WithField("color", mover.String()).
				Info("applied")
			if store != nil {
				store.RecordMove(storage.MoveRecord{
					GameID:      gameID,
					MoveNumber:  recorded + i + 1,
					Move:        pm.String(),
					PlayerColor: mover.String(),
					MoveTimeUTC: time.Now().UTC(),
				})
			}
		}

		if outcome := pos.Outcome(); outcome != core.StateOngoing {
			return outcome
		}

		select {
		case relay <- mi:
		case <-ctx.Done():
			return core.StateOngoing
		}
	}

	return core.StateOngoing
}
