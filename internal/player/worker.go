package player

import (
	"context"
	"math/rand"
	"time"

	"github.com/apex/log"

	"schaak/internal/core"
	"schaak/internal/engine"
)

// Worker plays one side against a coordinator. It owns a complete position
// mirror cloned at construction and never touches the coordinator's state:
// everything it learns arrives over the inbound channel, everything it does
// leaves over the outbound one.
type Worker struct {
	colour core.Color
	mirror *engine.Position
	in     <-chan MoveInfo
	out    chan<- MoveInfo
	rng    *rand.Rand
	logger *log.Entry
	done   bool
}

// NewWorker clones the template position for the worker's private mirror.
func NewWorker(colour core.Color, template *engine.Position, rng *rand.Rand, in <-chan MoveInfo, out chan<- MoveInfo) *Worker {
	return &Worker{
		colour: colour,
		mirror: template.Clone(),
		in:     in,
		out:    out,
		rng:    rng,
		logger: log.WithField("player", colour.Name()),
	}
}

// Mirror exposes the worker's private position, for inspection only.
func (w *Worker) Mirror() *engine.Position {
	return w.mirror
}

// Tick performs at most one action: apply an incoming move to the mirror,
// or, when none arrived and it is this worker's turn, choose, apply, and
// send a move of its own. Applying before computing keeps the mirror at
// most one externally-originated move behind the coordinator.
func (w *Worker) Tick(ctx context.Context) {
	select {
	case mi := <-w.in:
		w.apply(mi.Move)
		return
	default:
	}

	if w.done || w.mirror.Turn != w.colour {
		return
	}
	if w.mirror.Outcome() != core.StateOngoing {
		w.done = true
		return
	}

	m, ok := ChooseRandom(w.rng, w.mirror)
	if !ok {
		w.logger.Debug("no move available")
		w.done = true
		return
	}
	w.apply(m)
	select {
	case w.out <- MoveInfo{Move: m}:
	case <-ctx.Done():
	}
}

func (w *Worker) apply(m engine.Move) {
	w.mirror.MakeMove(m)
	w.mirror.EndTurn()
}

// Run ticks until the context is cancelled.
func (w *Worker) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.Tick(ctx)
		}
	}
}
