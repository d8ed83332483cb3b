// Package main implements the interactive terminal chess game.
package main

import (
	"flag"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/chzyer/readline"
	"golang.org/x/term"

	schaakcli "schaak/internal/cli"
	"schaak/internal/config"
	"schaak/internal/core"
	"schaak/internal/service"
	"schaak/internal/storage"
)

func main() {
	log.SetHandler(cli.New(os.Stderr))

	var (
		storagePath = flag.String("storage-path", "", "Path to SQLite database file (disables persistence if empty)")
		theme       = flag.String("theme", defaultTheme(), "Board color theme (off|brown|green|gray)")
		seed        = flag.Int64("seed", time.Now().UnixNano(), "Random seed for the computer player")
		white       = flag.String("white", "h", "White player type (h|c)")
		black       = flag.String("black", "h", "Black player type (h|c)")
	)
	flag.Parse()

	whiteType, err := config.ParsePlayerType(*white)
	if err != nil {
		log.WithError(err).Fatal("invalid -white flag")
	}
	blackType, err := config.ParsePlayerType(*black)
	if err != nil {
		log.WithError(err).Fatal("invalid -black flag")
	}

	cfg := &config.Config{
		StoragePath: *storagePath,
		Theme:       *theme,
		Seed:        *seed,
		White:       core.PlayerConfig{Type: whiteType},
		Black:       core.PlayerConfig{Type: blackType},
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("configuration rejected")
	}

	var store *storage.Store
	if cfg.StoragePath != "" {
		store, err = storage.NewStore(cfg.StoragePath)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize storage")
		}
		if err := store.InitDB(); err != nil {
			log.WithError(err).Fatal("failed to initialize schema")
		}
		log.WithField("path", cfg.StoragePath).Info("persistent storage enabled")
	}

	svc := service.New(store, cfg.Seed)
	defer svc.Close()

	view := schaakcli.NewView(os.Stdout)
	if err := view.SetTheme(schaakcli.ColorTheme(cfg.Theme)); err != nil {
		log.WithError(err).Fatal("invalid theme")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     ".schaak_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.WithError(err).Fatal("failed to initialize input")
	}
	defer rl.Close()

	readFn := func(prompt string) string {
		rl.SetPrompt(prompt)
		line, err := rl.Readline()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(line)
	}

	handler := schaakcli.NewHandler(svc, view, readFn)

	view.ShowWelcome()

	for {
		rl.SetPrompt(handler.Prompt())
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			break
		}
		if err != nil {
			continue
		}
		if !handler.HandleLine(line) {
			break
		}
	}
}

// defaultTheme picks a colored board when stdout is a terminal.
func defaultTheme() string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "brown"
	}
	return "off"
}
