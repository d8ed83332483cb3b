package cli

import (
	"fmt"
	"strings"

	"schaak/internal/core"
	"schaak/internal/service"
)

// Handler processes commands against the service and drives the view.
// Input lines come from the caller (readline in cmd/schaak), so the
// handler stays independent of the input mechanism.
type Handler struct {
	svc      *service.Service
	view     *View
	readLine func(prompt string) string
	gameID   string
}

func NewHandler(svc *service.Service, view *View, readLine func(prompt string) string) *Handler {
	return &Handler{
		svc:      svc,
		view:     view,
		readLine: readLine,
	}
}

// Prompt builds the command prompt from the current game state.
func (h *Handler) Prompt() string {
	prompt := "> "
	if h.gameID != "" {
		g, err := h.svc.GetGame(h.gameID)
		if err == nil && g.State() == core.StateOngoing {
			prompt = fmt.Sprintf("[%s]> ", g.NextTurn())
			if g.NextPlayer().Type == core.PlayerComputer {
				prompt = "ENTER to execute computer move\n" + prompt
			}
		}
	}
	return prompt
}

// HandleLine processes one input line - returns false to exit
func (h *Handler) HandleLine(line string) bool {
	cmd := ParseCommand(strings.TrimSpace(line))

	switch cmd.Type {
	case CmdQuit:
		return false

	case CmdNone:
		// Empty command triggers computer move if it's computer's turn
		if h.gameID != "" {
			g, err := h.svc.GetGame(h.gameID)
			if err == nil && g.State() == core.StateOngoing &&
				g.NextPlayer().Type == core.PlayerComputer {
				h.executeComputerMove()
			}
		}

	case CmdNew:
		h.handleNewGame()

	case CmdMove:
		h.handleMove(cmd.Args[0])

	case CmdTargets:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: moves <square>")
			return true
		}
		h.handleTargets(cmd.Args[0])

	case CmdPromote:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: promote <q|r|b|n>")
			return true
		}
		h.handlePromote(cmd.Args[0])

	case CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}
		theme := ColorTheme(cmd.Args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
		} else {
			h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
			h.showBoard(Highlights{})
		}

	case CmdHistory:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		g, _ := h.svc.GetGame(h.gameID)
		h.view.ShowGameHistory(g)

	case CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

func (h *Handler) showBoard(hl Highlights) {
	if h.gameID == "" {
		return
	}
	b, err := h.svc.Board(h.gameID)
	if err != nil {
		return
	}
	h.view.DisplayBoard(b, hl)
}

func (h *Handler) handleMove(moveText string) {
	if h.gameID == "" {
		h.view.ShowMessage("No active game. Use 'new'.")
		return
	}

	g, _ := h.svc.GetGame(h.gameID)
	if g.NextPlayer().Type != core.PlayerHuman {
		h.view.ShowMessage("It's not a human player's turn. Press ENTER to execute computer move.")
		return
	}

	result, err := h.svc.MakeHumanMove(h.gameID, moveText)
	if err != nil {
		h.view.ShowError(fmt.Errorf("invalid move: %v", err))
		return
	}

	h.showBoard(Highlights{})

	if result.GameState != core.StateOngoing {
		h.view.ShowGameOver(result.GameState)
		h.gameID = ""
	}
}

func (h *Handler) handleTargets(square string) {
	if h.gameID == "" {
		h.view.ShowMessage("No active game.")
		return
	}

	from, err := core.ParseCoord(square)
	if err != nil {
		h.view.ShowError(err)
		return
	}

	targets, err := h.svc.LegalTargets(h.gameID, from)
	if err != nil {
		h.view.ShowError(err)
		return
	}

	h.showBoard(Highlights{Selected: &from, Targets: targets})

	if len(targets) == 0 {
		h.view.ShowMessage(fmt.Sprintf("No legal moves for %s.", from))
		return
	}
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.String())
	}
	h.view.ShowMessage(fmt.Sprintf("%s can move to: %s", from, strings.Join(names, " ")))
}

func (h *Handler) handlePromote(letter string) {
	if h.gameID == "" {
		h.view.ShowMessage("No active game.")
		return
	}

	kind := core.KindFromLetter(letter[0])
	if err := h.svc.SetPromotion(h.gameID, kind); err != nil {
		h.view.ShowError(err)
		return
	}
	h.view.ShowPromotion(kind)
}

func (h *Handler) executeComputerMove() {
	result, err := h.svc.MakeComputerMove(h.gameID)
	if err != nil {
		h.view.ShowError(fmt.Errorf("computer move failed: %v", err))
		return
	}

	h.view.ShowComputerMove(result)
	h.showBoard(Highlights{})

	if result.GameState != core.StateOngoing {
		h.view.ShowGameOver(result.GameState)
		h.gameID = ""
	}
}

// handleNewGame starts a new game with player type selection
func (h *Handler) handleNewGame() {
	whiteInput := h.readLine("Select White player (h/c): ")
	whiteType := core.PlayerHuman
	if whiteInput == "c" || whiteInput == "computer" {
		whiteType = core.PlayerComputer
	}

	blackInput := h.readLine("Select Black player (h/c): ")
	blackType := core.PlayerHuman
	if blackInput == "c" || blackInput == "computer" {
		blackType = core.PlayerComputer
	}

	h.gameID = h.svc.GenerateGameID()
	err := h.svc.NewGame(h.gameID,
		core.PlayerConfig{Type: whiteType},
		core.PlayerConfig{Type: blackType})
	if err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %v", err))
		h.gameID = ""
		return
	}

	h.view.ShowMessage("Game started.")
	h.showBoard(Highlights{})
}
