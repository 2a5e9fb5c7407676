package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/blackjackforbots/cmd/blackjack/shared"
	"github.com/lox/blackjackforbots/internal/config"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/tui"
)

type PlayCmd struct {
	Seed   uint64 `help:"Shoe seed (0 picks one from the clock)"`
	Bet    int64  `default:"100" help:"Bet per hand in cents"`
	Decks  int    `help:"Number of decks in the shoe (overrides config)"`
	Config string `type:"path" help:"HCL rules file"`
}

func (c *PlayCmd) Run() error {
	// TUI owns the terminal, so keep logging quiet
	logger := shared.SetupLogger(false)

	cfg := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.Decks > 0 {
		cfg.Rules.NumDecks = c.Decks
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	shoe := deck.NewShoe(cfg.Rules.NumDecks, seed)
	model := tui.New(cfg.Rules, shoe, c.Bet, logger)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
