// Package game runs the interactive terminal game.
package game

import (
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jay-kook/TicTacToe-AI/pkg/strategy"
	"github.com/jay-kook/TicTacToe-AI/services/game/game"
	"github.com/jay-kook/TicTacToe-AI/services/game/settings"
)

type Service struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Service {
	return &Service{
		rng: rng,
	}
}

// Play shows the settings menu, then runs games until the player
// stops asking for a rematch.
func (s *Service) Play() {
	settingsModel := settings.InitialModel(header())
	p := tea.NewProgram(settingsModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	cfg := settingsModel.GetSettings()
	if cfg.Quit {
		return
	}

	var bot strategy.Mover
	if cfg.Mode == settings.ModeVersusComputer {
		bot = strategy.ForDifficulty(cfg.Difficulty, s.rng)
	}

	for {
		gameModel := game.InitialModel(header(), bot, cfg.Stone)

		p = tea.NewProgram(gameModel, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if !gameModel.Replay {
			break
		}
	}
}

var (
	headerStyle1 = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#4204b5ff", Dark: "#4204b5ff"}).Render
	headerStyle2 = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#19b504ff", Dark: "#19b504ff"}).Render
	headerStyle3 = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#b55404ff", Dark: "#b55404ff"}).Render
)

func header() string {
	return fmt.Sprintf(
		"%s %s %s %s %s\n\n",
		headerStyle2("---"),
		headerStyle1("Tic"),
		headerStyle2("Tac"),
		headerStyle3("Toe"),
		headerStyle2("---"),
	)
}
