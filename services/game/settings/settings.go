package settings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jay-kook/TicTacToe-AI/pkg/strategy"
	"github.com/jay-kook/TicTacToe-AI/pkg/tictactoe"
)

var (
	listSelectorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}).Render
)

// Mode says who sits on each side of the board.
type Mode int8

const (
	ModeVersusComputer Mode = iota
	ModeVersusHuman
)

type Settings struct {
	Mode       Mode
	Difficulty strategy.Difficulty
	Stone      tictactoe.Player
	Quit       bool
}

type choiceLevel int

const (
	choiceLevelMode choiceLevel = iota
	choiceLevelDifficulty
	choiceLevelStone
)

var modeChoices = []string{
	"Player vs Computer",
	"Player vs Player",
}

var difficultyChoices = []struct {
	value strategy.Difficulty
	label string
}{
	{strategy.Easy, "easy (random moves)"},
	{strategy.Medium, "medium (monte carlo, 200 simulations)"},
	{strategy.Hard, "hard (monte carlo, 100k simulations)"},
	{strategy.Expert, "expert (minimax)"},
}

var stoneChoices = []string{
	"X (first)",
	"O",
}

type model struct {
	cursor      int
	choiceLevel choiceLevel
	header      string

	settings Settings

	clear bool
}

func (m model) GetSettings() Settings {
	return m.settings
}

func InitialModel(header string) *model {
	return &model{
		header: header,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) choices() []string {
	switch m.choiceLevel {
	case choiceLevelMode:
		return modeChoices
	case choiceLevelDifficulty:
		labels := make([]string, len(difficultyChoices))
		for i, c := range difficultyChoices {
			labels[i] = c.label
		}
		return labels
	}

	return stoneChoices
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	choices := m.choices()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.clear = true
			m.settings.Quit = true
			return m, tea.Quit

		case "enter":
			switch m.choiceLevel {
			case choiceLevelMode:
				if m.cursor == 1 {
					// Both stones share the keyboard, nothing left to pick.
					m.settings.Mode = ModeVersusHuman
					m.clear = true
					return m, tea.Quit
				}

				m.settings.Mode = ModeVersusComputer

			case choiceLevelDifficulty:
				m.settings.Difficulty = difficultyChoices[m.cursor].value

			case choiceLevelStone:
				m.settings.Stone = tictactoe.X
				if m.cursor == 1 {
					m.settings.Stone = tictactoe.O
				}

				m.clear = true
				return m, tea.Quit
			}

			m.choiceLevel++
			m.cursor = 0
			return m, nil

		case "down", "j":
			m.cursor++
			if m.cursor >= len(choices) {
				m.cursor = 0
			}

		case "up", "k":
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(choices) - 1
			}
		}
	}

	return m, nil
}

func (m *model) View() string {
	if m.clear {
		return ""
	}

	s := strings.Builder{}
	s.WriteString(m.header)

	switch m.choiceLevel {
	case choiceLevelMode:
		s.WriteString("Select game mode:\n")
	case choiceLevelDifficulty:
		s.WriteString("Select difficulty:\n")
	case choiceLevelStone:
		s.WriteString("Choose stone:\n")
	}

	for i, choice := range m.choices() {
		if m.cursor == i {
			s.WriteString(listSelectorStyle("(•) "))
		} else {
			s.WriteString(listSelectorStyle("( ) "))
		}

		s.WriteString(choice)
		s.WriteString("\n")
	}

	return s.String()
}
