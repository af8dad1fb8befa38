package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jay-kook/TicTacToe-AI/pkg/strategy"
	"github.com/jay-kook/TicTacToe-AI/pkg/tictactoe"
)

type record struct {
	player tictactoe.Player
	move   tictactoe.Move
}

type model struct {
	board         tictactoe.Board
	cursor        int
	currentPlayer tictactoe.Player
	botPlayer     tictactoe.Player
	bot           strategy.Mover
	spinner       spinner.Model
	sub           chan botDoneMsg
	header        string
	history       []record

	outcome tictactoe.Outcome
	Replay  bool
}

var (
	xStyle               = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#007e50ff", Dark: "#6afd76ff"}).Render
	oStyle               = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0003adff", Dark: "#5f61fcff"}).Render
	cursorStyle          = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#960000ff", Dark: "#fc7e7eff"}).Render
	winningRowStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#bb0000ff", Dark: "#df1010ff"}).Render
	lastWinningRowStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#f80000ff", Dark: "#f18787ff"}).Render
	bracketStyle         = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141ff", Dark: "#8f8f8fff"}).Render
	lastMoveBracketStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000ff", Dark: "#ffffffff"}).Render
)

var thinkingColors = []func(strs ...string) string{
	bracketStyle,
	lastMoveBracketStyle,
}

// InitialModel sets up a game. bot is nil for a two-player game;
// otherwise it plays the stone opposite to humanStone. X always
// starts.
func InitialModel(header string, bot strategy.Mover, humanStone tictactoe.Player) *model {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	botPlayer := tictactoe.Empty
	if bot != nil {
		botPlayer = humanStone.Opponent()
	}

	return &model{
		currentPlayer: tictactoe.X,
		botPlayer:     botPlayer,
		bot:           bot,
		spinner:       s,
		sub:           make(chan botDoneMsg),
		header:        header,
	}
}

func (m *model) Init() tea.Cmd {
	if m.botTurn() {
		return tea.Batch(m.beginTick(), waitForBot(m.sub), m.thinkBot())
	}

	return nil
}

func (m *model) botTurn() bool {
	return m.bot != nil && m.currentPlayer == m.botPlayer && !m.outcome.Terminal()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case botDoneMsg:
		if !msg.ok {
			return m, nil
		}

		m.applyMove(msg.move.Row*tictactoe.Size+msg.move.Col, m.botPlayer)
		if m.outcome.Terminal() {
			return m, nil
		}

		m.currentPlayer = m.currentPlayer.Opponent()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "right":
			cursor, _ := m.moveRight()
			m.cursor = cursor
		case "left":
			cursor, _ := m.moveLeft()
			m.cursor = cursor
		case "up":
			if m.cursor > tictactoe.Size-1 {
				oCursor := m.cursor
				m.cursor -= tictactoe.Size
				for {
					if m.cursor < 0 {
						m.cursor = oCursor
						return m, nil
					}

					if m.board.Cells[m.cursor] == tictactoe.Empty {
						break
					}

					m.cursor -= tictactoe.Size
				}
			}
		case "down":
			if m.cursor < tictactoe.Size*(tictactoe.Size-1) {
				oCursor := m.cursor
				m.cursor += tictactoe.Size
				for {
					if m.cursor > len(m.board.Cells)-1 {
						m.cursor = oCursor
						return m, nil
					}

					if m.board.Cells[m.cursor] == tictactoe.Empty {
						break
					}

					m.cursor += tictactoe.Size
				}
			}
		case "enter":
			if m.outcome.Terminal() {
				m.Replay = true
				return m, tea.Quit
			}

			if m.botTurn() || m.cursor < 0 {
				return m, nil
			}

			m.applyMove(m.cursor, m.currentPlayer)
			if m.outcome.Terminal() {
				return m, nil
			}

			m.currentPlayer = m.currentPlayer.Opponent()
			if m.botTurn() {
				return m, tea.Batch(m.beginTick(), waitForBot(m.sub), m.thinkBot())
			}

			return m, nil
		}

	default:
		if m.outcome.Terminal() {
			m.cursor = -1
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// applyMove places p on cell idx, records it and refreshes the
// outcome. The cursor hops to the nearest free cell when it was
// sitting on the played one.
func (m *model) applyMove(idx int, p tictactoe.Player) {
	move := tictactoe.Move{Row: idx / tictactoe.Size, Col: idx % tictactoe.Size}
	if err := m.board.Apply(move, p); err != nil {
		panic(err)
	}

	m.history = append(m.history, record{player: p, move: move})
	m.outcome = m.board.Outcome()

	if m.cursor != idx {
		return
	}

	if cursor, ok := m.moveRight(); ok {
		m.cursor = cursor
		return
	}

	if cursor, ok := m.moveLeft(); ok {
		m.cursor = cursor
		return
	}

	m.cursor = -1
}

type botDoneMsg struct {
	move tictactoe.Move
	ok   bool
}

func waitForBot(sub chan botDoneMsg) tea.Cmd {
	return func() tea.Msg {
		return botDoneMsg(<-sub)
	}
}

func (m model) beginTick() tea.Cmd {
	return func() tea.Msg {
		return m.spinner.Tick()
	}
}

// thinkBot searches on a snapshot of the board so the render loop
// never shares state with the goroutine; the chosen move comes back
// through sub and is applied in Update.
func (m *model) thinkBot() tea.Cmd {
	board := m.board
	player := m.botPlayer
	bot := m.bot
	sub := m.sub

	return func() tea.Msg {
		move, ok := bot.ChooseMove(board, player)
		sub <- botDoneMsg{move: move, ok: ok}
		return nil
	}
}

func (m model) moveRight() (int, bool) {
	oCursor := m.cursor

	if m.cursor >= 0 && m.cursor < len(m.board.Cells)-1 {
		m.cursor++
		for {
			if m.cursor > len(m.board.Cells)-1 {
				return oCursor, false
			}

			if m.board.Cells[m.cursor] == tictactoe.Empty {
				break
			}

			m.cursor++
		}
	}

	return m.cursor, m.cursor != oCursor
}

func (m model) moveLeft() (int, bool) {
	oCursor := m.cursor

	if m.cursor > 0 {
		m.cursor--
		for {
			if m.cursor < 0 {
				return oCursor, false
			}

			if m.board.Cells[m.cursor] == tictactoe.Empty {
				break
			}

			m.cursor--
		}
	}

	return m.cursor, m.cursor != oCursor
}

func (m *model) lastMoveIndex() int {
	if len(m.history) == 0 {
		return -1
	}

	move := m.history[len(m.history)-1].move
	return move.Row*tictactoe.Size + move.Col
}

func playerMark(p tictactoe.Player) string {
	if p == tictactoe.X {
		return xStyle(p.Mark())
	}

	return oStyle(p.Mark())
}

func (m *model) View() string {
	if m.Replay {
		return ""
	}

	var highlights []int
	if line, ok := m.board.WinningLine(); ok {
		highlights = line[:]
	}

	s := m.header

	botTurn := m.botTurn()

	s += "Current player: " + playerMark(m.currentPlayer)
	if botTurn {
		s += " (bot) " + m.spinner.View()
	}

	s += "\n"

	lastMove := m.lastMoveIndex()

	for i, p := range m.board.Cells {
		mark := p.Mark()
		if m.cursor == i {
			mark = cursorStyle("*")
		}

		if botTurn && p == tictactoe.Empty {
			mark = []string{"o", "x", " ", " "}[rand.N(4)]
			mark = thinkingColors[rand.IntN(len(thinkingColors))](mark)
		}

		switch p {
		case tictactoe.X:
			mark = xStyle(p.Mark())
		case tictactoe.O:
			mark = oStyle(p.Mark())
		}

		bStyle := bracketStyle
		winningRow := slices.Contains(highlights, i)

		if winningRow {
			bStyle = winningRowStyle
		}

		if lastMove == i && p != tictactoe.Empty {
			bStyle = lastMoveBracketStyle
			if winningRow {
				bStyle = lastWinningRowStyle
			}
		}

		s += fmt.Sprintf("%s%s%s", bStyle("["), mark, bStyle("]"))
		if (i+1)%tictactoe.Size == 0 {
			s += "\n"
		}
	}

	s += m.historyView()

	if m.outcome.Terminal() {
		s += "\n" + gameOverText + "\n"

		if m.outcome == tictactoe.Draw {
			s += "IT'S A TIE\n" + tieArt + "\n"
		} else {
			winner := tictactoe.X
			if m.outcome == tictactoe.OWins {
				winner = tictactoe.O
			}

			s += "THE WINNER IS: " + playerMark(winner) + "\n"
		}

		s += "\nPress enter to play again, q to quit\n"
	}

	return s
}

// historyView lists the past moves per side with 1-based coordinates.
func (m *model) historyView() string {
	if len(m.history) == 0 {
		return ""
	}

	var xMoves, oMoves []string
	for _, rec := range m.history {
		coord := fmt.Sprintf("(%d,%d)", rec.move.Row+1, rec.move.Col+1)
		if rec.player == tictactoe.X {
			xMoves = append(xMoves, coord)
		} else {
			oMoves = append(oMoves, coord)
		}
	}

	s := "\n" + xStyle("X") + ": " + strings.Join(xMoves, " ") + "\n"
	if len(oMoves) > 0 {
		s += oStyle("O") + ": " + strings.Join(oMoves, " ") + "\n"
	}

	return s
}

const gameOverText = `ＧＡＭＥ ＯＶＥＲ`

const tieArt = "       |\\_,,,---,,_\n" +
	"ZZZzz /,`.-'`'    -.  ;-;;,_\n" +
	"     |,4-  ) )-,_. ,\\ (  `'-'\n" +
	"    '---''(_/--'  `-'\\_)"
