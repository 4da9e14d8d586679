// Package tui is the terminal presentation layer for the grid engine. It
// is a pure observer: every state change goes through engine commands and
// the view re-renders from engine snapshots.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/pokergrid/internal/game"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Play   key.Binding
	Reset  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "select")),
		Play:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play hand")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new game")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Play, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Play, k.Reset},
		{k.Help, k.Quit},
	}
}

// Model is the bubbletea model over one engine session
type Model struct {
	engine       *game.Engine
	cursor       game.Position
	keys         keyMap
	help         help.Model
	status       string
	showEligible bool
	logger       *log.Logger
	width        int
}

// NewModel creates the TUI model for an engine session
func NewModel(engine *game.Engine, showEligible bool, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		engine:       engine,
		cursor:       game.Position{Row: 2, Col: 2},
		keys:         defaultKeyMap(),
		help:         help.New(),
		showEligible: showEligible,
		logger:       logger,
		status:       "select adjacent cards to build a hand",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.cursor = m.moveCursor(-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.cursor = m.moveCursor(1, 0)
		case key.Matches(msg, m.keys.Left):
			m.cursor = m.moveCursor(0, -1)
		case key.Matches(msg, m.keys.Right):
			m.cursor = m.moveCursor(0, 1)
		case key.Matches(msg, m.keys.Select):
			m = m.selectUnderCursor()
		case key.Matches(msg, m.keys.Play):
			m = m.playSelection()
		case key.Matches(msg, m.keys.Reset):
			m.engine.Reset()
			m.status = "new game dealt"
		}
	}
	return m, nil
}

func (m Model) moveCursor(dr, dc int) game.Position {
	next := game.Position{Row: m.cursor.Row + dr, Col: m.cursor.Col + dc}
	if !next.Valid() {
		return m.cursor
	}
	return next
}

func (m Model) selectUnderCursor() Model {
	card, ok := m.engine.CardAt(m.cursor)
	if !ok {
		m.status = "nothing to select here"
		return m
	}

	switch m.engine.SelectCard(card.ID) {
	case game.TapAccepted:
		if hand, ok := m.engine.CurrentHand(); ok {
			m.status = fmt.Sprintf("%s selected, %s for %d", card, hand, hand.Score())
		} else {
			m.status = fmt.Sprintf("%s selected", card)
		}
	case game.TapCleared:
		m.status = "selection cleared"
	case game.TapRejected:
		m.status = fmt.Sprintf("%s is out of reach", card)
	}
	m.logger.Debug("tap", "card", card.String(), "status", m.status)
	return m
}

func (m Model) playSelection() Model {
	result := m.engine.Play()
	if !result.Success {
		m.status = "that selection is not a hand"
		return m
	}

	m.status = fmt.Sprintf("scored %s for %d points", result.Hand, result.ScoreDelta)
	if result.GameOver {
		m.status = fmt.Sprintf("scored %s for %d, no moves left!", result.Hand, result.ScoreDelta)
	}
	return m
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(" ♠ ♥ pokergrid ♦ ♣ "))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderGrid() string {
	eligible := m.engine.EligibleCards()

	var rows []string
	for row := 0; row < game.GridSize; row++ {
		var cells []string
		for col := 0; col < game.GridSize; col++ {
			pos := game.Position{Row: row, Col: col}
			cells = append(cells, m.renderCell(pos, eligible))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderCell(pos game.Position, eligible map[uuid.UUID]bool) string {
	card, ok := m.engine.CardAt(pos)
	under := pos == m.cursor

	if !ok {
		cell := "  ·  "
		if under {
			return cursorStyle.Render(cell)
		}
		return emptyStyle.Render(cell)
	}

	label := fmt.Sprintf(" %3s ", card.String())
	switch {
	case under:
		return cursorStyle.Render(label)
	case m.engine.IsSelected(card.ID):
		return selectedStyle.Render(label)
	case m.showEligible && eligible[card.ID]:
		return eligibleStyle.Render(label)
	case m.showEligible && len(m.engine.Selected()) > 0:
		return dimStyle.Render(label)
	case card.IsRed():
		return redCardStyle.Render(label)
	default:
		return blackCardStyle.Render(label)
	}
}

func (m Model) renderStatus() string {
	var b strings.Builder

	b.WriteString(scoreStyle.Render(fmt.Sprintf("score %d", m.engine.Score())))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  deck %d", m.engine.DeckRemaining())))

	if selected := m.engine.Selected(); len(selected) > 0 {
		names := make([]string, len(selected))
		for i, c := range selected {
			names[i] = c.String()
		}
		b.WriteString("  ")
		b.WriteString(previewStyle.Render(strings.Join(names, " ")))
		if hand, ok := m.engine.CurrentHand(); ok {
			b.WriteString(previewStyle.Render(fmt.Sprintf(" = %s (+%d)", hand, hand.Score())))
		}
	}

	b.WriteString("\n")
	if m.engine.IsGameOver() {
		b.WriteString(gameOverStyle.Render(fmt.Sprintf(" GAME OVER  final score %d  press r for a new game ", m.engine.Score())))
	} else if strings.Contains(m.status, "not a hand") || strings.Contains(m.status, "out of reach") {
		b.WriteString(errorStyle.Render(m.status))
	} else {
		b.WriteString(dimStyle.Render(m.status))
	}
	return b.String()
}

// Run starts the TUI over the given engine and blocks until quit
func Run(engine *game.Engine, showEligible bool, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(engine, showEligible, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
