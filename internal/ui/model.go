package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/jadual/internal/location"
	"github.com/faizmokh/jadual/internal/schedule"
)

const (
	defaultWidth = 80
	visibleDays  = 7
)

// Options are the collaborators NewModel needs.
type Options struct {
	Repo      schedule.Repository
	Selection schedule.Selection
	// Watcher is optional. When set, its first fix is shown in the header.
	Watcher location.Watcher
	Logger  *slog.Logger
}

// Model owns Bubble Tea state for the dashboard.
type Model struct {
	ctx     context.Context
	repo    schedule.Repository
	watcher location.Watcher
	logger  *slog.Logger

	selection schedule.Selection
	board     schedule.Board
	view      view

	location   string
	statusLine string
	errorLine  string

	width int
	keys  keyMap
	help  help.Model
}

type view uint8

const (
	viewTasks view = iota
	viewClock
)

type locationMsg struct {
	result location.Result
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sel := opts.Selection
	if _, err := schedule.ParseDay(string(sel.Day)); err != nil {
		sel.Day = schedule.DefaultDay
	}
	if sel.Language == "" {
		sel.Language = schedule.DefaultLanguage
	}

	m := Model{
		ctx:       ctx,
		repo:      opts.Repo,
		watcher:   opts.Watcher,
		logger:    logger,
		selection: sel,
		width:     defaultWidth,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	m.rebuild()
	return m
}

// Init starts waiting for a location fix when a watcher is configured.
func (m Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.awaitLocationCmd()
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case locationMsg:
		return m.handleLocation(msg)
	default:
		return m, nil
	}
}

// Selection returns the current day and language.
func (m Model) Selection() schedule.Selection {
	return m.selection
}

// Board returns the data currently rendered.
func (m Model) Board() schedule.Board {
	return m.board
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.PrevDay):
		return m.gotoDay(m.selection.Day.AddDays(-1))
	case key.Matches(msg, m.keys.NextDay):
		return m.gotoDay(m.selection.Day.AddDays(1))
	case key.Matches(msg, m.keys.PrevMonth):
		return m.shiftMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		return m.shiftMonth(1)
	case key.Matches(msg, m.keys.Reset):
		return m.gotoDay(schedule.DefaultDay)
	case key.Matches(msg, m.keys.Language):
		m.selection.Language = m.selection.Language.Next()
		m.rebuild()
		m.statusLine = m.selection.Language.Label()
		m.errorLine = ""
		return m, nil
	case key.Matches(msg, m.keys.Clock):
		if m.view == viewClock {
			m.view = viewTasks
		} else {
			m.view = viewClock
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

func (m Model) gotoDay(day schedule.Day) (tea.Model, tea.Cmd) {
	m.selection.Day = day
	m.rebuild()
	m.errorLine = ""
	if m.board.Empty() {
		m.statusLine = fmt.Sprintf("%s has no tasks.", day)
	} else {
		m.statusLine = fmt.Sprintf("Loaded %d task%s.", len(m.board.Tasks), plural(len(m.board.Tasks)))
	}
	return m, nil
}

func (m Model) shiftMonth(delta int) (tea.Model, tea.Cmd) {
	year, month := schedule.ShiftMonth(m.board.Year, m.board.Month, delta)
	days := schedule.GenerateDays(year, month)
	if len(days) == 0 {
		m.errorLine = fmt.Sprintf("Cannot show %04d-%02d.", year, month)
		return m, nil
	}
	return m.gotoDay(days[0])
}

func (m *Model) rebuild() {
	year, month, ok := schedule.MonthOf(m.selection.Day)
	if !ok {
		m.selection.Day = schedule.DefaultDay
		year, month, _ = schedule.MonthOf(m.selection.Day)
	}
	m.board = schedule.BuildBoard(m.repo, m.selection, year, month)
	m.logger.DebugContext(m.ctx, "board rebuilt",
		"day", m.selection.Day,
		"lang", m.selection.Language,
		"tasks", len(m.board.Tasks),
	)
}

func (m Model) handleLocation(msg locationMsg) (tea.Model, tea.Cmd) {
	if msg.result.Err != nil {
		if !errors.Is(msg.result.Err, location.ErrUnavailable) {
			m.errorLine = fmt.Sprintf("Location failed: %v", msg.result.Err)
		}
		m.logger.DebugContext(m.ctx, "location unavailable", "error", msg.result.Err)
		return m, nil
	}
	m.location = msg.result.Fix.String()
	m.logger.DebugContext(m.ctx, "location received", "fix", m.location)
	return m, nil
}

func (m Model) awaitLocationCmd() tea.Cmd {
	ctx := m.ctx
	watcher := m.watcher
	return func() tea.Msg {
		return locationMsg{result: <-location.Await(ctx, watcher)}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderDayStrip())
	b.WriteString("\n\n")

	if m.view == viewClock {
		b.WriteString(m.renderClock())
	} else {
		b.WriteString(m.renderTasks())
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) renderHeader() string {
	lang := m.selection.Language
	title := m.board.Heading
	if m.view == viewClock {
		title = schedule.Text(lang, schedule.MsgSelectDate)
	}

	parts := []string{
		headerStyle.Render(title),
		mutedStyle.Render(fmt.Sprintf("%04d-%02d", m.board.Year, m.board.Month)),
		mutedStyle.Render(lang.Label()),
	}
	if m.location != "" {
		parts = append(parts, mutedStyle.Render("@ "+m.location))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderDayStrip() string {
	cells := m.board.Days
	if len(cells) == 0 {
		return ""
	}

	start, end := window(m.board.SelectedIndex(), len(cells), visibleDays)
	rendered := make([]string, 0, end-start)
	for _, cell := range cells[start:end] {
		label := cell.Day.DayOfMonth() + "\n" + cell.Day.Weekday(m.selection.Language)
		rendered = append(rendered, dayCellStyle(cell).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderTasks() string {
	if m.board.Empty() {
		return mutedStyle.Render(m.board.Placeholder) + "\n"
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for _, task := range m.board.Tasks {
		content := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(task.Title),
			task.Time,
			task.Description,
		)
		card := cardStyle.Width(width).Background(tierColor(task.Tier)).Render(content)
		b.WriteString(card)
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) renderClock() string {
	lang := m.selection.Language

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf(schedule.Text(lang, schedule.MsgClockHeading), m.selection.Day)))
	b.WriteString("\n\n")

	tasks := schedule.TasksFor(m.repo, m.selection.Day)
	if len(tasks) == 0 {
		b.WriteString(mutedStyle.Italic(true).Render(schedule.Text(lang, schedule.MsgNoClockTasks)))
		b.WriteByte('\n')
		return b.String()
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	for _, task := range tasks {
		line := schedule.ClockEntry(task, lang)
		gap := width - lipgloss.Width(line.Title) - lipgloss.Width(line.Time) - 2
		if gap < 1 {
			gap = 1
		}
		b.WriteString(clockRowStyle.Render(line.Title + strings.Repeat(" ", gap) + line.Time))
		b.WriteByte('\n')
	}
	return b.String()
}

// window returns the [start, end) slice bounds of size n around selected.
func window(selected, total, n int) (int, int) {
	if total <= n {
		return 0, total
	}
	if selected < 0 {
		selected = 0
	}
	start := selected - n/2
	if start < 0 {
		start = 0
	}
	end := start + n
	if end > total {
		end = total
		start = end - n
	}
	return start, end
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
