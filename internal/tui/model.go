// Package tui provides the Bubble Tea quote interface.
package tui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/dailyquotes/internal/controller"
	"github.com/verte-zerg/dailyquotes/internal/i18n"
	"github.com/verte-zerg/dailyquotes/internal/prefs"
	"github.com/verte-zerg/dailyquotes/internal/schedule"
	"github.com/verte-zerg/dailyquotes/internal/surface"
)

// Model implements the Bubble Tea quote UI.
type Model struct {
	ctrl     *controller.Controller
	sched    *schedule.Tea
	buf      *surface.Buffer
	settings prefs.Settings
	now      func() time.Time

	dark   bool
	styles styles
	keys   keyMap
	help   help.Model
	cursor cursor.Model
	notice string

	width  int
	height int
}

// NewModel constructs the quote UI. ctrl must draw onto buf and schedule on sched.
func NewModel(ctrl *controller.Controller, sched *schedule.Tea, buf *surface.Buffer, settings prefs.Settings, dark bool) *Model {
	m := &Model{
		ctrl:     ctrl,
		sched:    sched,
		buf:      buf,
		settings: settings,
		now:      time.Now,
		dark:     dark,
		help:     help.New(),
		cursor:   cursor.New(),
	}
	m.cursor.SetChar(" ")
	m.applyTheme()
	m.applyLanguage()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.ctrl.Start()
	return tea.Batch(m.cursor.Focus(), m.sched.Flush())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case schedule.FireMsg:
		m.sched.Handle(msg)
		return m, m.sched.Flush()
	case tea.BlurMsg:
		m.ctrl.Stop()
		return m, m.updateCursor(msg)
	case tea.FocusMsg:
		m.ctrl.Resume()
		return m, tea.Batch(m.updateCursor(msg), m.sched.Flush())
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	default:
		return m, m.updateCursor(msg)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	body := m.renderQuote()
	if m.width == 0 || m.height == 0 {
		return body
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	content := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center).Render(m.renderQuoteWrapped(contentWidth))
	header := m.renderHeader()
	footer := m.renderFooter()
	bg := lipgloss.WithWhitespaceBackground(m.styles.background)
	if m.height < 5 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content, bg)
	}
	bodyHeight := m.height - 3
	top := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, header, bg)
	middle := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content, bg)
	bottom := lipgloss.Place(m.width, 2, lipgloss.Center, lipgloss.Bottom, footer, bg)
	return top + "\n" + middle + "\n" + bottom
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctx := context.Background()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Stop()
		return tea.Quit
	case key.Matches(msg, m.keys.Animations):
		m.report(m.ctrl.SetAnimationEnabled(ctx, !m.ctrl.AnimationEnabled()))
	case key.Matches(msg, m.keys.Theme):
		m.dark = !m.dark
		m.applyTheme()
		m.report(prefs.SaveDarkTheme(ctx, m.settings, m.dark))
	case key.Matches(msg, m.keys.Language):
		m.report(m.ctrl.SetLanguage(ctx, m.ctrl.Language().Next()))
		m.applyLanguage()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m.sched.Flush()
}

func (m *Model) updateCursor(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	return cmd
}

func (m *Model) report(err error) {
	if err == nil {
		m.notice = ""
		return
	}
	m.notice = err.Error()
	log.Printf("failed to save preference: %v", err)
}

func (m *Model) applyTheme() {
	m.styles = newStyles(m.dark)
	m.cursor.Style = m.styles.cursor
	m.cursor.TextStyle = m.styles.quote
	m.help.Styles.ShortKey = m.styles.helpKey
	m.help.Styles.ShortDesc = m.styles.helpDesc
	m.help.Styles.ShortSeparator = m.styles.helpDesc
	m.help.Styles.FullKey = m.styles.helpKey
	m.help.Styles.FullDesc = m.styles.helpDesc
	m.help.Styles.FullSeparator = m.styles.helpDesc
}

func (m *Model) applyLanguage() {
	m.keys = newKeyMap(i18n.For(m.ctrl.Language()))
}

func (m *Model) renderQuote() string {
	return m.renderQuoteWrapped(0)
}

func (m *Model) renderQuoteWrapped(width int) string {
	labels := i18n.For(m.ctrl.Language())
	if m.ctrl.Empty() {
		return m.styles.muted.Render(labels.NoQuotes)
	}
	style := m.styles.quote
	if !m.buf.ContainerVisible() {
		style = m.styles.faded
	}
	raw := wrapQuote(m.buf.Text(), width)
	fits := cursorFits(raw, width)
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = style.Render(line)
	}
	if m.buf.CursorVisible() {
		if fits {
			lines[len(lines)-1] += m.cursor.View()
		} else {
			lines = append(lines, m.cursor.View())
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderHeader() string {
	labels := i18n.For(m.ctrl.Language())
	date := i18n.FormatDate(m.now(), m.ctrl.Language())
	return m.styles.title.Render(labels.DailyQuote) + m.styles.muted.Render("  "+date)
}

func (m *Model) renderFooter() string {
	labels := i18n.For(m.ctrl.Language())
	toggles := []string{
		m.styles.toggle(m.ctrl.AnimationEnabled()).Render(labels.Animations),
		m.styles.toggle(m.dark).Render(labels.Black),
		m.styles.accent.Render(strings.ToUpper(string(m.ctrl.Language()))),
	}
	line := strings.Join(toggles, m.styles.muted.Render("  |  "))
	if m.notice != "" {
		line += "  " + m.styles.notice.Render(m.notice)
	}
	return line + "\n" + m.help.View(m.keys)
}
