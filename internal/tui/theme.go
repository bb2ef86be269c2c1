package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	text       lipgloss.Color
	muted      lipgloss.Color
	faded      lipgloss.Color
	accent     lipgloss.Color
	notice     lipgloss.Color
	background lipgloss.TerminalColor
}

var (
	darkPalette = palette{
		text:       lipgloss.Color("#F0F0F0"),
		muted:      lipgloss.Color("#6E6E6E"),
		faded:      lipgloss.Color("#3A3A3A"),
		accent:     lipgloss.Color("#C89A3A"),
		notice:     lipgloss.Color("#FF4D4F"),
		background: lipgloss.NoColor{},
	}
	lightPalette = palette{
		text:       lipgloss.Color("#1E1E1E"),
		muted:      lipgloss.Color("#8C8C8C"),
		faded:      lipgloss.Color("#D6D6D0"),
		accent:     lipgloss.Color("#9A6F1E"),
		notice:     lipgloss.Color("#C62828"),
		background: lipgloss.Color("#F5F5F0"),
	}
)

type styles struct {
	quote      lipgloss.Style
	faded      lipgloss.Style
	muted      lipgloss.Style
	title      lipgloss.Style
	accent     lipgloss.Style
	cursor     lipgloss.Style
	notice     lipgloss.Style
	toggleOn   lipgloss.Style
	toggleOff  lipgloss.Style
	helpKey    lipgloss.Style
	helpDesc   lipgloss.Style
	background lipgloss.TerminalColor
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	base := lipgloss.NewStyle()
	if _, none := p.background.(lipgloss.NoColor); !none {
		base = base.Background(p.background)
	}
	return styles{
		quote:      base.Foreground(p.text),
		faded:      base.Foreground(p.faded),
		muted:      base.Foreground(p.muted),
		title:      base.Foreground(p.text).Bold(true),
		accent:     base.Foreground(p.accent),
		cursor:     base.Foreground(p.accent),
		notice:     base.Foreground(p.notice),
		toggleOn:   base.Foreground(p.text),
		toggleOff:  base.Foreground(p.muted).Strikethrough(true),
		helpKey:    base.Foreground(p.accent),
		helpDesc:   base.Foreground(p.muted),
		background: p.background,
	}
}

func (s styles) toggle(on bool) lipgloss.Style {
	if on {
		return s.toggleOn
	}
	return s.toggleOff
}
