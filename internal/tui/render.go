package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	dateStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	counterStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1)
	descStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	frameStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	controlStyle     = lipgloss.NewStyle().Bold(true)
	controlOffStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	placeholderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")).Padding(1, 2)
	overlayStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (a *App) View() string {
	switch {
	case a.state == stateLoading:
		return statusStyle.Render("loading apps...")
	case a.jump != nil:
		return a.renderJump()
	case a.historyOpen:
		return a.renderHistory()
	case a.state == stateEmpty:
		return a.renderPlaceholder()
	default:
		return a.renderBrowse()
	}
}

func (a *App) renderPlaceholder() string {
	var b strings.Builder
	b.WriteString(placeholderStyle.Render(a.vm.Title))
	b.WriteString("\n")
	if a.status != "" {
		b.WriteString(statusStyle.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("q quit"))
	return b.String()
}

// renderBrowse draws the named display regions: title, date, description,
// counter, the previous/next controls, and the embedding pane.
func (a *App) renderBrowse() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(a.vm.Title))
	b.WriteString("  ")
	b.WriteString(counterStyle.Render(a.vm.CounterText))
	b.WriteString("\n")
	b.WriteString(dateStyle.Render(a.vm.FormattedDate))
	b.WriteString("\n\n")

	desc := a.vm.Description
	if a.width > 4 {
		desc = lipgloss.NewStyle().Width(a.width - 4).Render(desc)
	}
	b.WriteString(descStyle.Render(desc))
	b.WriteString("\n\n")

	b.WriteString(a.renderFrame())
	b.WriteString("\n")

	prev := "< previous"
	if a.vm.PreviousEnabled {
		prev = controlStyle.Render(prev)
	} else {
		prev = controlOffStyle.Render(prev)
	}
	next := "next >"
	if a.vm.NextEnabled {
		next = controlStyle.Render(next)
	} else {
		next = controlOffStyle.Render(next)
	}
	b.WriteString(prev + "   " + next)
	b.WriteString("\n")

	if a.status != "" {
		b.WriteString(statusStyle.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(strings.Join(a.keys.helpForScope(scopeBrowse), " | ")))
	return b.String()
}

// renderFrame draws the embedding pane. The document is shown raw; this
// surface never interprets what it embeds.
func (a *App) renderFrame() string {
	header := dateStyle.Render(a.vm.ContentReference)
	var body string
	switch {
	case a.frame.loading:
		body = statusStyle.Render("loading...")
	case a.frame.err != nil:
		body = statusStyle.Render("unavailable: " + a.frame.err.Error())
	default:
		body = clipLines(a.frame.content, a.frameHeight())
	}
	w := a.width - 4
	if w < 20 {
		w = 60
	}
	return frameStyle.Width(w).Render(header + "\n" + body)
}

func (a *App) frameHeight() int {
	// leave room for the metadata regions and the footer
	h := a.height - 12
	if h < 3 {
		h = 8
	}
	return h
}

func (a *App) renderJump() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Jump to app"))
	b.WriteString("\n")
	b.WriteString("> " + a.jump.query)
	b.WriteString("\n\n")
	if len(a.jump.filtered) == 0 {
		b.WriteString(statusStyle.Render("no matches"))
		b.WriteString("\n")
	}
	for i, it := range a.jump.filtered {
		prefix := "  "
		if i == a.jump.cursor {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %s", prefix, it.title, dateStyle.Render(it.date))
		if i == a.jump.cursor {
			line = controlStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("enter select | esc cancel"))
	return overlayStyle.Render(b.String())
}

func (a *App) renderHistory() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recently viewed"))
	b.WriteString("\n\n")
	if len(a.historyRows) == 0 {
		b.WriteString(statusStyle.Render("nothing yet"))
		b.WriteString("\n")
	}
	for _, v := range a.historyRows {
		b.WriteString(fmt.Sprintf("%s  %s\n", v.EntryTitle, dateStyle.Render(v.EntryDate)))
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("esc close"))
	return overlayStyle.Render(b.String())
}

func clipLines(s string, max int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	return strings.Join(lines[:max], "\n")
}
