package delivery

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/whiskerworks/adventure-engine/pkg/outcome"
)

const renderWidth = 72

var (
	fieldNameStyle = lipgloss.NewStyle().Bold(true)
	inlineStyle    = lipgloss.NewStyle().MarginRight(4)
)

// Render formats an outcome for a terminal: the narration text followed by
// the panel, if any, drawn as a bordered box in the panel's color.
func Render(out outcome.Outcome) string {
	var parts []string
	if out.Text != "" {
		parts = append(parts, wordwrap.String(out.Text, renderWidth))
	}
	if out.Panel != nil {
		parts = append(parts, renderPanel(out.Panel))
	}
	return strings.Join(parts, "\n")
}

func renderPanel(p *outcome.Panel) string {
	color := lipgloss.Color(p.Color)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(color)

	var body []string
	body = append(body, titleStyle.Render(p.Title))
	if p.Description != "" {
		body = append(body, wordwrap.String(p.Description, renderWidth-4))
	}

	// Consecutive inline fields sit side by side; block fields get their
	// own rows.
	var inline []string
	flush := func() {
		if len(inline) > 0 {
			body = append(body, lipgloss.JoinHorizontal(lipgloss.Top, inline...))
			inline = nil
		}
	}
	for _, f := range p.Fields {
		rendered := fieldNameStyle.Render(f.Name) + "\n" +
			wordwrap.String(f.Value, renderWidth-4)
		if f.Inline {
			inline = append(inline, inlineStyle.Render(rendered))
			continue
		}
		flush()
		body = append(body, rendered)
	}
	flush()

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(renderWidth)
	return box.Render(strings.Join(body, "\n\n"))
}
