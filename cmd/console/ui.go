package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/whiskerworks/adventure-engine/internal/delivery"
	"github.com/whiskerworks/adventure-engine/internal/worker"
	"github.com/whiskerworks/adventure-engine/pkg/actor"
	"github.com/whiskerworks/adventure-engine/pkg/outcome"
)

const tickTimeout = 5 * time.Second

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	worker   *worker.Worker
	partyID  uuid.UUID
	cats     []*actor.Cat
	viewport viewport.Model
	history  []string
	ready    bool
	width    int
	height   int
	err      error
}

type tickResultMsg struct {
	out outcome.Outcome
	err error
}

func newConsoleUI(w *worker.Worker, partyID uuid.UUID, cats []*actor.Cat) *ConsoleUI {
	return &ConsoleUI{
		worker:  w,
		partyID: partyID,
		cats:    cats,
	}
}

func (ui *ConsoleUI) Init() tea.Cmd {
	return ui.tick()
}

func (ui *ConsoleUI) tick() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
		defer cancel()
		out, err := ui.worker.Tick(ctx, ui.partyID)
		return tickResultMsg{out: out, err: err}
	}
}

func (ui *ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ui.width = msg.Width
		ui.height = msg.Height
		headerHeight := lipgloss.Height(ui.header())
		footerHeight := 1
		if !ui.ready {
			ui.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			ui.ready = true
		} else {
			ui.viewport.Width = msg.Width
			ui.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		ui.refresh()
		return ui, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return ui, tea.Quit
		case "enter", " ":
			return ui, ui.tick()
		}

	case tickResultMsg:
		if msg.err != nil {
			ui.err = msg.err
		} else {
			ui.err = nil
			ui.history = append(ui.history, delivery.Render(msg.out))
		}
		ui.refresh()
		return ui, nil
	}

	var cmd tea.Cmd
	ui.viewport, cmd = ui.viewport.Update(msg)
	return ui, cmd
}

func (ui *ConsoleUI) refresh() {
	if !ui.ready {
		return
	}
	content := strings.Join(ui.history, "\n\n")
	if ui.err != nil {
		content += "\n\n" + errorStyle.Render(fmt.Sprintf("Error: %v", ui.err))
	}
	ui.viewport.SetContent(content)
	ui.viewport.GotoBottom()
}

func (ui *ConsoleUI) header() string {
	names := make([]string, len(ui.cats))
	for i, cat := range ui.cats {
		names[i] = cat.Name
	}
	return titleStyle.Render("🐱 Adventure Party: "+strings.Join(names, ", ")) + "\n"
}

func (ui *ConsoleUI) View() string {
	if !ui.ready {
		return "Setting off..."
	}
	help := helpStyle.Render("enter/space: next event • q: quit")
	return ui.header() + ui.viewport.View() + "\n" + help
}
