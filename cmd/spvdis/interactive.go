package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// chromeHeight is the number of rows taken by the title and the footer.
const chromeHeight = 2

type viewerModel struct {
	filename string
	content  string
	lines    int
	viewport viewport.Model
	ready    bool
}

func newViewerModel(filename string, lines []string) *viewerModel {
	p := newPalette(true)
	colored := make([]string, len(lines))
	for i, line := range lines {
		colored[i] = p.line(line)
	}
	return &viewerModel{
		filename: filename,
		content:  strings.Join(colored, "\n"),
		lines:    len(lines),
	}
}

func (m *viewerModel) Init() tea.Cmd {
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		height := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *viewerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	title := titleStyle.Render(fmt.Sprintf("spvdis %s", m.filename))
	footer := helpStyle.Render(fmt.Sprintf("%d lines  %3.f%%  j/k scroll  g/G top/bottom  q quit",
		m.lines, m.viewport.ScrollPercent()*100))
	return title + "\n" + m.viewport.View() + "\n" + footer
}

func runInteractive(filename string, lines []string) error {
	p := tea.NewProgram(newViewerModel(filename, lines), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
