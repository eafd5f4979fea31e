package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/averbraeck/djutils-sub014/dump"
	"github.com/averbraeck/djutils-sub014/serial"
	"github.com/averbraeck/djutils-sub014/serial/endian"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type dumpModel struct {
	err      error
	viewport viewport.Model
	content  string
	status   string
	ready    bool
}

type dumpDoneMsg struct {
	err     error
	content string
	status  string
}

func renderDump(data []byte, catalog serial.Catalog, num endian.Decoder) dumpDoneMsg {
	var buf bytes.Buffer
	d := dump.New(&buf, catalog, num)
	if _, err := d.Write(data); err != nil {
		return dumpDoneMsg{err: err}
	}
	if err := d.Flush(); err != nil {
		return dumpDoneMsg{err: err}
	}
	return dumpDoneMsg{
		content: buf.String(),
		status:  fmt.Sprintf("%d bytes, %d fields", len(data), d.Fields()),
	}
}

func (m *dumpModel) Init() tea.Cmd {
	return nil
}

func (m *dumpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *dumpModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" +
			helpStyle.Render("q: quit")
	}
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("serialdump"))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down, pgup/pgdn: scroll • q: quit"))
	return b.String()
}

func runInteractive(data []byte, catalog serial.Catalog, num endian.Decoder) error {
	res := renderDump(data, catalog, num)
	if res.err != nil {
		return res.err
	}
	m := &dumpModel{content: res.content, status: res.status}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
