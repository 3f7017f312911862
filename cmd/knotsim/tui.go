package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/katalvlaran/gridknot/circuit"
	"github.com/katalvlaran/gridknot/griddiagram"
	"github.com/katalvlaran/gridknot/knot"
)

const (
	frameRate  = 30  // ticks per second
	historyCap = 120 // curve-length samples kept for the chart
	graphH     = 8
	graphW     = 56
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(15)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	gridStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Padding(0, 2)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).MarginTop(1)
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// model drives the live relaxation view: one Relax batch per tick, a
// curve-length history for the chart, and pause/reset controls.
type model struct {
	diagram  *griddiagram.Diagram
	circ     *circuit.Circuit
	k        *knot.Knot
	perFrame int

	steps   int
	paused  bool
	history []float64
}

func newModel(d *griddiagram.Diagram, c *circuit.Circuit, k *knot.Knot, perFrame int) model {
	if perFrame < 1 {
		perFrame = 1
	}

	return model{
		diagram:  d,
		circ:     c,
		k:        k,
		perFrame: perFrame,
		history:  []float64{k.Path().Length()},
	}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.k.Reset()
			m.steps = 0
			m.history = []float64{m.k.Path().Length()}
		}
		return m, nil

	case tickMsg:
		if !m.paused {
			for i := 0; i < m.perFrame; i++ {
				m.k.Relax()
			}
			m.steps += m.perFrame
			m.history = append(m.history, m.k.Path().Length())
			if len(m.history) > historyCap {
				m.history = m.history[len(m.history)-historyCap:]
			}
		}
		return m, tick()
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	title := "knotsim - grid diagram relaxation"
	if m.paused {
		title += "  " + pausedStyle.Render("[paused]")
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	stats := strings.Join([]string{
		statRow("resolution", fmt.Sprintf("%d", m.circ.Resolution())),
		statRow("crossings", fmt.Sprintf("%d", m.circ.Crossings())),
		statRow("vertices", fmt.Sprintf("%d", m.k.Len())),
		statRow("steps", fmt.Sprintf("%d", m.steps)),
		statRow("curve length", fmt.Sprintf("%.4f", m.k.Path().Length())),
		statRow("avg segment", fmt.Sprintf("%.4f", m.k.Path().AverageSegmentLength())),
		statRow("min clearance", fmt.Sprintf("%.4f", m.k.MinClearance())),
	}, "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		stats,
		gridStyle.Render(m.diagram.String()),
	))

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(graphH),
			asciigraph.Width(graphW),
			asciigraph.Precision(3),
			asciigraph.Caption("curve length"),
		)
		b.WriteString("\n" + graphStyle.Render(chart))
	}

	b.WriteString("\n" + helpStyle.Render("space pause | r reset | q quit"))

	return b.String()
}

func statRow(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
