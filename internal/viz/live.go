package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/integro/internal/linalg"
	"github.com/san-kum/integro/internal/ode"
)

const (
	historyCapacity = 400
	stepsPerFrame   = 5
	frameRate       = 30
)

type TickMsg time.Time

// Live is a bubbletea model that steps an integration in real time and
// charts the first state component.
type Live struct {
	name    string
	sys     ode.System
	stepper ode.Stepper
	h       float64

	t       float64
	y       linalg.Vector
	initial linalg.Vector
	history []float64
	running bool
	err     error
}

func NewLive(name string, sys ode.System, stepper ode.Stepper, y0 linalg.Vector, h float64) Live {
	return Live{
		name:    name,
		sys:     sys,
		stepper: stepper,
		h:       h,
		y:       y0.Clone(),
		initial: y0.Clone(),
		history: make([]float64, 0, historyCapacity),
		running: true,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Live) Init() tea.Cmd {
	return tick()
}

func (m Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.t = 0
			m.y = m.initial.Clone()
			m.history = m.history[:0]
			m.err = nil
			m.running = true
		}
		return m, nil

	case TickMsg:
		if m.running && m.err == nil {
			for i := 0; i < stepsPerFrame; i++ {
				next, err := m.stepper.Step(m.sys, m.t, m.y, m.h)
				if err != nil {
					m.err = err
					m.running = false
					break
				}
				m.t += m.h
				m.y = next

				m.history = append(m.history, m.y[0])
				if len(m.history) > historyCapacity {
					m.history = m.history[1:]
				}
			}
		}
		return m, tick()
	}

	return m, nil
}

func (m Live) View() string {
	s := HeaderStyle.Render(fmt.Sprintf("integro live: %s", m.name)) + "\n"

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
		)
		s += GraphStyle.Render(graph) + "\n"
	} else {
		s += SubtleStyle.Render("collecting samples...") + "\n"
	}

	s += KV("t", fmt.Sprintf("%.3f", m.t)) + "\n"
	s += KV("state", fmt.Sprintf("%.5v", []float64(m.y))) + "\n"

	status := "running"
	if !m.running {
		status = "paused"
	}
	s += KV("status", status) + "\n"

	if m.err != nil {
		s += WarnStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	}

	s += HelpStyle.Render("space pause · r reset · q quit")
	return s
}

// RunLive starts the live view and blocks until the user quits.
func RunLive(name string, sys ode.System, stepper ode.Stepper, y0 linalg.Vector, h float64) error {
	p := tea.NewProgram(NewLive(name, sys, stepper, y0, h))
	_, err := p.Run()
	return err
}
