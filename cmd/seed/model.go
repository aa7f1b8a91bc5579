package main

import (
	"fmt"
	"strings"
	"time"

	"rental-server/seed"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			PaddingLeft(2)

	currentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type stage int

const (
	stageConfirm stage = iota
	stageRunning
	stageComplete
	stageFailed
)

type stepDoneMsg struct {
	index   int
	err     error
	elapsed time.Duration
}

type model struct {
	stage    stage
	target   string
	steps    []seed.Step
	current  int
	elapsed  []time.Duration
	err      error
	quitting bool
}

func initialModel(target string, steps []seed.Step, confirmed bool) model {
	m := model{
		stage:   stageConfirm,
		target:  target,
		steps:   steps,
		elapsed: make([]time.Duration, len(steps)),
	}
	if confirmed {
		m.stage = stageRunning
	}
	return m
}

func (m model) Init() tea.Cmd {
	if m.stage == stageRunning {
		return m.runStep(0)
	}
	return nil
}

func (m model) runStep(index int) tea.Cmd {
	step := m.steps[index]
	return func() tea.Msg {
		start := time.Now()
		err := step.Run()
		return stepDoneMsg{index: index, err: err, elapsed: time.Since(start)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter", "y":
			switch m.stage {
			case stageConfirm:
				if len(m.steps) == 0 {
					m.stage = stageComplete
					return m, nil
				}
				m.stage = stageRunning
				return m, m.runStep(0)
			case stageComplete, stageFailed:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case stepDoneMsg:
		m.elapsed[msg.index] = msg.elapsed
		if msg.err != nil {
			m.err = fmt.Errorf("%s: %w", m.steps[msg.index].Name, msg.err)
			m.stage = stageFailed
			return m, nil
		}
		m.current = msg.index + 1
		if m.current == len(m.steps) {
			m.stage = stageComplete
			return m, nil
		}
		return m, m.runStep(m.current)
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Rental database seeder"))
	s.WriteString("\n")

	if m.stage == stageConfirm {
		s.WriteString(promptStyle.Render(fmt.Sprintf("Drop and reseed every table in %s?\n", m.target)))
		s.WriteString("\nPress Enter to continue, q to quit\n")
		return s.String()
	}

	for i, step := range m.steps {
		switch {
		case i < m.current:
			s.WriteString(doneStyle.Render(fmt.Sprintf("✓ %s (%s)", step.Name, m.elapsed[i].Round(time.Millisecond))))
		case i == m.current && m.stage == stageRunning:
			s.WriteString(currentStyle.Render("> " + step.Name + "..."))
		case i == m.current && m.stage == stageFailed:
			s.WriteString(errorStyle.Render("✗ " + step.Name))
		default:
			s.WriteString(pendingStyle.Render("  " + step.Name))
		}
		s.WriteString("\n")
	}

	switch m.stage {
	case stageComplete:
		s.WriteString("\n" + successStyle.Render("✓ Database seeded") + "\n")
		s.WriteString("\nPress Enter to exit\n")
	case stageFailed:
		s.WriteString("\n" + errorStyle.Render("✗ "+m.err.Error()) + "\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}
