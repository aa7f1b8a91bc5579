package main

import (
	"errors"
	"testing"

	"rental-server/seed"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeSteps(ran *[]string, failAt string) []seed.Step {
	var steps []seed.Step
	for _, name := range []string{"Dropping tables", "Creating tables", "Inserting users"} {
		name := name
		steps = append(steps, seed.Step{Name: name, Run: func() error {
			*ran = append(*ran, name)
			if name == failAt {
				return errors.New("boom")
			}
			return nil
		}})
	}
	return steps
}

// drive feeds cmd results back into the model until no command remains.
func drive(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()
	for i := 0; cmd != nil && i < 20; i++ {
		msg := cmd()
		next, nextCmd := m.Update(msg)
		m = next.(model)
		cmd = nextCmd
	}
	return m
}

func TestSeedModelRunsAllSteps(t *testing.T) {
	var ran []string
	m := initialModel("postgres localhost/rentals", fakeSteps(&ran, ""), false)
	assert.Contains(t, m.View(), "Drop and reseed")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m = drive(t, next.(model), cmd)

	assert.Equal(t, stageComplete, m.stage)
	assert.Equal(t, []string{"Dropping tables", "Creating tables", "Inserting users"}, ran)
	assert.Contains(t, m.View(), "Database seeded")
}

func TestSeedModelStopsOnFailure(t *testing.T) {
	var ran []string
	m := initialModel("mysql db/rentals", fakeSteps(&ran, "Creating tables"), true)

	m = drive(t, m, m.Init())

	assert.Equal(t, stageFailed, m.stage)
	assert.Equal(t, []string{"Dropping tables", "Creating tables"}, ran)
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "Creating tables: boom")
}

func TestSeedModelQuit(t *testing.T) {
	m := initialModel("target", nil, false)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.True(t, next.(model).quitting)
	assert.Empty(t, next.(model).View())
}
