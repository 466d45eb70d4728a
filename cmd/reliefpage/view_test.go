package main

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reliefpage/internal/tui/landing"
)

func TestViewCommand_NonTerminalPrintsPage(t *testing.T) {
	stdout, err := executeCommand(newTestApp(t), "view")
	require.NoError(t, err)
	require.Contains(t, stdout, "W.I.S Accountancy")
}

func TestRootCommand_DefaultsToView(t *testing.T) {
	path := writeContentFile(t, "page.yaml", sampleContent)

	stdout, err := executeCommand(newTestApp(t), "--content", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "Sample Org")
}

func TestViewCommand_WatchNeedsContent(t *testing.T) {
	_, err := executeCommand(newTestApp(t), "view", "--watch")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--watch needs a content file")
}

func TestViewCommand_InvalidLogFormat(t *testing.T) {
	_, err := executeCommand(newTestApp(t), "view", "--log-format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "configuring logging")
}

func TestViewCommand_RunsInteractiveModel(t *testing.T) {
	app := newTestApp(t)
	app.IsTerminal = func(io.Writer) bool { return true }

	var final landing.Model
	app.RunProgram = func(_ context.Context, model tea.Model, ready func(func(tea.Msg))) (tea.Model, error) {
		ready(func(tea.Msg) {})

		next, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})

		m, ok := next.(landing.Model)
		require.True(t, ok)
		require.True(t, m.Controller().IsOpen())
		require.False(t, m.ScrollEnabled())

		final = m
		return m, nil
	}

	_, err := executeCommand(app, "view", "--style", "notty")
	require.NoError(t, err)

	// Exiting with the lightbox open still releases the scroll lock.
	require.True(t, final.ScrollEnabled())
	require.False(t, final.Controller().IsOpen())
}

func TestViewCommand_WatchDeliversReloads(t *testing.T) {
	path := writeContentFile(t, "page.yaml", sampleContent)

	app := newTestApp(t)
	app.IsTerminal = func(io.Writer) bool { return true }
	app.RunProgram = func(_ context.Context, model tea.Model, ready func(func(tea.Msg))) (tea.Model, error) {
		msgs := make(chan tea.Msg, 4)
		ready(func(msg tea.Msg) { msgs <- msg })

		updated := strings.Replace(sampleContent, "Sample Org", "Renamed Org", 1)
		require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

		select {
		case msg := <-msgs:
			reload, ok := msg.(landing.ContentReloadedMsg)
			require.True(t, ok)
			require.NoError(t, reload.Err)
			require.Equal(t, "Renamed Org", reload.Page.Org.Name)

			next, _ := model.Update(reload)
			return next, nil
		case <-time.After(5 * time.Second):
			t.Fatal("no reload delivered")
			return model, nil
		}
	}

	_, err := executeCommand(app, "view", "--content", path, "--watch", "--style", "notty")
	require.NoError(t, err)
}
