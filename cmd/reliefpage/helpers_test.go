package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reliefpage/internal/infrastructure/clipboard"
)

const sampleContent = `version: "1.0"
title: "Sample Relief"
organisation:
  name: "Sample Org"
  phone: "011 222 3333"
  address: "1 High Street, Colombo"
hero:
  headline: "Help families tonight"
donations:
  - title: "Drop-Off"
  - title: "Financial Aid"
gallery:
  title: "Past Missions"
  images:
    - src: one.jpg
      alt: First mission
    - src: two.jpg
      alt: Second mission
`

func newTestApp(t *testing.T) *AppContext {
	t.Helper()
	app := newAppContext()
	app.Clipboard = clipboard.NewMemory()
	app.IsTerminal = func(io.Writer) bool { return false }
	app.RunProgram = func(context.Context, tea.Model, func(func(tea.Msg))) (tea.Model, error) {
		t.Fatal("interactive program started in a non-interactive test")
		return nil, nil
	}
	return app
}

func executeCommand(app *AppContext, args ...string) (string, error) {
	root := newRootCmd(app)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func writeContentFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
