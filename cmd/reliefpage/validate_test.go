package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Valid(t *testing.T) {
	path := writeContentFile(t, "page.yaml", sampleContent)

	stdout, err := executeCommand(newTestApp(t), "validate", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "is valid")
	require.Contains(t, stdout, "donation options: 2")
	require.Contains(t, stdout, "gallery images:   2")
	require.Contains(t, stdout, "copy targets:     2")
}

func TestValidateCommand_InvalidImage(t *testing.T) {
	body := `version: "1.0"
title: "Broken"
organisation:
  name: "Org"
hero:
  headline: "Help"
donations:
  - title: "Drop-Off"
gallery:
  images:
    - src: notes.txt
      alt: Not an image
`
	path := writeContentFile(t, "broken.yaml", body)

	_, err := executeCommand(newTestApp(t), "validate", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "validate failed while validating")
	require.Contains(t, err.Error(), "reliefpage validate <file>")
}

func TestValidateCommand_UnknownField(t *testing.T) {
	path := writeContentFile(t, "typo.yaml", sampleContent+"colour: blue\n")

	_, err := executeCommand(newTestApp(t), "validate", path)
	require.Error(t, err)
}

func TestValidateCommand_MissingFile(t *testing.T) {
	_, err := executeCommand(newTestApp(t), "validate", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "content file does not exist")
}

func TestValidateCommand_RequiresArgument(t *testing.T) {
	_, err := executeCommand(newTestApp(t), "validate")
	require.Error(t, err)
}
