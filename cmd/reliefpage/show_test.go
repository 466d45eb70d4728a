package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShowCommand_DefaultPage(t *testing.T) {
	stdout, err := executeCommand(newTestApp(t), "show", "--width", "90")
	require.NoError(t, err)

	require.Contains(t, stdout, "W.I.S Accountancy")
	require.Contains(t, stdout, "Community First Main")
	require.Contains(t, stdout, "Previous Mission Group Photo")
}

func TestShowCommand_ContentFile(t *testing.T) {
	path := writeContentFile(t, "page.yaml", sampleContent)

	stdout, err := executeCommand(newTestApp(t), "show", "--content", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "Sample Org")
	require.Contains(t, stdout, "[2] Second mission")
}

func TestShowCommand_JSONOutput(t *testing.T) {
	stdout, err := executeCommand(newTestApp(t), "show", "--json")
	require.NoError(t, err)

	var payload struct {
		Organisation struct {
			Name string `json:"name"`
			Dial string `json:"dial"`
		} `json:"organisation"`
		Gallery struct {
			Images []struct {
				Position string `json:"position"`
				Source   string `json:"src"`
			} `json:"images"`
		} `json:"gallery"`
		CopyTargets []struct {
			ID string `json:"id"`
		} `json:"copy_targets"`
		Widgets map[string]bool `json:"widgets"`
	}

	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "W.I.S Accountancy", payload.Organisation.Name)
	require.Equal(t, "0768802085", payload.Organisation.Dial)
	require.Len(t, payload.Gallery.Images, 7)
	require.Equal(t, "1 / 7", payload.Gallery.Images[0].Position)
	require.Equal(t, "7 / 7", payload.Gallery.Images[6].Position)
	require.Equal(t, "/images/csr/csr-7.jpg", payload.Gallery.Images[6].Source)
	require.NotEmpty(t, payload.CopyTargets)
	require.Equal(t, "org.address", payload.CopyTargets[0].ID)
	require.True(t, payload.Widgets["counter"])
}

func TestShowCommand_MissingContent(t *testing.T) {
	_, err := executeCommand(newTestApp(t), "show", "--content", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "show failed while loading page content")
	require.Contains(t, err.Error(), "Suggestion: Check the --content path")
}
