package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupHome points CELLCHECK_HOME at a temp directory holding a config
// that targets a fake checker script and disables history recording.
func setupHome(t *testing.T, checkerScript string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake checker scripts require a POSIX shell")
	}

	home := t.TempDir()
	t.Setenv("CELLCHECK_HOME", home)

	checkerPath := filepath.Join(home, "fake-mypy")
	require.NoError(t, os.WriteFile(checkerPath, []byte("#!/bin/sh\n"+checkerScript), 0755))

	config := "checker_path: " + checkerPath + "\nhistory:\n  enabled: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "cellcheck.yaml"), []byte(config), 0644))
}

func TestCheckCommand_CleanCell(t *testing.T) {
	setupHome(t, "exit 0\n")

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"check", "--cell", "x: int = 1"})

	require.NoError(t, root.Execute())
	assert.Empty(t, out.String(), "a clean cell should print nothing")
}

func TestCheckCommand_Findings(t *testing.T) {
	setupHome(t, `printf 'error: bad assignment\n'
exit 1
`)

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"check", "--cell", `x: int = "oops"`})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 1")
	assert.Contains(t, out.String(), "Type checking report:")
	assert.Contains(t, out.String(), "error: bad assignment")
}

func TestCheckCommand_MissingChecker(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CELLCHECK_HOME", home)
	config := "checker_path: cellcheck-no-such-binary\nhistory:\n  enabled: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "cellcheck.yaml"), []byte(config), 0644))

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"check", "--cell", "x = 1"})

	require.NoError(t, root.Execute(), "a missing checker is reported, not raised")
	assert.Contains(t, out.String(), "mypy")
	assert.Contains(t, out.String(), "pip install mypy")
}

func TestCheckCommand_ForwardsOptionsAfterDash(t *testing.T) {
	setupHome(t, `for arg in "$@"; do printf '%s\n' "$arg"; done
exit 0
`)

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"check", "--cell", "x = 1", "--", "--strict", "extra"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "-c\nx = 1\n--strict\nextra\n")
}

func TestReadCell(t *testing.T) {
	cellFile := filepath.Join(t.TempDir(), "cell.py")
	require.NoError(t, os.WriteFile(cellFile, []byte("x = 1\n"), 0644))

	tests := []struct {
		name     string
		fileArgs []string
		inline   string
		stdin    string
		want     string
		wantErr  bool
	}{
		{"inline flag", nil, "y = 2", "", "y = 2", false},
		{"file argument", []string{cellFile}, "", "", "x = 1\n", false},
		{"stdin fallback", nil, "", "z = 3\n", "z = 3\n", false},
		{"dash reads stdin", []string{"-"}, "", "w = 4\n", "w = 4\n", false},
		{"inline plus file conflicts", []string{cellFile}, "y = 2", "", "", true},
		{"too many files", []string{cellFile, cellFile}, "", "", "", true},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.py")}, "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readCell(tt.fileArgs, tt.inline, strings.NewReader(tt.stdin))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
