// Copyright © 2025 The icelang-ls authors

package repl

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runReplWithString(t *testing.T, input string) string {
	t.Helper()
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	go func() {
		defer inW.Close() //nolint:errcheck // test cleanup
		_, _ = io.WriteString(inW, input)
	}()

	go func() {
		Run("ice> ", WithStdin(inR), WithStderr(outW))
		inR.Close()  //nolint:errcheck,gosec // test cleanup
		outW.Close() //nolint:errcheck,gosec // test cleanup
	}()

	var output bytes.Buffer
	_, _ = io.Copy(&output, outR)
	outR.Close() //nolint:errcheck,gosec // test cleanup

	return output.String()
}

func TestRun(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "UnusedVariable",
			input:    "set x = 1;\n",
			expected: "'x' is never used",
		},
		{
			name:     "UndeclaredIdentifier",
			input:    "set x = y;\n",
			expected: "Undeclared identifier 'y'",
		},
		{
			name:     "CleanSnippet",
			input:    "print(1);\n",
			expected: "ok",
		},
		{
			name:     "DeclarationEcho",
			input:    "set x = 1; print(x);\n",
			expected: "x: Number",
		},
		{
			name:     "ContinuationLines",
			input:    "function f() {\nreturn 1;\n}\n",
			expected: "'f' is never used",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := runReplWithString(t, tc.input)
			require.Contains(t, got, tc.expected)
		})
	}
}

func TestNeedsMore(t *testing.T) {
	assert.True(t, needsMore([]byte("function f() {")))
	assert.True(t, needsMore([]byte("set x = [1, 2,")))
	assert.False(t, needsMore([]byte("set x = 1;")))
	assert.False(t, needsMore([]byte("function f() { return 1; }")))
	// Delimiters inside strings do not count.
	assert.False(t, needsMore([]byte(`set s = "{[(";`)))
}

func TestContPromptFor(t *testing.T) {
	assert.Equal(t, "   . ", contPromptFor("ice> "))
}

func TestEnsureHistoryFilePermissions_CreatesWithRestrictedMode(t *testing.T) {
	dir := t.TempDir()
	histFile := filepath.Join(dir, ".icelang_ls_history")

	// File does not exist yet.
	ensureHistoryFilePermissions(histFile)

	info, err := os.Stat(histFile)
	require.NoError(t, err, "history file should be created")
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "new history file should have mode 0600")
}

func TestEnsureHistoryFilePermissions_RestrictsExistingFile(t *testing.T) {
	dir := t.TempDir()
	histFile := filepath.Join(dir, ".icelang_ls_history")

	// Create the file with overly permissive mode.
	err := os.WriteFile(histFile, []byte("some history"), 0644)
	require.NoError(t, err)

	ensureHistoryFilePermissions(histFile)

	info, err := os.Stat(histFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "existing history file should be restricted to 0600")

	// Verify contents are preserved.
	data, err := os.ReadFile(histFile)
	require.NoError(t, err)
	assert.Equal(t, "some history", string(data))
}

func TestEnsureHistoryFilePermissions_EmptyPathNoOp(t *testing.T) {
	// Should not panic or error with empty path.
	ensureHistoryFilePermissions("")
}
