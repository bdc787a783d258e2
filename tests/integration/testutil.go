// Package integration provides end-to-end CLI tests for grocer.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// grocerBin is the path to the built grocer binary.
	grocerBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated test environment with its own config
// directory and an isolated store backend.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	DataDir   string
}

// NewSQLiteEnv creates a test environment configured for the local sqlite
// backend.
func NewSQLiteEnv(t *testing.T) *TestEnv {
	t.Helper()
	env := newEnv(t)
	env.writeConfig("backend: sqlite\ndata_dir: " + env.DataDir + "\n")
	return env
}

// NewSheetsEnv creates a test environment configured for the sheets backend
// pointed at the given endpoint URL. A cache_ttl of 0 keeps the default; the
// tests pass 1 to keep cross-invocation staleness windows tiny.
func NewSheetsEnv(t *testing.T, sheetURL string) *TestEnv {
	t.Helper()
	env := newEnv(t)
	env.writeConfig("backend: sheets\nsheet_url: " + sheetURL + "\ncache_ttl: 1\n")
	return env
}

func newEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build grocer: %v", buildErr)
	}
	if grocerBin == "" {
		t.Fatal("grocer binary not built (grocerBin is empty)")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
		DataDir:   filepath.Join(tempDir, "data"),
	}
}

func (e *TestEnv) writeConfig(content string) {
	e.t.Helper()
	if err := os.WriteFile(filepath.Join(e.ConfigDir, "config.yaml"), []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write config: %v", err)
	}
}

// CmdResult holds the result of a grocer command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunGrocer executes the grocer CLI with the given arguments.
func (e *TestEnv) RunGrocer(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir}, args...)
	cmd := exec.Command(grocerBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run grocer: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunGrocer executes the grocer CLI and fails the test on a non-zero
// exit.
func (e *TestEnv) MustRunGrocer(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunGrocer(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("grocer %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// ViewRow mirrors the CLI's JSON list output.
type ViewRow struct {
	Position   int    `json:"position"`
	DateAdded  string `json:"date_added"`
	ItemNeeded string `json:"item_needed"`
	Quantity   string `json:"quantity"`
	WhereToGet string `json:"where_to_get"`
	Urgency    string `json:"urgency"`
	Completed  bool   `json:"completed"`
}
