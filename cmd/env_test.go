// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full stack:
// command parsing -> extension -> internal/fill -> catalog -> shellcmd.
//
// Each test builds the real binary once and runs it in a temporary directory
// holding a local .safercmd/templates.yaml, with HOME pointed at a second
// temporary directory so the global config and audit log never touch the
// developer's own.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the safercmd binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		// Build to a temp location
		tmpDir, err := os.MkdirTemp("", "safercmd-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "safercmd"
		if os.PathSeparator == '\\' {
			binaryName = "safercmd.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testCatalog is the local catalog every test environment starts with.
const testCatalog = `templates:
  grep:
    description: Search a file for a pattern
    skeleton:
      - grep
      - slot: switch
      - slot: pattern
      - slot: file
    validators:
      switch:
        - one_of: ["-i", "-n"]

  scp:
    skeleton:
      - scp
      - slot: [source, src]
      - slot: dst
    validators:
      source:
        - path: true
      dst:
        - pattern: "[a-z]+:[\\w./-]+"
`

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newTestEnv creates a temporary working directory with a local catalog.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := newBareEnv(t)
	env.writeFile(filepath.Join(".safercmd", "templates.yaml"), testCatalog)
	return env
}

// newBareEnv creates a temporary working directory with no catalog.
func newBareEnv(t *testing.T) *testEnv {
	t.Helper()

	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

// writeFile writes content to a path relative to the working directory.
func (e *testEnv) writeFile(rel, content string) {
	e.t.Helper()
	p := filepath.Join(e.dir, rel)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0644))
}

// command prepares a safercmd invocation isolated from the user's environment.
func (e *testEnv) command(args ...string) *exec.Cmd {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home, "USERPROFILE="+e.home, "SAFERCMD_TEMPLATES=")
	return cmd
}

// run executes safercmd with the given args and returns stdout.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("safercmd %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes safercmd and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	out, err := e.command(args...).CombinedOutput()
	return string(out), err
}

// runStdout executes safercmd and returns stdout only.
func (e *testEnv) runStdout(args ...string) string {
	e.t.Helper()
	out, err := e.command(args...).Output()
	if err != nil {
		e.t.Fatalf("safercmd %v failed: %v", args, err)
	}
	return string(out)
}

// runStdin executes safercmd with stdin input.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	cmd := e.command(args...)
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.CombinedOutput()
	if err != nil {
		e.t.Fatalf("safercmd %v failed: %v\noutput: %s", args, err, out)
	}
	return string(out)
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
