package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Run("get all shows defaults", func(t *testing.T) {
		env := newBareEnv(t)

		out := env.run("config")
		env.contains(out, "limits.max_value: 4096")
		env.contains(out, "audit.enabled: true")
		env.contains(out, "catalog.path: ")
	})

	t.Run("set then get", func(t *testing.T) {
		env := newBareEnv(t)

		env.contains(env.run("config", "limits.max_value", "256"), "(global)")
		env.equals(env.run("config", "limits.max_value"), "256")
	})
}

func TestConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"invalid key", []string{"invalid.key", "value"}},
		{"max value zero", []string{"limits.max_value", "0"}},
		{"max value not a number", []string{"limits.max_value", "big"}},
		{"audit not bool", []string{"audit.enabled", "maybe"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newBareEnv(t)
			_, err := env.runErr(append([]string{"config"}, tc.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestGuide(t *testing.T) {
	env := newBareEnv(t)

	env.contains(env.run("guide"), "# safercmd")
	env.contains(env.run("guide", "catalog"), "one_of")

	out, err := env.runErr("guide", "nonexistent")
	assert.Error(t, err)
	env.contains(out, "Available:")
}

func TestVersion(t *testing.T) {
	env := newBareEnv(t)

	env.contains(env.run("version"), "Build Tag:")
	env.contains(env.runStdout("version", "-o", "json"), `"build_tag"`)
}

func TestOutputFormat(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runErr("ls", "-o", "xml")
	assert.Error(t, err)
}

func TestAudit(t *testing.T) {
	env := newTestEnv(t)

	env.run("fill", "grep", "switch=-i", "pattern=x", "file=y")
	_, _ = env.runErr("check", "grep", "switch=-q", "pattern=x", "file=y")

	out := env.run("audit", "ls")
	env.contains(out, "template:fill")
	env.contains(out, "file,pattern,switch")

	out = env.run("audit", "ls", "--failed")
	env.contains(out, "template:check")
	assert.NotContains(t, out, "template:fill")

	env.contains(env.run("audit", "prune", "--older-than", "1d", "--dry-run"), "would delete 0 entries")

	_, err := env.runErr("audit", "prune")
	assert.Error(t, err)
	_, err = env.runErr("audit", "prune", "--older-than", "soon")
	assert.Error(t, err)
}
