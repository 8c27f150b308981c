package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpl-au/safercmd/internal/config"
	"github.com/jpl-au/safercmd/internal/validate"
	"github.com/jpl-au/safercmd/shellcmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func loadTestdata(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load(filepath.Join("testdata", "templates.yaml"), 0)
	require.NoError(t, err)
	return c
}

func TestLoad(t *testing.T) {
	c := loadTestdata(t)

	assert.Equal(t, []string{"grep", "restart", "tail"}, c.Names())
	assert.Equal(t, filepath.Join("testdata", "templates.yaml"), c.Path())
	require.NoError(t, c.Validate())

	e, err := c.Entry("grep")
	require.NoError(t, err)
	assert.Equal(t, "Search a file for a pattern", e.Description)
	assert.Equal(t, Skeleton{
		{Token: "grep"},
		{Slot: []string{"switch"}, IsSlot: true},
		{Slot: []string{"pattern"}, IsSlot: true},
		{Slot: []string{"file", "path"}, IsSlot: true},
	}, e.Skeleton)

	_, err = c.Entry("rm")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
	_, err = c.Template("rm")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"), 0)
	assert.ErrorIs(t, err, ErrNoCatalog)
}

func TestTemplate_Grep(t *testing.T) {
	grep, err := loadTestdata(t).Template("grep")
	require.NoError(t, err)

	assert.Equal(t, "grep {switch} {pattern} {file|path}", grep.String())

	tokens, err := grep.Fill(shellcmd.Replacements{"switch": "-i", "pattern": "root", "file": "etc/passwd"})
	require.NoError(t, err)
	assert.Equal(t, []string{"grep", "-i", "root", "etc/passwd"}, tokens)

	// "path" has no explicit rules, so it falls back to the token check.
	assert.False(t, grep.ValidateOne("path", "etc/passwd"))
	assert.True(t, grep.ValidateOne("path", "passwd"))
	assert.True(t, grep.ValidateOne("file", "etc/passwd"))
	assert.False(t, grep.ValidateOne("file", "/etc/passwd"))
	assert.False(t, grep.ValidateOne("switch", "-r"))
	assert.False(t, grep.ValidateAll(shellcmd.Replacements{"switch": "-i", "pattern": "x", "file": "a", "path": "a"}))
}

func TestTemplate_Tail(t *testing.T) {
	tail, err := loadTestdata(t).Template("tail")
	require.NoError(t, err)

	line, err := tail.FillCommandLine(shellcmd.Replacements{"lines": "50", "log": "var/app.log"})
	require.NoError(t, err)
	assert.Equal(t, "tail -n 50 -- var/app.log", line)

	assert.False(t, tail.ValidateOne("lines", "0"))
	assert.False(t, tail.ValidateOne("lines", "10000"))
	assert.False(t, tail.ValidateOne("log", "../app.log"))
	assert.False(t, tail.ValidateOne("log", "app.txt"))
}

func TestTemplate_Fallback(t *testing.T) {
	restart, err := loadTestdata(t).Template("restart")
	require.NoError(t, err)

	assert.True(t, restart.ValidateOne("unit", "app-web"))
	assert.False(t, restart.ValidateOne("unit", "sshd"))
	assert.False(t, restart.ValidateOne("unit", "app-web;reboot"))
}

func TestTemplate_Guards(t *testing.T) {
	c, err := Parse([]byte(`
templates:
  echo:
    skeleton: [echo, {slot: msg}]
    validators:
      msg:
        - pattern: "(?s).*"
  id:
    skeleton: [id, {slot: user}]
`), 8)
	require.NoError(t, err)

	echo, err := c.Template("echo")
	require.NoError(t, err)
	assert.True(t, echo.ValidateOne("msg", "hi there"))
	assert.False(t, echo.ValidateOne("msg", "nul\x00byte"))
	assert.False(t, echo.ValidateOne("msg", "bad\xffutf8"))
	assert.False(t, echo.ValidateOne("msg", strings.Repeat("a", 9)))

	id, err := c.Template("id")
	require.NoError(t, err)
	assert.True(t, id.ValidateOne("user", "root"))
	assert.False(t, id.ValidateOne("user", strings.Repeat("a", 9)))
}

func TestTemplate_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "empty skeleton",
			yaml: "templates:\n  x:\n    skeleton: []\n",
			want: ErrInvalidCatalog,
		},
		{
			name: "empty slot list",
			yaml: "templates:\n  x:\n    skeleton: [ls, {slot: []}]\n",
			want: shellcmd.ErrEmptyPlaceholder,
		},
		{
			name: "null slot",
			yaml: "templates:\n  x:\n    skeleton: [ls, {slot: ~}]\n",
			want: shellcmd.ErrEmptyPlaceholder,
		},
		{
			name: "unmapped validator",
			yaml: "templates:\n  x:\n    skeleton: [ls, {slot: dir}]\n    validators:\n      path: [{path: true}]\n",
			want: shellcmd.ErrUnmappedValidator,
		},
		{
			name: "empty rule list",
			yaml: "templates:\n  x:\n    skeleton: [ls, {slot: dir}]\n    validators:\n      dir: []\n",
			want: validate.ErrEmptyRules,
		},
		{
			name: "bad fallback",
			yaml: "templates:\n  x:\n    skeleton: [ls, {slot: dir}]\n    fallback: [{pattern: \"(\"}]\n",
			want: validate.ErrInvalidRule,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Parse([]byte(tc.yaml), 0)
			require.NoError(t, err)
			_, err = c.Template("x")
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, c.Validate(), tc.want)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"extra key", "templates:\n  x:\n    skeleton: [{slot: a, name: b}]\n", "exactly one key"},
		{"no slot key", "templates:\n  x:\n    skeleton: [{name: b}]\n", "exactly one key"},
		{"nested list", "templates:\n  x:\n    skeleton: [[a, b]]\n", "string or a slot mapping"},
		{"slot mapping value", "templates:\n  x:\n    skeleton: [{slot: {a: b}}]\n", "name or a list"},
		{"bare dash", "templates:\n  x:\n    skeleton:\n      - ls\n      -\n", "is null"},
		{"tilde", "templates:\n  x:\n    skeleton: [ls, ~]\n", "is null"},
		{"skeleton mapping", "templates:\n  x:\n    skeleton: {slot: a}\n", "must be a list"},
		{"not yaml", "templates: [\n", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml), 0)
			require.ErrorIs(t, err, ErrInvalidCatalog)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestElement_RoundTrip(t *testing.T) {
	in := []Element{
		{Token: "ssh"},
		{Slot: []string{"host"}, IsSlot: true},
		{Slot: []string{"cmd", "command"}, IsSlot: true},
	}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	var out []Element
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvPath, "")

	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv(EnvPath, "env.yaml")
		p, err := Resolve("flag.yaml", &config.Config{Catalog: config.Catalog{Path: "cfg.yaml"}})
		require.NoError(t, err)
		assert.Equal(t, "flag.yaml", p)
	})

	t.Run("env before config", func(t *testing.T) {
		t.Setenv(EnvPath, "env.yaml")
		p, err := Resolve("", &config.Config{Catalog: config.Catalog{Path: "cfg.yaml"}})
		require.NoError(t, err)
		assert.Equal(t, "env.yaml", p)
	})

	t.Run("config path", func(t *testing.T) {
		p, err := Resolve("", &config.Config{Catalog: config.Catalog{Path: "cfg.yaml"}})
		require.NoError(t, err)
		assert.Equal(t, "cfg.yaml", p)
	})

	t.Run("local file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("HOME", dir)
		require.NoError(t, os.MkdirAll(config.Dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(config.Dir, FileName), []byte("templates: {}\n"), 0644))

		p, err := Resolve("", nil)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(config.Dir, FileName), p)
	})

	t.Run("nothing found", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("HOME", dir)

		_, err := Resolve("", nil)
		assert.ErrorIs(t, err, ErrNoCatalog)
	})
}
