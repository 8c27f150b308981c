package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.BuildTag)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+" "+runtime.GOARCH, info.Platform)
	assert.Equal(t, Version, Short())
}

func TestString(t *testing.T) {
	s := Info{BuildTag: "v1.2.3", GitCommit: "abc123"}.String()
	assert.Contains(t, s, "Build Tag:  v1.2.3\n")
	assert.Contains(t, s, "Git Commit: abc123\n")
}
