package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFull(t *testing.T) {
	assert.True(t, strings.HasPrefix(Full(), "runsheet/"))
	assert.NotEmpty(t, GitCommit)
	assert.LessOrEqual(t, len(GitCommit), 8)
}

func TestGetOverrides(t *testing.T) {
	saved := []string{release, commitOverride, buildDate}
	t.Cleanup(func() { release, commitOverride, buildDate = saved[0], saved[1], saved[2] })

	release = "v1.2.3"
	commitOverride = "0123456789abcdef"
	buildDate = "2026-10-19T12:00:00+02:00"

	info := Get()
	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "01234567", info.Commit)
	assert.Equal(t, "2026-10-19T10:00:00Z", info.Date)
}

func TestShort(t *testing.T) {
	assert.Equal(t, "dev", short(""))
	assert.Equal(t, "abc", short("abc"))
	assert.Equal(t, "abcdefgh", short("abcdefghijk"))
}
