package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewer(t *testing.T) {
	cases := []struct {
		latest, current string
		want            bool
	}{
		{"1.2.0", "1.1.9", true},
		{"1.10.0", "1.9.0", true},
		{"1.2.3", "1.2.3", false},
		{"1.2.3", "1.2.3-dirty", false},
		{"v2.0.0", "1.99.99", true},
		{"1.0.0", "1.0.1", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, isNewer(tc.latest, tc.current), "%s vs %s", tc.latest, tc.current)
	}
}

func TestFormatVersion(t *testing.T) {
	oldVersion, oldCommit, oldBuild := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = oldVersion, oldCommit, oldBuild })

	Version, Commit, BuildTime = "1.2.3", "", ""
	assert.Equal(t, "1.2.3 (development)", FormatVersion())

	Commit = "abc1234"
	assert.Equal(t, "1.2.3 (commit: abc1234)", FormatVersion())

	BuildTime = "2025-03-15T06:00:00Z"
	assert.Equal(t, "1.2.3 (commit: abc1234, built at: 2025-03-15T06:00:00Z)", FormatVersion())
}
