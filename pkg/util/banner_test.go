package util_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/prometheus/pkg/util"
)

func TestBannerUsesRequestedColor(t *testing.T) {
	out := util.Banner("agent", "cyan")
	require.NotEmpty(t, out)

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, util.ColorCyan), "line %q missing color prefix", line)
		assert.True(t, strings.HasSuffix(line, util.ColorReset), "line %q missing reset suffix", line)
	}
}

func TestBannerUnknownColorFallsBack(t *testing.T) {
	out := util.Banner("x", "magenta")
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(out, util.ColorReset))
	assert.NotContains(t, out, util.ColorRed)
}
