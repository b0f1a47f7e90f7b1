package collecting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const meminfoFixture = `MemTotal:        8000 kB
MemFree:         2000 kB
MemAvailable:    4000 kB
Buffers:          500 kB
Cached:          1500 kB
SwapTotal:          0 kB
`

func TestMemoryUsedIsTotalMinusAvailable(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "meminfo", meminfoFixture)

	c := NewMemoryCollector(root, discardLogger())
	c.Refresh()

	s := c.Sample()
	assert.Equal(t, uint64(8000), s.TotalKiB)
	assert.Equal(t, uint64(2000), s.FreeKiB)
	assert.Equal(t, uint64(4000), s.AvailableKiB)
	assert.Equal(t, uint64(500), s.BuffersKiB)
	assert.Equal(t, uint64(1500), s.CachedKiB)
	assert.Equal(t, uint64(4000), s.UsedKiB)
	assert.InDelta(t, 50.0, s.UsagePercent, 1e-9)
}

func TestMemoryZeroTotalYieldsZeroPercent(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "meminfo", "SwapTotal: 0 kB\n")

	c := NewMemoryCollector(root, discardLogger())
	c.Refresh()

	assert.Zero(t, c.Sample().TotalKiB)
	assert.Zero(t, c.Sample().UsagePercent)
}
