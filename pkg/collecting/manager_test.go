package collecting

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRegistrationOrder(t *testing.T) {
	m := NewManager(t.TempDir(), discardLogger())

	var names []string
	for _, c := range m.Collectors() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"system", "cpu", "memory", "disk", "network", "process"}, names)
}

func TestManagerSurvivesUnreachableSources(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	// Empty root: every source is missing, every tick is best effort.
	m := NewManager(t.TempDir(), logger)
	m.RefreshAll()
	m.RefreshAll()

	assert.Contains(t, logBuf.String(), "source unavailable")

	var out strings.Builder
	m.RenderAll(&out)
	assert.Contains(t, out.String(), "CPU usage: 0.0%")
	assert.Contains(t, out.String(), "0 running / 0 total")
}

func TestManagerRendersEveryFamily(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "stat", "cpu  100 0 0 50 10 0 0 0\n")
	writeProcFile(t, root, "meminfo", meminfoFixture)
	writeProcFile(t, root, "diskstats", diskstatsFixture)
	writeProcFile(t, root, "net/dev", netDevFixture)
	writeProcFile(t, root, "uptime", "90061.00 10.00\n")
	writeProcFile(t, root, "loadavg", "0.50 0.40 0.30 2/150 1\n")
	writeProcFile(t, root, "1/stat", statLine(1, "init", 'S', 100, 5))

	m := NewManager(root, discardLogger())
	m.RefreshAll()

	var out strings.Builder
	m.RenderAll(&out)
	report := out.String()

	assert.Contains(t, report, "1d 1h 1m 1s")
	assert.Contains(t, report, "CPU usage")
	assert.Contains(t, report, "Memory:")
	assert.Contains(t, report, "sda")
	assert.Contains(t, report, "eth0")
	assert.Contains(t, report, "init")
}

func BenchmarkRefreshAll(b *testing.B) {
	if _, err := os.Stat("/proc/stat"); os.IsNotExist(err) {
		b.Skip("skipping: /proc not available")
	}
	m := NewManager("/proc", discardLogger())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.RefreshAll()
	}
}

func TestCollectorRefreshIsIdempotentWhenSourceGone(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "stat", "cpu  100 0 0 50 10 0 0 0\n")

	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	c := NewCPUCollector(root, logger)
	c.Refresh()
	writeProcFile(t, root, "stat", "cpu  200 0 0 100 20 0 0 0\n")
	c.Refresh()
	want := c.Sample()

	require.NoError(t, os.Remove(root+"/stat"))
	c.Refresh()
	c.Refresh()

	assert.Equal(t, want, c.Sample())
	assert.Equal(t, 2, strings.Count(logBuf.String(), "source unavailable"))
}
