package collecting

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"SystemMonitor/pkg/probing"
	"SystemMonitor/pkg/rendering"
)

// MemorySample holds the meminfo fields the monitor reports, in kibibytes.
type MemorySample struct {
	TotalKiB     uint64
	FreeKiB      uint64
	AvailableKiB uint64
	BuffersKiB   uint64
	CachedKiB    uint64
	UsedKiB      uint64
	UsagePercent float64
}

// MemoryCollector reads /proc/meminfo. Stateless across ticks.
type MemoryCollector struct {
	path   string
	log    *slog.Logger
	sample MemorySample
}

func NewMemoryCollector(procRoot string, log *slog.Logger) *MemoryCollector {
	return &MemoryCollector{path: filepath.Join(procRoot, "meminfo"), log: log}
}

func (c *MemoryCollector) Name() string         { return "memory" }
func (c *MemoryCollector) Refresh()             { refresh(c.Name(), c, c.log) }
func (c *MemoryCollector) Sample() MemorySample { return c.sample }

func (c *MemoryCollector) acquire() (string, error) {
	return probing.File(c.path)
}

func (c *MemoryCollector) parse(raw string) {
	for _, line := range strings.Split(raw, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			c.sample.TotalKiB = probing.ParseUint(fields[1])
		case "MemFree:":
			c.sample.FreeKiB = probing.ParseUint(fields[1])
		case "MemAvailable:":
			c.sample.AvailableKiB = probing.ParseUint(fields[1])
		case "Buffers:":
			c.sample.BuffersKiB = probing.ParseUint(fields[1])
		case "Cached:":
			c.sample.CachedKiB = probing.ParseUint(fields[1])
		}
	}
}

// derive computes used memory against MemAvailable rather than MemFree, so
// reclaimable page cache does not count as used.
func (c *MemoryCollector) derive() {
	c.sample.UsedKiB = c.sample.TotalKiB - c.sample.AvailableKiB
	if c.sample.TotalKiB > 0 {
		c.sample.UsagePercent = 100 * float64(c.sample.UsedKiB) / float64(c.sample.TotalKiB)
	} else {
		c.sample.UsagePercent = 0
	}
}

func (c *MemoryCollector) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Memory:\n")
	fmt.Fprintf(&b, "  total:     %s\n", rendering.KiB(c.sample.TotalKiB))
	fmt.Fprintf(&b, "  used:      %s\n", rendering.KiB(c.sample.UsedKiB))
	fmt.Fprintf(&b, "  available: %s\n", rendering.KiB(c.sample.AvailableKiB))
	fmt.Fprintf(&b, "  usage:     %.1f%%\n", c.sample.UsagePercent)
	return b.String()
}
