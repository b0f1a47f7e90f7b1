package collecting

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"SystemMonitor/pkg/probing"
)

// CPUSample is the derived record for the aggregate CPU.
type CPUSample struct {
	UsagePercent float64
}

// CPUCollector derives utilization from the aggregate line of /proc/stat.
// It is the only collector that keeps state across ticks: the previous
// generation of idle/total tick counters.
type CPUCollector struct {
	path string
	log  *slog.Logger

	prevIdle  uint64
	prevTotal uint64
	currIdle  uint64
	currTotal uint64
	primed    bool // a previous generation has been recorded
	advanced  bool // this tick's parse produced a new generation

	sample CPUSample
}

func NewCPUCollector(procRoot string, log *slog.Logger) *CPUCollector {
	return &CPUCollector{path: filepath.Join(procRoot, "stat"), log: log}
}

func (c *CPUCollector) Name() string      { return "cpu" }
func (c *CPUCollector) Refresh()          { refresh(c.Name(), c, c.log) }
func (c *CPUCollector) Sample() CPUSample { return c.sample }

func (c *CPUCollector) acquire() (string, error) {
	return probing.FirstLine(c.path)
}

// parse splits the aggregate line into its label and eight cumulative
// counters: user, nice, system, idle, iowait, irq, softirq, steal. The
// current generation is moved down before being overwritten.
func (c *CPUCollector) parse(raw string) {
	c.advanced = false
	fields := strings.Fields(raw)
	if len(fields) < 9 {
		return
	}

	c.prevIdle, c.prevTotal = c.currIdle, c.currTotal

	var total uint64
	for _, f := range fields[1:9] {
		total += probing.ParseUint(f)
	}
	c.currIdle = probing.ParseUint(fields[4]) + probing.ParseUint(fields[5])
	c.currTotal = total

	c.advanced = c.primed
	c.primed = true
}

// derive computes usage from the delta between generations. Without a
// previous generation, or when the total did not advance (counter reset, no
// elapsed ticks), the percentage keeps its last value: 0 on the first sample.
func (c *CPUCollector) derive() {
	if !c.advanced {
		return
	}
	if c.currTotal <= c.prevTotal {
		return
	}

	totalDiff := c.currTotal - c.prevTotal
	var idleDiff uint64
	if c.currIdle > c.prevIdle {
		idleDiff = c.currIdle - c.prevIdle
	}
	if idleDiff > totalDiff {
		idleDiff = totalDiff
	}
	c.sample.UsagePercent = 100 * float64(totalDiff-idleDiff) / float64(totalDiff)
}

func (c *CPUCollector) Render() string {
	return fmt.Sprintf("CPU usage: %.1f%%\n", c.sample.UsagePercent)
}
