package collecting

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"SystemMonitor/pkg/probing"
	"SystemMonitor/pkg/rendering"
)

// SystemRecord combines uptime and scheduler load read in the same tick.
type SystemRecord struct {
	UptimeSeconds float64
	Load1         float64
	Load5         float64
	Load15        float64
	RunningTasks  int
	TotalTasks    int
}

// SystemCollector reads /proc/uptime and /proc/loadavg, two independent
// single-line sources. Stateless across ticks.
type SystemCollector struct {
	uptimePath string
	loadPath   string
	log        *slog.Logger
	record     SystemRecord
}

func NewSystemCollector(procRoot string, log *slog.Logger) *SystemCollector {
	return &SystemCollector{
		uptimePath: filepath.Join(procRoot, "uptime"),
		loadPath:   filepath.Join(procRoot, "loadavg"),
		log:        log,
	}
}

func (c *SystemCollector) Name() string         { return "system" }
func (c *SystemCollector) Refresh()             { refresh(c.Name(), c, c.log) }
func (c *SystemCollector) Record() SystemRecord { return c.record }

func (c *SystemCollector) acquire() (string, error) {
	up, err := probing.FirstLine(c.uptimePath)
	if err != nil {
		return "", err
	}
	load, err := probing.FirstLine(c.loadPath)
	if err != nil {
		return "", err
	}
	return up + "\n" + load, nil
}

// parse reads the uptime seconds from the first line and the three load
// averages plus the running/total task token from the second.
func (c *SystemCollector) parse(raw string) {
	lines := strings.Split(raw, "\n")
	if len(lines) < 2 {
		return
	}

	if fields := strings.Fields(lines[0]); len(fields) > 0 {
		c.record.UptimeSeconds = probing.ParseFloat(fields[0])
	}

	fields := strings.Fields(lines[1])
	if len(fields) < 4 {
		return
	}
	c.record.Load1 = probing.ParseFloat(fields[0])
	c.record.Load5 = probing.ParseFloat(fields[1])
	c.record.Load15 = probing.ParseFloat(fields[2])

	if run, tot, ok := strings.Cut(fields[3], "/"); ok {
		c.record.RunningTasks = int(probing.ParseInt(run))
		c.record.TotalTasks = int(probing.ParseInt(tot))
	}
}

func (c *SystemCollector) derive() {}

func (c *SystemCollector) Render() string {
	var b strings.Builder
	b.WriteString("System:\n")
	fmt.Fprintf(&b, "  uptime: %s\n", rendering.Uptime(c.record.UptimeSeconds))
	fmt.Fprintf(&b, "  load:   %.2f (1m), %.2f (5m), %.2f (15m)\n",
		c.record.Load1, c.record.Load5, c.record.Load15)
	fmt.Fprintf(&b, "  tasks:  %d running / %d total\n",
		c.record.RunningTasks, c.record.TotalTasks)
	return b.String()
}
