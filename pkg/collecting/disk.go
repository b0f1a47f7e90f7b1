package collecting

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"SystemMonitor/pkg/probing"
)

// DiskRecord holds the retained counters for one whole-disk device.
type DiskRecord struct {
	Name            string
	ReadsCompleted  uint64
	WritesCompleted uint64
	SectorsRead     uint64
	SectorsWritten  uint64
}

// DiskCollector reads /proc/diskstats and keeps only physical whole-disk
// devices: partitions, loop devices, and anything without a recognized disk
// prefix are filtered out. Stateless across ticks.
type DiskCollector struct {
	path    string
	log     *slog.Logger
	records []DiskRecord
}

func NewDiskCollector(procRoot string, log *slog.Logger) *DiskCollector {
	return &DiskCollector{path: filepath.Join(procRoot, "diskstats"), log: log}
}

func (c *DiskCollector) Name() string          { return "disk" }
func (c *DiskCollector) Refresh()              { refresh(c.Name(), c, c.log) }
func (c *DiskCollector) Records() []DiskRecord { return c.records }

func (c *DiskCollector) acquire() (string, error) {
	return probing.File(c.path)
}

// parse walks the line-per-device table. Fields are positional: major, minor,
// name, then reads completed/merged, sectors read, read time, writes
// completed/merged, sectors written, write time. Merged and time fields are
// required to be present but are not retained.
func (c *DiskCollector) parse(raw string) {
	records := make([]DiskRecord, 0, len(c.records))
	for _, line := range strings.Split(raw, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 11 {
			continue
		}
		name := fields[2]
		if !keepDevice(name) {
			continue
		}
		records = append(records, DiskRecord{
			Name:            name,
			ReadsCompleted:  probing.ParseUint(fields[3]),
			SectorsRead:     probing.ParseUint(fields[5]),
			WritesCompleted: probing.ParseUint(fields[7]),
			SectorsWritten:  probing.ParseUint(fields[9]),
		})
	}
	c.records = records
}

func (c *DiskCollector) derive() {}

// keepDevice reports whether a diskstats device name is a physical whole
// disk worth reporting.
func keepDevice(name string) bool {
	if strings.Contains(name, "loop") {
		return false
	}
	if !strings.Contains(name, "sd") && !strings.Contains(name, "vd") &&
		!strings.Contains(name, "nvme") {
		return false
	}
	return !isPartition(name)
}

// isPartition detects numbered partitions. Conventional names end in a
// digit ("sda1"); NVMe namespaces always end in a digit, so they use the
// "p" suffix marker instead ("nvme0n1p1").
func isPartition(name string) bool {
	if len(name) <= 2 {
		return false
	}
	if strings.Contains(name, "nvme") {
		return strings.Contains(name, "p")
	}
	last := name[len(name)-1]
	return last >= '0' && last <= '9'
}

func (c *DiskCollector) Render() string {
	var b strings.Builder
	b.WriteString("Disk I/O:\n")
	for _, d := range c.records {
		fmt.Fprintf(&b, "  %s:\n", d.Name)
		fmt.Fprintf(&b, "    reads:           %d\n", d.ReadsCompleted)
		fmt.Fprintf(&b, "    writes:          %d\n", d.WritesCompleted)
		fmt.Fprintf(&b, "    sectors read:    %d\n", d.SectorsRead)
		fmt.Fprintf(&b, "    sectors written: %d\n", d.SectorsWritten)
	}
	return b.String()
}
