package collecting

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"SystemMonitor/pkg/probing"
	"SystemMonitor/pkg/rendering"
)

// InterfaceRecord holds one interface's cumulative traffic counters.
type InterfaceRecord struct {
	Name      string
	RxBytes   uint64
	RxPackets uint64
	TxBytes   uint64
	TxPackets uint64
}

// NetworkCollector reads /proc/net/dev. Every interface beyond the two
// header lines is reported, loopback and virtual interfaces included.
// Stateless across ticks.
type NetworkCollector struct {
	path    string
	log     *slog.Logger
	records []InterfaceRecord
}

func NewNetworkCollector(procRoot string, log *slog.Logger) *NetworkCollector {
	return &NetworkCollector{path: filepath.Join(procRoot, "net", "dev"), log: log}
}

func (c *NetworkCollector) Name() string               { return "network" }
func (c *NetworkCollector) Refresh()                   { refresh(c.Name(), c, c.log) }
func (c *NetworkCollector) Records() []InterfaceRecord { return c.records }

func (c *NetworkCollector) acquire() (string, error) {
	return probing.File(c.path)
}

// parse splits each interface line at the first colon. The statistics blob
// has a fixed kernel layout: receive bytes and packets first, six more
// receive fields, then transmit bytes and packets. Trailing fields beyond
// those are ignored.
func (c *NetworkCollector) parse(raw string) {
	lines := strings.Split(raw, "\n")
	records := make([]InterfaceRecord, 0, len(c.records))

	for i := netHeaderLines; i < len(lines); i++ {
		name, blob, ok := strings.Cut(lines[i], ":")
		if !ok {
			continue
		}
		fields := strings.Fields(blob)
		if len(fields) < 10 {
			continue
		}
		records = append(records, InterfaceRecord{
			Name:      strings.TrimSpace(name),
			RxBytes:   probing.ParseUint(fields[0]),
			RxPackets: probing.ParseUint(fields[1]),
			TxBytes:   probing.ParseUint(fields[8]),
			TxPackets: probing.ParseUint(fields[9]),
		})
	}
	c.records = records
}

func (c *NetworkCollector) derive() {}

func (c *NetworkCollector) Render() string {
	var b strings.Builder
	b.WriteString("Network interfaces:\n")
	for _, iface := range c.records {
		fmt.Fprintf(&b, "  %s:\n", iface.Name)
		fmt.Fprintf(&b, "    rx: %s (%d packets)\n", rendering.Bytes(iface.RxBytes), iface.RxPackets)
		fmt.Fprintf(&b, "    tx: %s (%d packets)\n", rendering.Bytes(iface.TxBytes), iface.TxPackets)
	}
	return b.String()
}
