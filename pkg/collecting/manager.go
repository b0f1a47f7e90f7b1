package collecting

import (
	"io"
	"log/slog"

	"SystemMonitor/pkg/rendering"
)

// Manager owns the ordered collector set for the process lifetime. The order
// is fixed at construction and every tick refreshes and renders in that same
// order, which is what lets the collectors stay unsynchronized.
type Manager struct {
	collectors []Collector
	log        *slog.Logger
}

// NewManager builds one collector per metric family. The sequence below is
// the display order of the report.
func NewManager(procRoot string, log *slog.Logger) *Manager {
	return &Manager{
		collectors: []Collector{
			NewSystemCollector(procRoot, log),
			NewCPUCollector(procRoot, log),
			NewMemoryCollector(procRoot, log),
			NewDiskCollector(procRoot, log),
			NewNetworkCollector(procRoot, log),
			NewProcessCollector(procRoot, log),
		},
		log: log,
	}
}

// RefreshAll refreshes every collector sequentially in registration order.
// A failing collector keeps its stale record and never blocks the rest.
func (m *Manager) RefreshAll() {
	for _, c := range m.collectors {
		c.Refresh()
	}
}

// RenderAll writes each collector's summary separated by rule lines.
func (m *Manager) RenderAll(w io.Writer) {
	for i, c := range m.collectors {
		io.WriteString(w, c.Render())
		if i < len(m.collectors)-1 {
			rendering.Separator(w)
		}
	}
}

// Collectors returns the set in registration order.
func (m *Manager) Collectors() []Collector {
	return m.collectors
}
