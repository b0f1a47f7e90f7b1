// Package collecting implements the per-metric collectors and the ordered
// set that refreshes them once per tick.
package collecting

import "log/slog"

// Collector is one metric family. Refresh runs the fixed
// acquire -> parse -> derive sequence against the collector's kernel source;
// Render summarizes the latest record as multi-line text.
type Collector interface {
	Name() string
	Refresh()
	Render() string
}

// phases is the three-step contract every collector implements. acquire
// returns the raw text of the backing source (the process collector has no
// upfront text and acquires during parse), parse turns raw text into typed
// fields, derive computes anything beyond direct extraction.
type phases interface {
	acquire() (string, error)
	parse(raw string)
	derive()
}

// refresh drives the three phases in order. A source that cannot be read is
// logged and leaves the collector's record at its previous values; the error
// never reaches the caller, so one dead source cannot stop the others.
func refresh(name string, p phases, log *slog.Logger) {
	raw, err := p.acquire()
	if err != nil {
		log.Error("source unavailable", "collector", name, "err", err)
		return
	}
	p.parse(raw)
	p.derive()
}
