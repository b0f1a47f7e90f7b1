package collecting

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/sys/unix"

	"SystemMonitor/pkg/probing"
)

// ProcessRecord holds one process's identity and memory footprint as read
// from its stat line. ResidentPages is in kernel pages, not bytes.
type ProcessRecord struct {
	PID           int64
	Name          string
	State         byte
	VirtualSize   uint64
	ResidentPages int64
}

// ProcessCollector rebuilds the process inventory each tick by scanning the
// numeric directories under the proc root. There is no upfront raw read;
// acquisition happens during parse, one stat file per pid.
type ProcessCollector struct {
	root string
	log  *slog.Logger

	records []ProcessRecord
	total   int
	running int
}

func NewProcessCollector(procRoot string, log *slog.Logger) *ProcessCollector {
	return &ProcessCollector{root: procRoot, log: log}
}

func (c *ProcessCollector) Name() string             { return "process" }
func (c *ProcessCollector) Refresh()                 { refresh(c.Name(), c, c.log) }
func (c *ProcessCollector) Records() []ProcessRecord { return c.records }
func (c *ProcessCollector) Total() int               { return c.total }
func (c *ProcessCollector) Running() int             { return c.running }

func (c *ProcessCollector) acquire() (string, error) { return "", nil }

// statBufPool avoids a fresh allocation per stat read; one stat line always
// fits in 4K.
var statBufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 4096)
		return &buf
	},
}

// readStatFile reads a per-process stat file with a pooled buffer. The
// descriptor is closed before the next pid is visited; process counts are
// unbounded and handles must not accumulate across iterations.
func readStatFile(path string) ([]byte, bool) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, false
	}
	defer unix.Close(fd)

	bufPtr := statBufPool.Get().(*[]byte)
	defer statBufPool.Put(bufPtr)

	n, err := unix.Read(fd, *bufPtr)
	if err != nil || n == 0 {
		return nil, false
	}
	out := make([]byte, n)
	copy(out, (*bufPtr)[:n])
	return out, true
}

func (c *ProcessCollector) parse(string) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		c.log.Error("source unavailable", "collector", c.Name(), "err", err)
		return
	}

	records := make([]ProcessRecord, 0, len(entries)/2)
	total, running := 0, 0

	for _, entry := range entries {
		if !entry.IsDir() || !probing.IsNumeric(entry.Name()) {
			continue
		}
		pid, _ := strconv.ParseInt(entry.Name(), 10, 64)

		data, ok := readStatFile(filepath.Join(c.root, entry.Name(), "stat"))
		if !ok {
			// process exited between the scan and the open
			continue
		}
		rec, ok := parseStatLine(pid, data)
		if !ok {
			continue
		}

		total++
		if rec.State == stateRunning {
			running++
		}
		records = append(records, rec)
	}

	c.records, c.total, c.running = records, total, running
}

// derive orders the inventory descending by resident set size. Ties may land
// in any order.
func (c *ProcessCollector) derive() {
	sort.Slice(c.records, func(i, j int) bool {
		return c.records[i].ResidentPages > c.records[j].ResidentPages
	})
}

// parseStatLine extracts pid-adjacent fields from a stat line. The command
// name sits between the first '(' and the last ')' and may itself contain
// parentheses or spaces, hence the last-')' rule. Fields after the closing
// paren are positional: state first, vsize and rss at offsets 20 and 21.
func parseStatLine(pid int64, data []byte) (ProcessRecord, bool) {
	start := bytes.IndexByte(data, '(')
	end := bytes.LastIndexByte(data, ')')
	if start == -1 || end == -1 || end <= start {
		return ProcessRecord{}, false
	}

	fields := bytes.Fields(data[end+1:])
	if len(fields) < 22 {
		return ProcessRecord{}, false
	}

	return ProcessRecord{
		PID:           pid,
		Name:          string(data[start+1 : end]),
		State:         fields[0][0],
		VirtualSize:   probing.ParseUint(string(fields[20])),
		ResidentPages: probing.ParseInt(string(fields[21])),
	}, true
}

func (c *ProcessCollector) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Processes: %d total, %d running\n", c.total, c.running)
	fmt.Fprintf(&b, "Top %d by resident memory:\n", topProcessCount)

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"PID", "Name", "State", "RSS"})
	for i, p := range c.records {
		if i >= topProcessCount {
			break
		}
		rssMB := float64(p.ResidentPages) * pageSizeKiB / 1024
		table.Append([]string{
			strconv.FormatInt(p.PID, 10),
			p.Name,
			string(p.State),
			fmt.Sprintf("%.1f MB", rssMB),
		})
	}
	table.Render()
	return b.String()
}
