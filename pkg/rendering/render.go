// Package rendering formats collector records into the terminal report.
package rendering

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

const clearScreen = "\033[2J\033[H"

var (
	headerColor    = color.New(color.FgCyan, color.Bold)
	separatorColor = color.New(color.FgYellow)
	footerColor    = color.New(color.FgGreen)
)

// Bytes humanizes a byte count in binary units.
func Bytes(n uint64) string {
	return humanize.IBytes(n)
}

// KiB humanizes a kibibyte count.
func KiB(kb uint64) string {
	return humanize.IBytes(kb * 1024)
}

// Uptime breaks a seconds value into days, hours, minutes and seconds.
func Uptime(seconds float64) string {
	total := int64(seconds)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	fmt.Fprintf(&b, "%dh %dm %ds", hours, minutes, secs)
	return b.String()
}

// ClearScreen homes the cursor and wipes the terminal.
func ClearScreen(w io.Writer) {
	io.WriteString(w, clearScreen)
}

// Header prints the report banner with the run's session id.
func Header(w io.Writer, session string) {
	headerColor.Fprintln(w, "╔══════════════════════════════════════════════════════════╗")
	headerColor.Fprintln(w, "║                Linux System Resource Monitor             ║")
	headerColor.Fprintln(w, "╚══════════════════════════════════════════════════════════╝")
	fmt.Fprintf(w, "session %s\n\n", session)
}

// Separator prints a rule line between collector sections.
func Separator(w io.Writer) {
	separatorColor.Fprintln(w, "──────────────────────────────────────────────────────────────")
}

// Footer prints the refresh notice under the report.
func Footer(w io.Writer) {
	fmt.Fprintln(w)
	footerColor.Fprintln(w, "[refreshing every second | Ctrl+C to exit]")
}
