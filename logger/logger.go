package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission implementations indicate whether the caller is allowed to log.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is a Permission that always allows logging.
var Allow Permission = allow{}

// maximum number of entries kept by the central log
const maxEntries = 256

type entry struct {
	tag      string
	detail   string
	repeated int
}

func (e entry) String() string {
	if e.repeated > 0 {
		return fmt.Sprintf("%s: %s (x%d)", e.tag, e.detail, e.repeated+1)
	}
	return fmt.Sprintf("%s: %s", e.tag, e.detail)
}

type logger struct {
	// the central log is written to from more than one goroutine
	crit    sync.Mutex
	entries []entry
	echo    io.Writer
}

var central = &logger{}

func (l *logger) log(tag string, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// repeated entries are collapsed but still echoed
	if n := len(l.entries); n > 0 {
		last := &l.entries[n-1]
		if last.tag == tag && last.detail == detail {
			last.repeated++
			if l.echo != nil {
				fmt.Fprintln(l.echo, *last)
			}
			return
		}
	}

	e := entry{tag: tag, detail: detail}
	l.entries = append(l.entries, e)
	if len(l.entries) > maxEntries {
		l.entries = l.entries[len(l.entries)-maxEntries:]
	}

	if l.echo != nil {
		fmt.Fprintln(l.echo, e)
	}
}

func allowed(perm Permission) bool {
	return perm != nil && perm.AllowLogging()
}

// Log adds an entry to the central log. The detail can be of any type but
// errors and fmt.Stringer implementations are treated specially.
func Log(perm Permission, tag string, detail any) {
	if !allowed(perm) {
		return
	}

	var s string
	switch d := detail.(type) {
	case error:
		s = d.Error()
	case fmt.Stringer:
		s = d.String()
	case string:
		s = d
	default:
		s = fmt.Sprintf("%v", d)
	}

	central.log(tag, strings.TrimSpace(s))
}

// Logf adds a formatted entry to the central log.
func Logf(perm Permission, tag string, format string, args ...any) {
	if !allowed(perm) {
		return
	}
	central.log(tag, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// SetEcho prints new log entries to the io.Writer. If writeRecent is true the
// existing entries are written first. A nil io.Writer turns echoing off.
func SetEcho(output io.Writer, writeRecent bool) {
	central.crit.Lock()
	defer central.crit.Unlock()

	central.echo = output
	if output != nil && writeRecent {
		for _, e := range central.entries {
			fmt.Fprintln(output, e)
		}
	}
}

// Tail writes the last number of entries to the io.Writer. A negative number
// writes every entry.
func Tail(output io.Writer, number int) {
	central.crit.Lock()
	defer central.crit.Unlock()

	n := len(central.entries)
	if number >= 0 && number < n {
		n = number
	}
	for _, e := range central.entries[len(central.entries)-n:] {
		fmt.Fprintln(output, e)
	}
}

// Write writes every entry to the io.Writer.
func Write(output io.Writer) {
	Tail(output, -1)
}

// Clear removes every entry from the central log.
func Clear() {
	central.crit.Lock()
	defer central.crit.Unlock()
	central.entries = central.entries[:0]
}
