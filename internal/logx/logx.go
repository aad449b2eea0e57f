// SPDX-License-Identifier: MIT

// Package logx is a small leveled logger for the command line front end.
// Each line carries a timestamp, a level tag and a section name; ANSI colours
// are used when the destination is a terminal or when forced on.
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
)

// Level orders log severities.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	LevelCount
)

var levelNames = [LevelCount]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARNING",
	ERROR: "ERROR",
}

var levelColors = [LevelCount]string{
	DEBUG: "\033[37m",
	INFO:  "\033[34m",
	WARN:  "\033[33m",
	ERROR: "\033[31m",
}

// String returns the level tag without padding.
func (l Level) String() string {
	if l < 0 || l >= LevelCount {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// color returns the ANSI escape for l; unknown levels are left uncoloured.
func (l Level) color() string {
	if l < 0 || l >= LevelCount {
		return ""
	}
	return levelColors[l]
}

// ColorMode selects when ANSI colours are written.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

// ParseColor maps "auto", "on"/"always" and "off"/"never" to a ColorMode.
func ParseColor(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "on", "always":
		return ColorOn, nil
	case "off", "never":
		return ColorOff, nil
	}
	return ColorAuto, fmt.Errorf("logx: unknown color mode %q", s)
}

var nowTime = time.Now

// Logger writes leveled lines to one destination. It is safe for
// concurrent use.
type Logger struct {
	mu    sync.Mutex
	w     io.Writer
	min   Level
	color bool
	day   string
}

// New returns a logger dropping lines below min. With ColorAuto colours are
// enabled when w is a terminal; on Windows consoles the escapes are
// translated by go-colorable.
func New(w io.Writer, min Level, mode ColorMode) *Logger {
	l := &Logger{w: w, min: min, color: mode == ColorOn}
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		if mode == ColorAuto && tty {
			l.color = true
		}
		if l.color {
			l.w = colorable.NewColorable(f)
		}
	}
	return l
}

// Discard returns a logger that writes nothing.
func Discard() *Logger {
	return &Logger{w: io.Discard, min: LevelCount}
}

// Enabled reports whether lines at lvl are written.
func (l *Logger) Enabled(lvl Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return lvl >= l.min
}

// Printf writes one line tagged with section and lvl.
func (l *Logger) Printf(section string, lvl Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lvl < l.min {
		return
	}

	var b strings.Builder
	t := nowTime().UTC()
	if l.color {
		if d := t.Format("2006-01-02"); d != l.day {
			l.day = d
			fmt.Fprintf(&b, "\033[1mdate is %s\033[0m\n", d)
		}
		fmt.Fprintf(&b, "%s %s%8s\033[0m [\033[36m%s\033[0m] ", t.Format("15:04:05"), lvl.color(), lvl, section)
	} else {
		fmt.Fprintf(&b, "%s %8s [%s] ", t.Format("2006-01-02 15:04:05"), lvl, section)
	}
	fmt.Fprintf(&b, format, args...)
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteByte('\n')
	}
	_, _ = io.WriteString(l.w, b.String())
}

// Section returns a view of l that tags every line with name.
func (l *Logger) Section(name string) Section {
	return Section{name: name, l: l}
}

// Section is a Logger bound to one section name.
type Section struct {
	name string
	l    *Logger
}

func (s Section) Debugf(format string, args ...interface{}) {
	s.l.Printf(s.name, DEBUG, format, args...)
}

func (s Section) Infof(format string, args ...interface{}) {
	s.l.Printf(s.name, INFO, format, args...)
}

func (s Section) Warnf(format string, args ...interface{}) {
	s.l.Printf(s.name, WARN, format, args...)
}

func (s Section) Errorf(format string, args ...interface{}) {
	s.l.Printf(s.name, ERROR, format, args...)
}

// Enabled reports whether lines at lvl are written.
func (s Section) Enabled(lvl Level) bool { return s.l.Enabled(lvl) }
