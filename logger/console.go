package logger

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// Console is a Sink that writes timestamped, level-prefixed lines.
// Messages below the threshold level are discarded. Verbose, debug and
// info lines go to stdout, warn and error lines to stderr.
type Console struct {
	stdout io.Writer
	stderr io.Writer
	level  Level
	color  *Color
	now    func() time.Time
}

var _ Sink = (*Console)(nil)

func NewConsole(stdout, stderr io.Writer, level Level, noColor bool) *Console {
	return &Console{
		stdout: stdout,
		stderr: stderr,
		level:  level,
		color:  &Color{NoColor: noColor},
		now:    time.Now,
	}
}

func (c *Console) Verbose(msg string, fields Fields) {
	c.write(c.stdout, LevelVerbose, c.color.Magenta("verbose"), msg, fields)
}

func (c *Console) Debug(msg string, fields Fields) {
	c.write(c.stdout, LevelDebug, c.color.Cyan("debug"), msg, fields)
}

func (c *Console) Info(msg string, fields Fields) {
	c.write(c.stdout, LevelInfo, c.color.Green("info"), msg, fields)
}

func (c *Console) Warn(msg string, fields Fields) {
	c.write(c.stderr, LevelWarn, c.color.Yellow("warn"), msg, fields)
}

func (c *Console) Error(msg string, fields Fields) {
	c.write(c.stderr, LevelError, c.color.Red("error"), msg, fields)
}

func (c *Console) write(w io.Writer, level Level, token string, msg string, fields Fields) {
	if level < c.level {
		return
	}
	line := fmt.Sprintf("%s  %s  %s", c.now().Format("2006/01/02 15:04:05"), token, msg)
	if len(fields) > 0 {
		line += "  " + formatFields(fields)
	}
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	fmt.Fprint(w, line)
}

func formatFields(fields Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(pairs, " ")
}
