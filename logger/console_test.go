package logger

import (
	"bytes"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2020, 4, 1, 12, 30, 45, 0, time.UTC)
}

func newTestConsole(level Level) (*Console, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	c := NewConsole(stdout, stderr, level, true)
	c.now = fixedNow
	return c, stdout, stderr
}

func TestConsoleWritesPrefixedLines(t *testing.T) {
	c, stdout, stderr := newTestConsole(LevelVerbose)

	c.Verbose("starting", nil)
	c.Debug("probing", nil)
	c.Info("ready", nil)

	want := "2020/04/01 12:30:45  verbose  starting\n" +
		"2020/04/01 12:30:45  debug  probing\n" +
		"2020/04/01 12:30:45  info  ready\n"
	if stdout.String() != want {
		t.Errorf("stdout: got %q, want %q", stdout.String(), want)
	}
	if stderr.String() != "" {
		t.Errorf("stderr: got %q, want empty", stderr.String())
	}
}

func TestConsoleRoutesWarnAndErrorToStderr(t *testing.T) {
	c, stdout, stderr := newTestConsole(LevelVerbose)

	c.Warn("disk low", nil)
	c.Error("disk full", nil)

	want := "2020/04/01 12:30:45  warn  disk low\n" +
		"2020/04/01 12:30:45  error  disk full\n"
	if stderr.String() != want {
		t.Errorf("stderr: got %q, want %q", stderr.String(), want)
	}
	if stdout.String() != "" {
		t.Errorf("stdout: got %q, want empty", stdout.String())
	}
}

func TestConsoleFormatsFieldsSorted(t *testing.T) {
	c, _, stderr := newTestConsole(LevelVerbose)

	c.Warn("cache miss", Fields{"shard": 3, "bucket": "assets"})

	want := "2020/04/01 12:30:45  warn  cache miss  bucket=assets shard=3\n"
	if stderr.String() != want {
		t.Errorf("got %q, want %q", stderr.String(), want)
	}
}

func TestConsoleLevelThreshold(t *testing.T) {
	c, stdout, stderr := newTestConsole(LevelWarn)

	c.Verbose("hidden", nil)
	c.Debug("hidden", nil)
	c.Info("hidden", nil)
	c.Warn("shown", nil)
	c.Error("shown", nil)

	if stdout.String() != "" {
		t.Errorf("stdout: got %q, want empty", stdout.String())
	}
	want := "2020/04/01 12:30:45  warn  shown\n" +
		"2020/04/01 12:30:45  error  shown\n"
	if stderr.String() != want {
		t.Errorf("stderr: got %q, want %q", stderr.String(), want)
	}
}

func TestConsoleColorTokens(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	c := NewConsole(stdout, stderr, LevelVerbose, false)
	c.now = fixedNow

	c.Error("boom", nil)

	want := "2020/04/01 12:30:45  \033[31merror\033[0m  boom\n"
	if stderr.String() != want {
		t.Errorf("got %q, want %q", stderr.String(), want)
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"verbose", "debug", "info", "warn", "error"} {
		l, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %s", s, err)
		}
		if l.String() != s {
			t.Errorf("round trip: got %q, want %q", l.String(), s)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
