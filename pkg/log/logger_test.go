package log

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Warning)
	logger.Noticef("hidden %d", 1)
	logger.Warningf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden 1") {
		t.Errorf("Expected notice to be filtered at warning level, got %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("Expected warning in output, got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in output, got %q", out)
	}
}

func TestSetSinkKeepsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLevel(Debug)
	defer SetLevel(Notice)

	SetSink(&buf)
	defer SetSink(os.Stdout)

	New("test").Debugf("debug line")
	if !strings.Contains(buf.String(), "debug line") {
		t.Errorf("Expected debug line after changing sink, got %q", buf.String())
	}
}

func TestModuleLevels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)
	defer ResetModuleLevels()

	if err := ParseSpec("warning, chatty=debug"); err != nil {
		t.Fatalf("ParseSpec failed: %v", err)
	}

	New("chatty").Debugf("chatty debug")
	New("quiet").Noticef("quiet notice")

	out := buf.String()
	if !strings.Contains(out, "chatty debug") {
		t.Errorf("Expected debug line from module with its own level, got %q", out)
	}
	if strings.Contains(out, "quiet notice") {
		t.Errorf("Expected notice to be filtered by the default level, got %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("Expected plain output for a non-terminal sink, got %q", out)
	}

	ResetModuleLevels()
	buf.Reset()
	New("chatty").Debugf("after reset")
	if strings.Contains(buf.String(), "after reset") {
		t.Errorf("Expected module level to be dropped, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "INFO", "Notice", "warning", "error"} {
		level, err := ParseLevel(name)
		if err != nil {
			t.Errorf("ParseLevel(%q) failed: %v", name, err)
			continue
		}
		if !strings.EqualFold(level.String(), name) {
			t.Errorf("ParseLevel(%q) = %v", name, level)
		}
	}

	if _, err := ParseLevel("loud"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Expected ErrUnknownLevel, got %v", err)
	}
	if err := ParseSpec("server=loud"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Expected ErrUnknownLevel from ParseSpec, got %v", err)
	}
}
