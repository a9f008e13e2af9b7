package dupmirror

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetDebugFlags(t *testing.T) {
	defer SetDebugFlags("")

	SetDebugFlags("scan, Relocate,registry:off")
	if !IsDebugEnabled("scan") {
		t.Error("Expected scan enabled")
	}
	if !IsDebugEnabled("relocate") {
		t.Error("Expected relocate enabled (case-insensitive)")
	}
	if IsDebugEnabled("registry") {
		t.Error("Expected registry disabled by :off")
	}
	if IsDebugEnabled("unknown") {
		t.Error("Unknown flag should be disabled")
	}

	SetDebugFlags("")
	if IsDebugEnabled("scan") {
		t.Error("Expected flags cleared")
	}
}

func TestVerboseLog_Levels(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer func() {
		SetLogOutput(nil)
		SetVerboseLevel(0)
	}()

	SetVerboseLevel(1)
	if GetVerboseLevel() != 1 {
		t.Fatalf("Expected level 1, got %d", GetVerboseLevel())
	}

	VerboseLog(0, "warning shown")
	VerboseLog(1, "info shown\n")
	VerboseLog(2, "debug hidden")

	out := buf.String()
	if !strings.Contains(out, "warning shown") || !strings.Contains(out, "info shown") {
		t.Errorf("Expected level 0 and 1 messages, got:\n%s", out)
	}
	if strings.Contains(out, "debug hidden") {
		t.Errorf("Level 2 message should be hidden at level 1:\n%s", out)
	}
}

func TestVerboseEnter(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer func() {
		SetLogOutput(nil)
		SetVerboseLevel(0)
	}()

	SetVerboseLevel(3)
	func() {
		defer VerboseEnter()()
	}()

	out := buf.String()
	if !strings.Contains(out, "enter") || !strings.Contains(out, "exit") {
		t.Errorf("Expected enter/exit trace lines, got:\n%s", out)
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer func() {
		SetLogOutput(nil)
		SetVerboseLevel(0)
	}()

	SetVerboseLevel(1)
	Logger().WithField("root", "/src").Info("walk started")
	if out := buf.String(); !strings.Contains(out, "walk started") || !strings.Contains(out, "root=/src") {
		t.Errorf("Expected message with field, got %q", out)
	}
}
