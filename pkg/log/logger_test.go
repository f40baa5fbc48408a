package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureOutput redirects all loggers to a buffer for the duration of the test
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	previous := GetLevel()
	var buf bytes.Buffer
	SetSink(&buf)
	t.Cleanup(func() {
		SetSink(os.Stdout)
		SetLevel(previous)
	})
	return &buf
}

func TestSetLevel_Filters(t *testing.T) {
	buf := captureOutput(t)
	logger := New("filter-test")

	SetLevel(Warning)
	logger.Info("dropped info")
	logger.Warning("kept warning")
	logger.Errorf("kept %s", "error")

	out := buf.String()
	if strings.Contains(out, "dropped info") {
		t.Errorf("Info message passed a Warning filter: %q", out)
	}
	if !strings.Contains(out, "kept warning") || !strings.Contains(out, "kept error") {
		t.Errorf("Expected warning and error messages, got %q", out)
	}
	if !strings.Contains(out, "[filter-test]") {
		t.Errorf("Expected module name in output, got %q", out)
	}
}

func TestSetSink_KeepsLevel(t *testing.T) {
	captureOutput(t)
	SetLevel(Debug)

	var buf bytes.Buffer
	SetSink(&buf)
	New("sink-test").Debug("still visible")

	if GetLevel() != Debug {
		t.Errorf("Expected level debug after SetSink, got %v", GetLevel())
	}
	if !strings.Contains(buf.String(), "still visible") {
		t.Errorf("Debug message lost after SetSink: %q", buf.String())
	}
}

func TestSetLevel_IgnoresOutOfRange(t *testing.T) {
	captureOutput(t)
	SetLevel(Info)
	SetLevel(Level(42))
	if GetLevel() != Info {
		t.Errorf("Expected level to stay info, got %v", GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", Debug, false},
		{"INFO", Info, false},
		{"Notice", Notice, false},
		{"warning", Warning, false},
		{"error", Error, false},
		{"verbose", Notice, true},
		{"", Notice, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %t", tt.input, err, tt.wantErr)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, level, tt.expected)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	for _, level := range []Level{Debug, Info, Notice, Warning, Error} {
		parsed, err := ParseLevel(level.String())
		if err != nil || parsed != level {
			t.Errorf("Level %d: String %q parses to %v (%v)", int(level), level.String(), parsed, err)
		}
	}
	if got := Level(9).String(); got != "level(9)" {
		t.Errorf("Expected level(9), got %q", got)
	}
}

func TestPrintfAdapter_LogsAtInfo(t *testing.T) {
	buf := captureOutput(t)
	adapter := PrintfAdapter{Logger: New("adapter-test")}

	SetLevel(Notice)
	adapter.Printf("row %d done", 3)
	if strings.Contains(buf.String(), "row 3 done") {
		t.Errorf("Info message passed a Notice filter: %q", buf.String())
	}

	SetLevel(Info)
	adapter.Printf("row %d done", 4)
	if !strings.Contains(buf.String(), "row 4 done") {
		t.Errorf("Expected adapter output at Info, got %q", buf.String())
	}
}
