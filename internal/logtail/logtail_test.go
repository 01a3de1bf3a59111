package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "missing.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil for a missing file", err)
	}
	if len(got) != 0 {
		t.Fatalf("Read() = %v, want no lines", got)
	}
}

func TestParse_ZerologLine(t *testing.T) {
	line := `{"level":"warn","service":"spacex-explorer","failures":2,"error":"api launches: execute request: dial tcp: refused","time":"2026-03-01T10:04:05.5Z","message":"background refresh failed"}`

	got := Parse(line)

	want := time.Date(2026, 3, 1, 10, 4, 5, 500_000_000, time.UTC)
	if !got.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", got.Time, want)
	}
	if got.Level != "WARN" {
		t.Fatalf("Level = %q, want WARN", got.Level)
	}
	if got.Message != "background refresh failed" {
		t.Fatalf("Message = %q", got.Message)
	}
	if !strings.Contains(got.Error, "dial tcp") {
		t.Fatalf("Error = %q, want the error field", got.Error)
	}
	if !reflect.DeepEqual(got.Fields, []Field{{Key: "failures", Value: "2"}}) {
		t.Fatalf("Fields = %+v, want failures=2 only", got.Fields)
	}
	if got.Raw != line {
		t.Fatalf("Raw not kept")
	}
}

func TestParse_FieldFormatting(t *testing.T) {
	got := Parse(`{"level":"debug","duration":12.5,"ok":true,"ids":["a","b"],"missing":null}`)
	want := []Field{
		{Key: "duration", Value: "12.500"},
		{Key: "ids", Value: `["a","b"]`},
		{Key: "missing", Value: "null"},
		{Key: "ok", Value: "true"},
	}
	if !reflect.DeepEqual(got.Fields, want) {
		t.Fatalf("Fields = %+v, want %+v", got.Fields, want)
	}
}

func TestParse_PlainLine(t *testing.T) {
	got := Parse("  panic: something broke  ")
	if got.Level != "" || !got.Time.IsZero() {
		t.Fatalf("plain line parsed as structured: %+v", got)
	}
	if got.Message != "panic: something broke" {
		t.Fatalf("Message = %q", got.Message)
	}
	if got.String() != "panic: something broke" {
		t.Fatalf("String() = %q", got.String())
	}
}

func TestEntryString(t *testing.T) {
	e := Entry{
		Level:   "INFO",
		Message: "starting",
		Error:   "boom",
		Fields:  []Field{{Key: "db", Value: "/tmp/cache.db"}},
	}
	if got := e.String(); got != "INFO starting error=boom db=/tmp/cache.db" {
		t.Fatalf("String() = %q", got)
	}
}

func TestTail_SkipsBlankLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "spacex.log")
	content := `{"level":"info","message":"one"}` + "\n\n" + `{"level":"error","message":"two"}` + "\n"
	if err := os.WriteFile(logPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	entries, err := Tail(logPath, 10)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	if len(entries) != 2 || entries[0].Message != "one" || entries[1].Level != "ERROR" {
		t.Fatalf("Tail() = %+v", entries)
	}
}
