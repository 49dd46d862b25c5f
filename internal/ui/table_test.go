package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "PROJECT", "LOCK")
	tbl.Row("weather-pipeline", "2 packages")
	if err := tbl.Flush(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "PROJECT") || !strings.Contains(out, "weather-pipeline") {
		t.Errorf("unexpected output: %q", out)
	}
	if len(strings.Split(strings.TrimSpace(out), "\n")) != 2 {
		t.Errorf("expected header + one row: %q", out)
	}
}
