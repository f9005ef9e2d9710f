package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "NEIGHBOR", "STATUS")
	tbl.Flush()

	if buf.Len() != 0 {
		t.Errorf("empty table should print nothing, got %q", buf.String())
	}
}

func TestTable_Rows(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "NEIGHBOR", "STATUS")
	tbl.Row("10.0.0.17", "Not Migrated")
	tbl.Row("10.0.0.1", "-150")
	tbl.Flush()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "NEIGHBOR   STATUS" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "--------   ------" {
		t.Errorf("divider = %q", lines[1])
	}
	if lines[2] != "10.0.0.17  Not Migrated" {
		t.Errorf("row = %q", lines[2])
	}
	if lines[3] != "10.0.0.1   -150" {
		t.Errorf("row = %q", lines[3])
	}
}

func TestTable_WithPrefix(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "A", "B").WithPrefix("  ")
	tbl.Row("1", "2")
	tbl.Flush()

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if !strings.HasPrefix(line, "  ") {
			t.Errorf("line %q missing prefix", line)
		}
	}
}
