package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintOffsets(t *testing.T) {
	var buf bytes.Buffer
	printOffsets(&buf, 1, false)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 offsets within radius 1, got %d", len(lines))
	}
	if lines[0] != "0 0 0 0" {
		t.Errorf("expected the origin first, got %q", lines[0])
	}
}

func TestPrintOffsetsCount(t *testing.T) {
	for radius, exp := range map[int]string{0: "1\n", 3: "45\n", 64: "13237\n"} {
		var buf bytes.Buffer
		printOffsets(&buf, radius, true)
		if buf.String() != exp {
			t.Errorf("radius %d: expected %q, got %q", radius, exp, buf.String())
		}
	}
}
