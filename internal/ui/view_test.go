package ui

import (
	"strings"
	"testing"
)

func TestStepRowMarkerKeepsNumber(t *testing.T) {
	row := stepRow(100, 100, true, "the hundredth step", 60)
	if !strings.Contains(row, "100") {
		t.Errorf("stepRow = %q, cursor marker ate into the step number", row)
	}
	if !strings.Contains(row, "▶") {
		t.Errorf("stepRow = %q, missing cursor marker", row)
	}
}

func TestStepRowMarkerOnlyOnCurrent(t *testing.T) {
	tests := []struct {
		n, current int
		running    bool
		marker     bool
	}{
		{1, 1, true, true},
		{2, 1, true, false},
		{1, 2, true, false},
		{1, 1, false, false},
	}
	for _, tt := range tests {
		row := stepRow(tt.n, tt.current, tt.running, "caption", 60)
		if got := strings.Contains(row, "▶"); got != tt.marker {
			t.Errorf("stepRow(%d, %d, %v) marker = %v, want %v", tt.n, tt.current, tt.running, got, tt.marker)
		}
		if !strings.Contains(row, "caption") {
			t.Errorf("stepRow(%d, %d, %v) = %q, missing caption", tt.n, tt.current, tt.running, row)
		}
	}
}
