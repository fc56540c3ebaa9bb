//go:build unix

package backend

import (
	"strings"
	"testing"
)

func TestTTYResetSequence(t *testing.T) {
	var buf strings.Builder
	writeTTYReset(&buf)
	got := buf.String()

	tests := []struct {
		name string
		seq  string
	}{
		{"reset attributes", "\x1b[0m"},
		{"show cursor", "\x1b[?25h"},
		{"mouse reporting off", "\x1b[?1000l"},
		{"sgr mouse off", "\x1b[?1006l"},
		{"main screen", "\x1b[?1049l"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(got, tt.seq) {
				t.Errorf("reset sequence missing %q", tt.seq)
			}
		})
	}

	// Leaving the alternate screen must come last or a later reset
	// would land on the wrong screen.
	if !strings.HasSuffix(got, "\x1b[?1049l") {
		t.Errorf("reset sequence does not end with main-screen switch: %q", got)
	}
}
