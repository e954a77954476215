package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		wantErr   bool
	}{
		{"", false, false},
		{"info", false, false},
		{"debug", true, false},
		{"loud", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tc.level, "test")
			if (err != nil) != tc.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tc.level, err, tc.wantErr)
			}
			if err != nil {
				return
			}

			logger.Debug("hidden detail")
			if got := strings.Contains(buf.String(), "hidden detail"); got != tc.debugSeen {
				t.Errorf("Debug output present = %v, expected %v", got, tc.debugSeen)
			}
		})
	}
}

func TestNewKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", "breakout")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("ball lost", "balls_remaining", 1)

	out := buf.String()
	if !strings.Contains(out, "ball lost") || !strings.Contains(out, "balls_remaining=1") {
		t.Errorf("Log output = %q, expected message and key/value", out)
	}
	if !strings.Contains(out, "breakout") {
		t.Errorf("Log output = %q, expected prefix", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "breakout.log")

	logger, closer, err := OpenFile(path, "info", "")
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	logger.Info("episode started")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "episode started") {
		t.Errorf("Log file = %q, expected the message", data)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic
	Discard().Info("nothing", "key", "value")
}
