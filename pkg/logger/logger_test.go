package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"  INFO ", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// Only the first Init configures the singleton; later calls return it as-is.
func TestInitIsOnce(t *testing.T) {
	var buf bytes.Buffer
	first := Init(Options{Level: "debug", Output: &buf})
	second := Init(Options{Level: "error"})

	second.Debug().Msg("still debug level")
	if !strings.Contains(buf.String(), "still debug level") {
		t.Fatalf("second Init reconfigured the logger: %q", buf.String())
	}

	first.Info().Msg("same sink")
	if !strings.Contains(buf.String(), "same sink") {
		t.Fatal("first and second instances do not share the sink")
	}
}
