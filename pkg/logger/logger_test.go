package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		"info":    InfoLevel,
		"warn":    WarnLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
		"bogus":   InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(Config{Level: WarnLevel, Writer: &buf, NoColor: true})

	l.Debugf("hidden debug")
	l.Infof("hidden info")
	l.Warnf("visible warning")
	l.Errorf("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Messages below the level leaked: %q", out)
	}
	if !strings.Contains(out, "visible warning") || !strings.Contains(out, "visible error") {
		t.Errorf("Expected warn and error output, got %q", out)
	}
}

func TestWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(Config{Level: InfoLevel, Writer: &buf, NoColor: true})

	l.WithPrefix("pipeline").Infof("stage done")

	if !strings.Contains(buf.String(), "[pipeline]") {
		t.Errorf("Expected prefixed output, got %q", buf.String())
	}
}

func TestNopDiscardsEverything(t *testing.T) {
	// Must not panic and must satisfy the interface for every call.
	n := Nop()
	n.Debugf("x")
	n.Infof("x")
	n.Warnf("x")
	n.Errorf("x")
	n.WithPrefix("y").Infof("x")
}
