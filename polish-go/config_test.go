package polish_go

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadFlags(t *testing.T) {
	tests := []struct {
		args []string
		exit int
		want Config
	}{
		{[]string{"polish"}, -1, Config{LogLevel: WARNING}},
		{[]string{"polish", "-l", "debug"}, -1, Config{LogLevel: DEBUG}},
		{[]string{"polish", "-v"}, -1, Config{LogLevel: VERBOSE}},
		{[]string{"polish", "-q"}, -1, Config{LogLevel: ERROR}},
		{[]string{"polish", "-d", "stats", "-d", "journal"}, -1, Config{LogLevel: WARNING, ShowStats: true, DumpJournal: true}},
		{[]string{"polish", "-d", "nojournal"}, -1, Config{LogLevel: WARNING, NoJournal: true}},
		{[]string{"polish", "-l", "loud"}, 1, Config{LogLevel: WARNING}},
		{[]string{"polish", "-d", "list"}, 1, Config{LogLevel: WARNING}},
		{[]string{"polish", "-h"}, 1, Config{LogLevel: WARNING}},
		{[]string{"polish", "extra"}, 2, Config{LogLevel: WARNING}},
	}
	for _, tt := range tests {
		config := &Config{LogLevel: WARNING}
		var out bytes.Buffer
		args := tt.args
		if got := ReadFlags(&args, config, &out); got != tt.exit {
			t.Errorf("ReadFlags(%q) = %d, want %d; output:\n%s", tt.args, got, tt.exit, out.String())
		}
		if *config != tt.want {
			t.Errorf("ReadFlags(%q) config = %+v, want %+v", tt.args, *config, tt.want)
		}
	}
}

func TestReadFlagsVersion(t *testing.T) {
	var out bytes.Buffer
	args := []string{"polish", "-V"}
	if got := ReadFlags(&args, NewConfig(), &out); got != 0 {
		t.Fatalf("exit = %d", got)
	}
	if out.String() != Version()+"\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestDebugEnableSuggestion(t *testing.T) {
	var out bytes.Buffer
	if DebugEnable("stat", &Config{}, &out) {
		t.Fatal("unknown mode enabled")
	}
	if !strings.Contains(out.String(), "did you mean 'stats'?") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestNewConfigEnvironment(t *testing.T) {
	t.Setenv(kLogLevelEnv, "info")
	if got := NewConfig().LogLevel; got != INFO {
		t.Fatalf("LogLevel = %v", got)
	}
	t.Setenv(kLogLevelEnv, "bogus")
	if got := NewConfig().LogLevel; got != WARNING {
		t.Fatalf("LogLevel = %v", got)
	}
}
