package cmd

import (
	"testing"

	"github.com/achilleasa/objview/log"
)

func TestLogLevel(t *testing.T) {
	type spec struct {
		name        string
		quiet       bool
		verbose     bool
		veryVerbose bool
		exp         log.Level
	}
	specs := []spec{
		{"", false, false, false, log.Notice},
		{"error", false, false, false, log.Error},
		{"WARN", false, false, false, log.Warning},
		{"debug", true, false, false, log.Warning},
		{"error", false, true, false, log.Info},
		{"", true, true, true, log.Debug},
	}

	for idx, s := range specs {
		level, err := logLevel(s.name, s.quiet, s.verbose, s.veryVerbose)
		if err != nil {
			t.Fatalf("[spec %d] %v", idx, err)
		}
		if level != s.exp {
			t.Fatalf("[spec %d] expected level %d; got %d", idx, s.exp, level)
		}
	}
}

func TestLogLevelRejectsUnknownName(t *testing.T) {
	expError := `log: unknown level "chatty"`
	_, err := logLevel("chatty", false, false, false)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}
