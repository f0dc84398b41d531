package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"lox/internal"
)

func writeScript(t *testing.T, source string) string {
	path := filepath.Join(t.TempDir(), "script.lox")
	if err := ioutil.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunFileExitCodes(t *testing.T) {
	logger, _ := test.NewNullLogger()

	tests := []struct {
		source string
		code   int
	}{
		{"var a = 1;", 0},
		{"print 1 +;", exitStaticError},
		{"return 1;", exitStaticError},
		{"print nil + 1;", exitRuntimeError},
	}

	for _, tt := range tests {
		in := internal.NewInterpreter(newStdPrinter(internal.ColorNever), internal.WithLogger(logger))
		if code := runFile(in, writeScript(t, tt.source), logger); code != tt.code {
			t.Errorf("%q: expected exit code %d, got %d", tt.source, tt.code, code)
		}
	}
}

func TestRunFileMissing(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	in := internal.NewInterpreter(newStdPrinter(internal.ColorNever))
	path := filepath.Join(t.TempDir(), "missing.lox")
	if code := runFile(in, path, logger); code != exitStaticError {
		t.Errorf("Expected exit code %d, got %d", exitStaticError, code)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Data[logrus.ErrorKey] == nil {
		t.Error("The read error was not logged")
	}
}

func TestRunUsage(t *testing.T) {
	t.Setenv(internal.ConfigEnv, filepath.Join(t.TempDir(), "none.yaml"))
	if code := run([]string{"a.lox", "b.lox"}); code != exitUsage {
		t.Errorf("Expected exit code %d, got %d", exitUsage, code)
	}
}

func TestColorEnabled(t *testing.T) {
	if !colorEnabled(internal.ColorAlways, os.Stderr) {
		t.Error("always should enable colors")
	}
	if colorEnabled(internal.ColorNever, os.Stderr) {
		t.Error("never should disable colors")
	}

	f, err := ioutil.TempFile(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if colorEnabled(internal.ColorAuto, f) {
		t.Error("A regular file is not a terminal")
	}
}
