package main

import (
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/mattn/go-isatty"

	"lox/internal"
)

// stdPrinter writes program output to stdout and paints diagnostics
// written to stderr in red
type stdPrinter struct {
	color *color.Color
}

func newStdPrinter(mode string) stdPrinter {
	c := color.New()
	if !colorEnabled(mode, os.Stderr) {
		c.Disable()
	}
	return stdPrinter{color: c}
}

func colorEnabled(mode string, f *os.File) bool {
	switch mode {
	case internal.ColorAlways:
		return true
	case internal.ColorNever:
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprint(w, s.color.Red(fmt.Sprintf(format, a...)))
	}
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprintln(w, s.color.Red(fmt.Sprint(a...)))
	}
	return fmt.Fprintln(w, a...)
}
