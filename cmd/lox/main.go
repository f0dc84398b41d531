package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"lox/internal"
)

const (
	exitUsage        = 64
	exitStaticError  = 65
	exitRuntimeError = 70
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	config, err := internal.LoadConfig(internal.ConfigPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		config = internal.DefaultConfig()
	}

	log := config.NewLogger()
	in := internal.NewInterpreter(
		newStdPrinter(config.Color),
		internal.WithLogger(log),
		internal.WithMaxCallDepth(config.MaxCallDepth),
	)

	switch len(args) {
	case 0:
		return runPrompt(in, config, log)
	case 1:
		return runFile(in, args[0], log)
	default:
		fmt.Println("Usage: lox [script]")
		return exitUsage
	}
}

func runFile(in *internal.Interpreter, path string, log logrus.FieldLogger) int {
	source, err := readSource(path)
	if err != nil {
		log.WithError(err).Debug("Could not read script")
		fmt.Printf("Could not access file '%s', aborting.\n", path)
		return exitStaticError
	}

	switch in.Run(source) {
	case internal.ResultStaticError:
		return exitStaticError
	case internal.ResultRuntimeError:
		return exitRuntimeError
	}
	return 0
}

func readSource(path string) (string, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading script %s", path)
	}
	return string(b), nil
}
