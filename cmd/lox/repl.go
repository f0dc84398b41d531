package main

import (
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"lox/internal"
)

// runPrompt reads and runs one line at a time. Globals persist between
// lines, a faulty line only discards its own effects.
func runPrompt(in *internal.Interpreter, config internal.Config, log logrus.FieldLogger) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	historyPath := config.HistoryPath()
	if err := loadHistory(ln, historyPath); err != nil {
		log.WithError(err).Debug("History not loaded")
	}

	for {
		line, err := ln.Prompt(config.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if err != io.EOF {
				log.WithError(err).Warn("Reading input failed")
			}
			break
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		result := in.Run(line)
		log.WithField("result", result).Debug("Line evaluated")
	}

	if err := saveHistory(ln, historyPath); err != nil {
		log.WithError(err).Debug("History not saved")
	}
	return 0
}

func loadHistory(ln *liner.State, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "opening history %s", path)
	}
	defer f.Close()
	_, err = ln.ReadHistory(f)
	return errors.Wrap(err, "reading history")
}

func saveHistory(ln *liner.State, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating history %s", path)
	}
	defer f.Close()
	_, err = ln.WriteHistory(f)
	return errors.Wrap(err, "writing history")
}
