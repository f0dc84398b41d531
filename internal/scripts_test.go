package internal

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var (
	expectOutput       = regexp.MustCompile(`// expect: ?(.*)`)
	expectRuntimeError = regexp.MustCompile(`// expect runtime error: (.+)`)
	expectLineError    = regexp.MustCompile(`// (\[line \d+\] Error.*)`)
	expectError        = regexp.MustCompile(`// (Error.*)`)
)

// scriptExpectations reads the expected output from the comments of a script
func scriptExpectations(source string) (string, Result) {
	var output []string
	var errors []string
	result := ResultOK

	for i, line := range strings.Split(source, "\n") {
		lineNumber := i + 1
		if m := expectOutput.FindStringSubmatch(line); m != nil {
			output = append(output, m[1])
		} else if m := expectRuntimeError.FindStringSubmatch(line); m != nil {
			errors = append(errors, m[1], fmt.Sprintf("[line %d]", lineNumber))
			result = ResultRuntimeError
		} else if m := expectLineError.FindStringSubmatch(line); m != nil {
			errors = append(errors, m[1])
			result = ResultStaticError
		} else if m := expectError.FindStringSubmatch(line); m != nil {
			errors = append(errors, fmt.Sprintf("[line %d] %s", lineNumber, m[1]))
			result = ResultStaticError
		}
	}

	expected := ""
	for _, line := range append(output, errors...) {
		expected += line + "\n"
	}
	return expected, result
}

func TestScripts(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.lox"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("No scripts found")
	}

	for _, file := range files {
		file := file
		t.Run(filepath.Base(file), func(t *testing.T) {
			b, err := ioutil.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			source := string(b)
			expected, expectedResult := scriptExpectations(source)

			tp := &testPrinter{}
			if res := RunSourceWithPrinter(source, tp); res != expectedResult {
				t.Errorf("Expected %s, got %s", expectedResult, res)
			}
			if tp.printed != expected {
				t.Errorf("\nExpected:\n----\n%s----\nFound:\n----\n%s----", expected, tp.printed)
			}
		})
	}
}
