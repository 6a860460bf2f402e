package findoption

import (
	"bytes"
	"errors"
	"testing"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

func setupLogging() *bytes.Buffer {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return buf
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	buf := setupLogging()
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// wantArgs - builds the expected argument slots, values prefixed with "=" are defaulted.
func wantArgs(values ...string) []Arg {
	out := make([]Arg, len(values))
	for i, v := range values {
		if len(v) > 0 && v[0] == '=' {
			out[i] = Arg{Value: v[1:], Defaulted: true}
			continue
		}
		out[i] = Arg{Value: v}
	}
	return out
}
