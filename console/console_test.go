//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadLine(t *testing.T) {
	c := NewConsole(strings.NewReader("one\r\ntwo\n\nthree"), io.Discard, io.Discard)
	for _, want := range []string{"one", "two", "", "three"} {
		line, err := c.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine failed: %+v", err)
		}
		if line != want {
			t.Errorf("ReadLine = %q, want %q", line, want)
		}
	}
	if _, err := c.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine at end = %v, want io.EOF", err)
	}
}

func TestOutput(t *testing.T) {
	var out, errout bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out, &errout)
	c.Prompt()
	c.PrintLines([]string{"a", "", "b"})
	c.Message("Invalid command.")
	c.Error(errors.New("Invalid line number."))
	if got := out.String(); got != "> a\n\nb\nInvalid command.\n" {
		t.Errorf("Unexpected output: %q", got)
	}
	if got := errout.String(); got != "Error: Invalid line number.\n" {
		t.Errorf("Unexpected error output: %q", got)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
		err   error
	}{
		{"y\n", true, nil},
		{"Y\n", true, nil},
		{"yes\n", false, nil},
		{"n\n", false, nil},
		{"\n   \nY extra\n", true, nil},
		{"", false, io.EOF},
	}
	for _, test := range tests {
		var out bytes.Buffer
		c := NewConsole(strings.NewReader(test.input), &out, io.Discard)
		got, err := c.Confirm("Save? ")
		if got != test.want || err != test.err {
			t.Errorf("Confirm with %q = %v, %v; want %v, %v", test.input, got, err, test.want, test.err)
		}
		if out.String() != "Save? " {
			t.Errorf("Unexpected question: %q", out.String())
		}
	}
}
