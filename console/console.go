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
	"bufio"
	"fmt"
	"io"
	"strings"
)

// The Console reads commands and writes results and errors.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	errout io.Writer
	prompt string
}

func NewConsole(in io.Reader, out, errout io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out, errout: errout, prompt: "> "}
}

func (c *Console) Prompt() {
	fmt.Fprint(c.out, c.prompt)
}

// ReadLine returns the next input line without its line terminator.
// io.EOF is returned only when no more input remains.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func (c *Console) PrintLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
}

func (c *Console) Message(text string) {
	fmt.Fprintln(c.out, text)
}

func (c *Console) Error(err error) {
	fmt.Fprintf(c.errout, "Error: %s\n", err.Error())
}

// Confirm asks a question and reads a one-word answer.
// Only Y and y count as yes.
func (c *Console) Confirm(question string) (bool, error) {
	fmt.Fprint(c.out, question)
	for {
		line, err := c.ReadLine()
		if err != nil {
			return false, err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		return fields[0] == "Y" || fields[0] == "y", nil
	}
}
