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
package commander

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/timburks/lined/console"
	"github.com/timburks/lined/editor"
	"github.com/timburks/lined/operations"
	lined "github.com/timburks/lined/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor  lined.Editor
	console *console.Console
	mode    int // commander mode
}

func NewCommander(e lined.Editor, c *console.Console) *Commander {
	return &Commander{editor: e, console: c, mode: lined.ModeCommand}
}

func (c *Commander) IsRunning() bool {
	return c.mode != lined.ModeQuit
}

// Run reads and performs commands until a quit command or the end of input.
// Command errors are reported and the loop continues.
func (c *Commander) Run(ctx context.Context) error {
	for c.IsRunning() {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.console.Prompt()
		line, err := c.console.ReadLine()
		if err == io.EOF {
			c.mode = lined.ModeQuit
			return nil
		}
		if err != nil {
			return err
		}
		if err = c.ProcessLine(line); err != nil {
			c.console.Error(err)
		}
	}
	return nil
}

// splitCommand separates the command name from its argument text.
// One separator character after the name is consumed.
func splitCommand(line string) (name string, rest string, hasRest bool) {
	line = strings.TrimLeft(line, " \t")
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, "", false
	}
	return line[:i], line[i+1:], true
}

// ProcessLine performs one command line.
func (c *Commander) ProcessLine(line string) error {
	name, rest, hasRest := splitCommand(line)
	if name == "" {
		return nil
	}
	fields := strings.Fields(rest)

	switch name {
	case "W":
		op := &operations.Write{}
		if len(fields) > 0 {
			op.FileName = fields[0]
		}
		return c.editor.Perform(op)
	case "J":
		if len(fields) == 0 {
			return editor.ErrInvalidLineNumber
		}
		p, err := parsePosition(fields[0])
		if err != nil {
			return err
		}
		return c.editor.Perform(&operations.Jump{Position: p})
	case "I", "A":
		// With nothing after the command, the text is on the next line.
		text := rest
		if !hasRest {
			next, err := c.console.ReadLine()
			if err != nil && err != io.EOF {
				return err
			}
			text = next
		}
		position := lined.InsertAtStartOfLine
		if name == "A" {
			position = lined.InsertAtNewLineBelowCursor
		}
		return c.editor.Perform(&operations.Insert{Position: position, Text: text})
	case "L":
		start, end, err := parseRange(fields, unsetEnd)
		if err != nil {
			return err
		}
		op := &operations.List{Start: start, End: end}
		if err = c.editor.Perform(op); err != nil {
			return err
		}
		c.console.PrintLines(op.Lines)
		return nil
	case "D":
		start, end, err := parseRange(fields, unsetStart)
		if err != nil {
			return err
		}
		return c.editor.Perform(&operations.Delete{Start: start, End: end})
	case "Q":
		_, err := c.editor.Quit(c.console)
		c.mode = lined.ModeQuit
		return err
	default:
		c.console.Message("Invalid command.")
		return nil
	}
}

// parsePosition reads a jump target. $ is accepted for the last line.
func parsePosition(s string) (lined.Position, error) {
	if s == "$" {
		return lined.LastLine, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return lined.Position{}, editor.ErrInvalidLineNumber
	}
	return lined.PositionForNumber(n), nil
}

// Which argument of a range takes -1 to mean "not given".
const (
	unsetStart = 0 // delete the current line
	unsetEnd   = 1 // list the start line alone
)

func rangeLines(numbers []int, unset int) (lined.Line, lined.Line) {
	lines := [2]lined.Line{}
	for i, n := range numbers {
		if i < 2 && !(i == unset && n == -1) {
			lines[i] = lined.LineNumber(n)
		}
	}
	return lines[0], lines[1]
}

// parseRange reads up to two line numbers.
func parseRange(fields []string, unset int) (lined.Line, lined.Line, error) {
	var numbers []int
	for i := 0; i < len(fields) && i < 2; i++ {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return lined.NoLine, lined.NoLine, editor.ErrInvalidLineRange
		}
		numbers = append(numbers, n)
	}
	start, end := rangeLines(numbers, unset)
	return start, end, nil
}
