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
package types

import "strconv"

// Commander modes
const (
	ModeCommand = 0
	ModeQuit    = 9999
)

// Insert positions
const (
	InsertAtStartOfLine        = 2
	InsertAtNewLineBelowCursor = 4
)

// A Line is an optional one-based line number.
type Line struct {
	Number int
	Set    bool
}

// NoLine is a Line that was not given.
var NoLine = Line{}

func LineNumber(n int) Line {
	return Line{Number: n, Set: true}
}

func (l Line) String() string {
	if !l.Set {
		return "-"
	}
	return strconv.Itoa(l.Number)
}

// Position kinds
const (
	PositionLine  = 0
	PositionFirst = 1
	PositionLast  = 2
)

// A Position is a destination for the cursor.
type Position struct {
	Kind   int
	Number int // one-based, used when Kind is PositionLine
}

var FirstLine = Position{Kind: PositionFirst}
var LastLine = Position{Kind: PositionLast}

func LinePosition(n int) Position {
	return Position{Kind: PositionLine, Number: n}
}

// PositionForNumber maps the numbers accepted by the jump command:
// 0 is the first line, -1 is the last line, anything else is a line number.
func PositionForNumber(n int) Position {
	switch n {
	case 0:
		return FirstLine
	case -1:
		return LastLine
	default:
		return LinePosition(n)
	}
}

type Editor interface {
	Jump(p Position) error
	InsertAtStart(text string) error
	AppendAfter(text string) error
	List(start, end Line) ([]string, error)
	Delete(start, end Line) error
	Persist(fileName string) error
	Quit(confirm Confirmer) (bool, error)
	Perform(op Operation) error

	LineCount() int
	CurrentLine() int
	LineText(n int) (string, error)
	IsDirty() bool
	GetFileName() string
}

type Operation interface {
	Perform(e Editor) error
}

// A Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Storage reads and writes whole files of lines.
type Storage interface {
	ReadLines(name string) ([]string, error)
	WriteLines(name string, lines []string) error
}
