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
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/steelseries/golisp"
	"github.com/timburks/lined/operations"
	lined "github.com/timburks/lined/types"
)

// Lisp primitives act on the commander that is evaluating.
var active *Commander

func init() {
	golisp.MakePrimitiveFunction("jump", "1", JumpImpl)
	golisp.MakePrimitiveFunction("insert-at-start", "1", InsertAtStartImpl)
	golisp.MakePrimitiveFunction("append-after", "1", AppendAfterImpl)
	golisp.MakePrimitiveFunction("list-lines", "*", ListLinesImpl)
	golisp.MakePrimitiveFunction("delete-lines", "*", DeleteLinesImpl)
	golisp.MakePrimitiveFunction("write-file", "*", WriteFileImpl)
	golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
	golisp.MakePrimitiveFunction("current-line", "0", CurrentLineImpl)
	golisp.MakePrimitiveFunction("line", "1", LineImpl)
	golisp.MakePrimitiveFunction("dirty?", "0", DirtyImpl)
}

var errNoEditor = errors.New("no editor is active")

func activeEditor() (lined.Editor, error) {
	if active == nil {
		return nil, errNoEditor
	}
	return active.editor, nil
}

func intArg(d *golisp.Data, name string) (int, error) {
	switch {
	case golisp.IntegerP(d):
		return int(golisp.IntegerValue(d)), nil
	case golisp.FloatP(d):
		return int(golisp.FloatValue(d)), nil
	default:
		return 0, fmt.Errorf("%s requires a number argument", name)
	}
}

func stringArg(d *golisp.Data, name string) (string, error) {
	if !golisp.StringP(d) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(d), nil
}

// rangeArgs reads optional start and end line numbers.
func rangeArgs(args *golisp.Data, name string, unset int) (lined.Line, lined.Line, error) {
	if golisp.Length(args) > 2 {
		return lined.NoLine, lined.NoLine, fmt.Errorf("%s takes at most two line numbers", name)
	}
	var numbers []int
	for d := args; golisp.Length(d) > 0; d = golisp.Cdr(d) {
		n, err := intArg(golisp.Car(d), name)
		if err != nil {
			return lined.NoLine, lined.NoLine, err
		}
		numbers = append(numbers, n)
	}
	start, end := rangeLines(numbers, unset)
	return start, end, nil
}

func perform(op lined.Operation) (lined.Editor, error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	return e, e.Perform(op)
}

func JumpImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	n, err := intArg(golisp.Car(args), "jump")
	if err != nil {
		return nil, err
	}
	e, err := perform(&operations.Jump{Position: lined.PositionForNumber(n)})
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(e.CurrentLine())), nil
}

func insertImpl(args *golisp.Data, name string, position int) (*golisp.Data, error) {
	text, err := stringArg(golisp.Car(args), name)
	if err != nil {
		return nil, err
	}
	e, err := perform(&operations.Insert{Position: position, Text: text})
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(e.CurrentLine())), nil
}

func InsertAtStartImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return insertImpl(args, "insert-at-start", lined.InsertAtStartOfLine)
}

func AppendAfterImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return insertImpl(args, "append-after", lined.InsertAtNewLineBelowCursor)
}

func ListLinesImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	start, end, err := rangeArgs(args, "list-lines", unsetEnd)
	if err != nil {
		return nil, err
	}
	op := &operations.List{Start: start, End: end}
	if _, err = perform(op); err != nil {
		return nil, err
	}
	items := make([]*golisp.Data, len(op.Lines))
	for i, line := range op.Lines {
		items[i] = golisp.StringWithValue(line)
	}
	return golisp.ArrayToList(items), nil
}

func DeleteLinesImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	start, end, err := rangeArgs(args, "delete-lines", unsetStart)
	if err != nil {
		return nil, err
	}
	e, err := perform(&operations.Delete{Start: start, End: end})
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(e.LineCount())), nil
}

func WriteFileImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	op := &operations.Write{}
	switch golisp.Length(args) {
	case 0:
	case 1:
		if op.FileName, err = stringArg(golisp.Car(args), "write-file"); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("write-file takes at most one file name")
	}
	e, err := perform(op)
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(e.GetFileName()), nil
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(e.LineCount())), nil
}

func CurrentLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(e.CurrentLine())), nil
}

func LineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	n, err := intArg(golisp.Car(args), "line")
	if err != nil {
		return nil, err
	}
	text, err := e.LineText(n)
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(text), nil
}

func DirtyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(e.IsDirty()), nil
}

// Eval evaluates lisp source against the commander's editor.
func (c *Commander) Eval(source string) (*golisp.Data, error) {
	active = c
	defer func() { active = nil }()
	value, err := golisp.ParseAndEvalAll(source)
	if err != nil {
		log.Printf("ERR %+v", err)
		return nil, err
	}
	log.Printf("SEXPR %+v", golisp.String(value))
	return value, nil
}

// ParseEvalFile runs a script and prints its value.
func (c *Commander) ParseEvalFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	value, err := c.Eval(string(source))
	if err != nil {
		return err
	}
	c.console.Message(golisp.String(value))
	return nil
}
