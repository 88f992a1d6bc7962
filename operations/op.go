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
package operations

import (
	lined "github.com/timburks/lined/types"
)

// Jump moves the current line.
type Jump struct {
	Position lined.Position
}

func (op *Jump) Perform(e lined.Editor) error {
	return e.Jump(op.Position)
}

// List collects a range of lines.
type List struct {
	Start lined.Line
	End   lined.Line
	Lines []string
}

func (op *List) Perform(e lined.Editor) error {
	lines, err := e.List(op.Start, op.End)
	if err != nil {
		return err
	}
	op.Lines = lines
	return nil
}

// Delete removes a range of lines, or the current line when Start is unset.
type Delete struct {
	Start lined.Line
	End   lined.Line
}

func (op *Delete) Perform(e lined.Editor) error {
	return e.Delete(op.Start, op.End)
}

// Write saves the buffer. An empty FileName writes to the editor's file.
type Write struct {
	FileName string
}

func (op *Write) Perform(e lined.Editor) error {
	return e.Persist(op.FileName)
}
