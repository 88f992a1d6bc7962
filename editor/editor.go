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
package editor

import (
	"errors"
	"log"

	lined "github.com/timburks/lined/types"
)

// SavePrompt is asked on quit when the buffer has unsaved changes.
const SavePrompt = "Buffer has been modified. Save changes before quitting? (Y/N): "

// The Editor manages the editing of lines in a Buffer.
type Editor struct {
	buffer   *Buffer
	cursor   int           // current line, zero-based
	dirty    bool          // true if lines changed since the last write
	fileName string        // where bare writes go; empty if unknown
	storage  lined.Storage // reads and writes files
}

func NewEditor() *Editor {
	return NewEditorWithStorage(FileStorage{})
}

func NewEditorWithStorage(s lined.Storage) *Editor {
	return &Editor{buffer: NewBuffer(), storage: s}
}

// NewEditorFromFile creates an editor and loads a file into it.
// If the file can't be read, the editor is empty and the error is returned with it.
func NewEditorFromFile(s lined.Storage, path string) (*Editor, error) {
	e := NewEditorWithStorage(s)
	return e, e.ReadFile(path)
}

// ReadFile replaces the buffer with the contents of a file.
// The file name is kept even when reading fails so that a later write creates it.
func (e *Editor) ReadFile(path string) error {
	e.cursor = 0
	e.dirty = false
	e.fileName = path
	lines, err := e.storage.ReadLines(path)
	if err != nil {
		e.buffer = NewBuffer()
		return &FileError{Kind: ErrLoadFailure, FileName: path, Err: err}
	}
	e.buffer.LoadLines(lines)
	return nil
}

func (e *Editor) Perform(op lined.Operation) error {
	err := op.Perform(e)
	if err != nil {
		var fe *FileError
		if errors.As(err, &fe) {
			log.Printf("%T %s", op, fe.Cause())
		} else {
			log.Printf("%T %+v: %+v", op, op, err)
		}
	}
	return err
}

func (e *Editor) Jump(p lined.Position) error {
	switch p.Kind {
	case lined.PositionFirst:
		e.cursor = 0
	case lined.PositionLast:
		e.cursor = e.buffer.LineCount() - 1
	default:
		if p.Number < 1 || p.Number > e.buffer.LineCount() {
			return ErrInvalidLineNumber
		}
		e.cursor = p.Number - 1
	}
	return nil
}

func (e *Editor) InsertAtStart(text string) error {
	if !e.buffer.InsertText(e.cursor, text) {
		return ErrInvalidCurrentLine
	}
	e.dirty = true
	return nil
}

func (e *Editor) AppendAfter(text string) error {
	if _, ok := e.buffer.Line(e.cursor); !ok {
		return ErrInvalidCurrentLine
	}
	e.buffer.InsertLine(e.cursor+1, text)
	e.cursor++
	e.dirty = true
	return nil
}

// List returns lines start through end. An unset start is the first line
// and an unset end lists the start line alone.
func (e *Editor) List(start, end lined.Line) ([]string, error) {
	first := 1
	if start.Set && start.Number != 0 {
		first = start.Number
	}
	last := first
	if end.Set {
		last = end.Number
	}
	lines, ok := e.buffer.Slice(first-1, last-1)
	if !ok {
		return nil, ErrInvalidLineRange
	}
	return lines, nil
}

// Delete removes lines start through end. An unset start deletes the current line
// and a start without an end is rejected.
// The current line is left where it was, even if it no longer exists.
func (e *Editor) Delete(start, end lined.Line) error {
	var first, last int
	if !start.Set {
		first = e.cursor + 1
		last = first
	} else {
		if !end.Set {
			return ErrInvalidLineRange
		}
		first = start.Number
		last = end.Number
	}
	if !e.buffer.DeleteLines(first-1, last-1) {
		return ErrInvalidLineRange
	}
	e.dirty = true
	return nil
}

// Persist writes the buffer to fileName, or to the last known file if fileName is empty.
func (e *Editor) Persist(fileName string) error {
	if fileName == "" {
		if e.fileName == "" {
			return ErrMissingDestination
		}
		fileName = e.fileName
	}
	if err := e.storage.WriteLines(fileName, e.buffer.Lines()); err != nil {
		return &FileError{Kind: ErrPersistFailure, FileName: fileName, Err: err}
	}
	e.fileName = fileName
	e.dirty = false
	return nil
}

// Quit offers to save unsaved changes and always reports that the editor may stop.
// A failed save is returned for reporting.
func (e *Editor) Quit(confirm lined.Confirmer) (bool, error) {
	if !e.dirty {
		return true, nil
	}
	save, err := confirm.Confirm(SavePrompt)
	if err != nil || !save {
		return true, nil
	}
	return true, e.Persist(e.fileName)
}

func (e *Editor) LineCount() int {
	return e.buffer.LineCount()
}

// CurrentLine is one-based.
func (e *Editor) CurrentLine() int {
	return e.cursor + 1
}

// LineText returns the text of a one-based line.
func (e *Editor) LineText(n int) (string, error) {
	line, ok := e.buffer.Line(n - 1)
	if !ok {
		return "", ErrInvalidLineNumber
	}
	return line, nil
}

func (e *Editor) Lines() []string {
	return e.buffer.Lines()
}

func (e *Editor) IsDirty() bool {
	return e.dirty
}

func (e *Editor) GetFileName() string {
	return e.fileName
}
