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
	"strings"
)

// A Buffer holds the lines of a file being edited.
// All indexes are zero-based and checked against the current length.
type Buffer struct {
	lines []string
}

// NewBuffer returns a buffer with a single empty line.
func NewBuffer() *Buffer {
	return &Buffer{lines: []string{""}}
}

// Lines are separated by newlines. A final newline ends the last line
// instead of starting a new one.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

func (b *Buffer) LoadLines(lines []string) {
	if len(lines) == 0 {
		b.lines = []string{""}
		return
	}
	b.lines = make([]string, len(lines))
	copy(b.lines, lines)
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return lines
}

func (b *Buffer) valid(i int) bool {
	return i >= 0 && i < len(b.lines)
}

func (b *Buffer) Line(i int) (string, bool) {
	if !b.valid(i) {
		return "", false
	}
	return b.lines[i], true
}

// Slice returns a copy of lines start through end inclusive.
func (b *Buffer) Slice(start, end int) ([]string, bool) {
	if !b.valid(start) || !b.valid(end) || start > end {
		return nil, false
	}
	lines := make([]string, end-start+1)
	copy(lines, b.lines[start:end+1])
	return lines, true
}

// InsertText puts text in front of the contents of line i.
func (b *Buffer) InsertText(i int, text string) bool {
	if !b.valid(i) {
		return false
	}
	b.lines[i] = text + b.lines[i]
	return true
}

// InsertLine adds a line so that it becomes line i. i may equal the line count.
func (b *Buffer) InsertLine(i int, text string) bool {
	if i < 0 || i > len(b.lines) {
		return false
	}
	b.lines = append(b.lines, "")
	copy(b.lines[i+1:], b.lines[i:])
	b.lines[i] = text
	return true
}

// DeleteLines removes lines start through end inclusive.
func (b *Buffer) DeleteLines(start, end int) bool {
	if !b.valid(start) || !b.valid(end) || start > end {
		return false
	}
	b.lines = append(b.lines[0:start], b.lines[end+1:]...)
	return true
}
