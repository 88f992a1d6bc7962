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
package operations_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/timburks/lined/editor"
	"github.com/timburks/lined/operations"
	lined "github.com/timburks/lined/types"
)

func TestOperations(t *testing.T) {
	e := editor.NewEditor()
	ops := []lined.Operation{
		&operations.Insert{Position: lined.InsertAtNewLineBelowCursor, Text: "one"},
		&operations.Insert{Position: lined.InsertAtNewLineBelowCursor, Text: "two"},
		&operations.Jump{Position: lined.FirstLine},
		&operations.Insert{Position: lined.InsertAtStartOfLine, Text: "zero"},
		&operations.Delete{Start: lined.LineNumber(2)},
	}
	for _, op := range ops {
		if err := e.Perform(op); err != nil {
			t.Fatalf("Perform(%T) failed: %+v", op, err)
		}
	}
	list := &operations.List{Start: lined.LineNumber(1), End: lined.LineNumber(2)}
	if err := e.Perform(list); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"zero", "two"}, list.Lines); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	path := filepath.Join(t.TempDir(), "ops.txt")
	if err := e.Perform(&operations.Write{FileName: path}); err != nil {
		t.Fatal(err)
	}
	if e.GetFileName() != path || e.IsDirty() {
		t.Errorf("Write did not save: file=%q dirty=%v", e.GetFileName(), e.IsDirty())
	}
}

func TestFailedList(t *testing.T) {
	e := editor.NewEditor()
	list := &operations.List{Start: lined.LineNumber(2)}
	if err := e.Perform(list); !errors.Is(err, editor.ErrInvalidLineRange) {
		t.Errorf("Perform = %v, want %v", err, editor.ErrInvalidLineRange)
	}
	if list.Lines != nil {
		t.Errorf("Failed list kept lines: %v", list.Lines)
	}
}

func TestUnsupportedInsert(t *testing.T) {
	e := editor.NewEditor()
	if err := e.Perform(&operations.Insert{Position: -1, Text: "x"}); err == nil {
		t.Errorf("Insert with an unknown position should fail")
	}
	if e.IsDirty() {
		t.Errorf("Failed insert marked the buffer dirty")
	}
}
