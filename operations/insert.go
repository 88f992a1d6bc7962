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
	"fmt"

	lined "github.com/timburks/lined/types"
)

// Insert

type Insert struct {
	Position int
	Text     string
}

func (op *Insert) Perform(e lined.Editor) error {
	switch op.Position {
	case lined.InsertAtStartOfLine:
		return e.InsertAtStart(op.Text)
	case lined.InsertAtNewLineBelowCursor:
		return e.AppendAfter(op.Text)
	default:
		return fmt.Errorf("unsupported insert position %d", op.Position)
	}
}
