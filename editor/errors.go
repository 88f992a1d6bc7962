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

import "errors"

// Error kinds reported by the editor. The messages are shown to the user.
var (
	ErrLoadFailure        = errors.New("Error opening file.")
	ErrInvalidLineNumber  = errors.New("Invalid line number.")
	ErrInvalidLineRange   = errors.New("Invalid line numbers.")
	ErrInvalidCurrentLine = errors.New("Invalid current line.")
	ErrPersistFailure     = errors.New("Error writing to file.")
	ErrMissingDestination = errors.New("A filename must be given.")
)

// A FileError is a load or persist failure. It prints as its kind
// and unwraps to both the kind and the underlying cause.
type FileError struct {
	Kind     error
	FileName string
	Err      error
}

func (e *FileError) Error() string {
	return e.Kind.Error()
}

func (e *FileError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Cause describes the failure in full, for logs.
func (e *FileError) Cause() string {
	return e.Kind.Error() + " " + e.FileName + ": " + e.Err.Error()
}
