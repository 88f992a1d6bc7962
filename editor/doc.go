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

// Package editor implements the line buffer at the core of lined.
// An editor holds one buffer of lines, a current line, a dirty flag
// and the name of the file it was loaded from or last written to.
// Every command validates its arguments before it changes anything,
// so a rejected command leaves the editor exactly as it was.
package editor
