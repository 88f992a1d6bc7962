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

import "testing"

func TestPositionForNumber(t *testing.T) {
	tests := []struct {
		n    int
		want Position
	}{
		{0, FirstLine},
		{-1, LastLine},
		{1, Position{Kind: PositionLine, Number: 1}},
		{-2, Position{Kind: PositionLine, Number: -2}},
	}
	for _, test := range tests {
		if got := PositionForNumber(test.n); got != test.want {
			t.Errorf("PositionForNumber(%d) = %+v, want %+v", test.n, got, test.want)
		}
	}
}

func TestLineString(t *testing.T) {
	if s := NoLine.String(); s != "-" {
		t.Errorf("NoLine.String() = %q", s)
	}
	if s := LineNumber(12).String(); s != "12" {
		t.Errorf("LineNumber(12).String() = %q", s)
	}
}
