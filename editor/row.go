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

// A row of text in the editor. Columns are byte offsets; the editor
// deliberately has no notion of multibyte characters or display width.
type Row struct {
	Text []byte
}

func NewRow(text string) *Row {
	return &Row{Text: []byte(text)}
}

func (r *Row) Length() int {
	return len(r.Text)
}

func (r *Row) String() string {
	return string(r.Text)
}

// inserts a byte at col, clamping col into [0, len]
func (r *Row) InsertChar(col int, c byte) {
	if col > len(r.Text) {
		col = len(r.Text)
	}
	if col < 0 {
		col = 0
	}
	line := make([]byte, 0, len(r.Text)+1)
	line = append(line, r.Text[0:col]...)
	line = append(line, c)
	line = append(line, r.Text[col:]...)
	r.Text = line
}

// delete the byte at col and return it
func (r *Row) DeleteChar(col int) byte {
	if len(r.Text) == 0 {
		return 0
	}
	if col > len(r.Text)-1 {
		col = len(r.Text) - 1
	}
	c := r.Text[col]
	r.Text = append(r.Text[0:col], r.Text[col+1:]...)
	return c
}

// splits the row at col, returning a new row with the remaining text
func (r *Row) Split(col int) *Row {
	if col < len(r.Text) {
		after := string(r.Text[col:])
		r.Text = r.Text[0:col]
		return NewRow(after)
	}
	return NewRow("")
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	r.Text = append(r.Text, other.Text...)
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < len(r.Text) {
		return string(r.Text[col:])
	}
	return ""
}
