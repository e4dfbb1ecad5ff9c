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

// A Buffer is the ordered store of rows for the file being edited.
//
// The store grows on demand. When lineLimit is positive, edits that
// would place text at a row index at or beyond the limit are silent
// no-ops; this keeps the fixed-capacity behavior of classic small
// editors as a policy without an actual allocation limit.
type Buffer struct {
	rows      []*Row
	FileName  string
	lineLimit int
	tabWidth  int
}

func NewBuffer() *Buffer {
	return &Buffer{
		rows:     make([]*Row, 0),
		tabWidth: 8,
	}
}

func (b *Buffer) SetLineLimit(limit int) {
	b.lineLimit = limit
}

func (b *Buffer) LineLimit() int {
	return b.lineLimit
}

// AtLineLimit reports whether row falls outside the soft line limit.
func (b *Buffer) AtLineLimit(row int) bool {
	return b.lineLimit > 0 && row >= b.lineLimit
}

func (b *Buffer) SetTabWidth(width int) {
	if width < 1 {
		width = 1
	}
	b.tabWidth = width
}

// LoadBytes replaces the buffer contents. Tabs are expanded to spaces
// on load; a trailing newline does not produce a phantom empty row.
func (b *Buffer) LoadBytes(bytes []byte) {
	s := strings.ReplaceAll(string(bytes), "\t", strings.Repeat(" ", b.tabWidth))
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[0 : len(lines)-1]
	}
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

// Bytes serializes the buffer with every row newline-terminated.
func (b *Buffer) Bytes() []byte {
	var s strings.Builder
	for _, row := range b.rows {
		s.Write(row.Text)
		s.WriteByte('\n')
	}
	return []byte(s.String())
}

func (b *Buffer) RowCount() int {
	return len(b.rows)
}

func (b *Buffer) Row(i int) *Row {
	return b.rows[i]
}

func (b *Buffer) RowLength(i int) int {
	if i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) TextAfter(row, col int) string {
	if row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

func (b *Buffer) AppendBlankRow() {
	b.rows = append(b.rows, NewRow(""))
}

// InsertRow places row at index i, shifting later rows down.
func (b *Buffer) InsertRow(i int, row *Row) {
	b.AppendBlankRow()
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = row
}

func (b *Buffer) DeleteRow(i int) {
	if i < len(b.rows) {
		b.rows = append(b.rows[0:i], b.rows[i+1:]...)
	}
}

// DeleteRows removes rows [from, to] inclusive.
func (b *Buffer) DeleteRows(from, to int) {
	if from < 0 {
		from = 0
	}
	if to > len(b.rows)-1 {
		to = len(b.rows) - 1
	}
	if from > to {
		return
	}
	b.rows = append(b.rows[0:from], b.rows[to+1:]...)
}
