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
	"os"

	ved "github.com/vedworks/ved/types"
)

// The Editor manages the editing of text in a Buffer.
//
// After every mutation or cursor move the editor re-establishes two
// invariants: the cursor column never exceeds the length of its row,
// and the cursor row lies inside the window described by Offset and
// the edit area size.
type Editor struct {
	Cursor ved.Point // cursor position
	Offset ved.Size  // display offset (vertical scroll)
	Buffer *Buffer   // buffer being edited
	size   ved.Size  // size of editing area

	visual bool      // visual (selection) mode active
	anchor ved.Point // selection anchor, fixed at visual-mode entry

	clipboard []byte // most recent copy/cut; nil until first use
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	return e
}

// ReadFile loads path into the buffer. A file that does not exist yet
// is created empty; that is not an error.
func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		f.Close()
		b = nil
	}
	e.Buffer.LoadBytes(b)
	e.Buffer.FileName = path
	e.Cursor = ved.Point{}
	e.Offset = ved.Size{}
	e.KeepCursorInRow()
	return nil
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

func (e *Editor) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(e.Bytes())
	return err
}

func (e *Editor) GetFileName() string {
	return e.Buffer.FileName
}

func (e *Editor) GetCursor() ved.Point {
	return e.Cursor
}

func (e *Editor) SetCursor(cursor ved.Point) {
	e.Cursor = cursor
}

func (e *Editor) GetOffset() ved.Size {
	return e.Offset
}

func (e *Editor) SetSize(s ved.Size) {
	e.size = s
}

func (e *Editor) LineCount() int {
	return e.Buffer.RowCount()
}

func (e *Editor) TextAfter(row, col int) string {
	return e.Buffer.TextAfter(row, col)
}

// Scroll shifts the display offset by the minimum needed to keep the
// cursor row inside the edit area.
func (e *Editor) Scroll() {
	if e.Cursor.Row < e.Offset.Rows {
		e.Offset.Rows = e.Cursor.Row
	}
	if e.size.Rows > 0 && e.Cursor.Row-e.Offset.Rows >= e.size.Rows {
		e.Offset.Rows = e.Cursor.Row - e.size.Rows + 1
	}
}

func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case ved.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		}
	case ved.MoveRight:
		// the column may sit one past the last byte of the row
		if e.Cursor.Col < e.Buffer.RowLength(e.Cursor.Row) {
			e.Cursor.Col++
		}
	case ved.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case ved.MoveDown:
		if e.Cursor.Row < e.Buffer.RowCount()-1 {
			e.Cursor.Row++
		}
	}
	e.KeepCursorInRow()
	e.Scroll()
}

// KeepCursorInRow clamps the cursor column into [0, row length].
func (e *Editor) KeepCursorInRow() {
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
	if rowLength := e.Buffer.RowLength(e.Cursor.Row); e.Cursor.Col > rowLength {
		e.Cursor.Col = rowLength
	}
}

// InsertChar inserts c at the cursor, shifting the rest of the row
// right. Beyond the soft line limit it does nothing.
func (e *Editor) InsertChar(c byte) {
	if e.Buffer.AtLineLimit(e.Cursor.Row) {
		return
	}
	for e.Cursor.Row >= e.Buffer.RowCount() {
		e.Buffer.AppendBlankRow()
	}
	e.KeepCursorInRow()
	e.Buffer.Row(e.Cursor.Row).InsertChar(e.Cursor.Col, c)
	e.Cursor.Col++
	e.Scroll()
}

// InsertNewline splits the current row at the cursor. With the cursor
// past the last stored row it just adds a blank row and advances.
func (e *Editor) InsertNewline() {
	if e.Buffer.AtLineLimit(e.Cursor.Row + 1) {
		return
	}
	if e.Cursor.Row >= e.Buffer.RowCount() {
		e.Buffer.AppendBlankRow()
		e.Cursor.Row++
		e.Cursor.Col = 0
		e.Scroll()
		return
	}
	e.KeepCursorInRow()
	newRow := e.Buffer.Row(e.Cursor.Row).Split(e.Cursor.Col)
	e.Buffer.InsertRow(e.Cursor.Row+1, newRow)
	e.Cursor.Row++
	e.Cursor.Col = 0
	e.Scroll()
}

// BackspaceChar removes the byte left of the cursor. At column zero it
// joins the current row onto the previous one; at the start of the
// document it does nothing.
func (e *Editor) BackspaceChar() {
	if e.Cursor.Row >= e.Buffer.RowCount() {
		return
	}
	if e.Cursor.Col > 0 {
		e.Buffer.Row(e.Cursor.Row).DeleteChar(e.Cursor.Col - 1)
		e.Cursor.Col--
	} else if e.Cursor.Row > 0 {
		previous := e.Buffer.Row(e.Cursor.Row - 1)
		newCol := previous.Length()
		previous.Join(e.Buffer.Row(e.Cursor.Row))
		e.Buffer.DeleteRow(e.Cursor.Row)
		e.Cursor.Row--
		e.Cursor.Col = newCol
	}
	e.Scroll()
}

// InsertText replays text through the normal insertion primitives.
func (e *Editor) InsertText(text string) {
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			e.InsertNewline()
		} else {
			e.InsertChar(text[i])
		}
	}
}

// Paste replays the clipboard at the cursor and returns the number of
// bytes pasted, or -1 if nothing has ever been copied.
func (e *Editor) Paste() int {
	if e.clipboard == nil {
		return -1
	}
	e.InsertText(string(e.clipboard))
	return len(e.clipboard)
}

// Clipboard returns the current clipboard contents; nil means nothing
// has been copied yet.
func (e *Editor) Clipboard() []byte {
	return e.clipboard
}
