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
	ved "github.com/vedworks/ved/types"
)

// Visual selection: the anchor is fixed when visual mode is entered
// and the cursor is the live endpoint. Copy, cut, and delete all
// operate on the normalized (start, end) ordering of that pair and
// unconditionally leave visual mode.

func (e *Editor) InVisualMode() bool {
	return e.visual
}

func (e *Editor) EnterVisualMode() {
	e.visual = true
	e.anchor = e.Cursor
}

func (e *Editor) ExitVisualMode() {
	e.visual = false
}

// SelectionBounds returns the selection ordered by document position,
// regardless of which endpoint the user moved last. Zero values are
// returned outside visual mode.
func (e *Editor) SelectionBounds() (start, end ved.Point) {
	if !e.visual {
		return ved.Point{}, ved.Point{}
	}
	return orderPoints(e.anchor, e.Cursor)
}

func orderPoints(a, b ved.Point) (start, end ved.Point) {
	if a.Row < b.Row || (a.Row == b.Row && a.Col <= b.Col) {
		return a, b
	}
	return b, a
}

// rowSpan computes the selected column span [from, to) that a
// normalized selection covers on a row of the given length: the first
// row is included from the start column, the last row up to the end
// column, and interior rows entirely.
func rowSpan(start, end ved.Point, row, length int) (from, to int) {
	from, to = 0, length
	if row == start.Row {
		from = start.Col
	}
	if row == end.Row {
		to = end.Col
	}
	if from > length {
		from = length
	}
	if to > length {
		to = length
	}
	if from > to {
		from = to
	}
	return from, to
}

// extractSelection collects the selected text with a newline between
// consecutive rows. A zero-width selection yields an empty result.
func (e *Editor) extractSelection() []byte {
	start, end := e.SelectionBounds()
	out := make([]byte, 0)
	if start == end {
		return out
	}
	lastRow := end.Row
	if lastRow > e.Buffer.RowCount()-1 {
		lastRow = e.Buffer.RowCount() - 1
	}
	for y := start.Row; y <= lastRow; y++ {
		row := e.Buffer.Row(y)
		from, to := rowSpan(start, end, y, row.Length())
		out = append(out, row.Text[from:to]...)
		if y < lastRow {
			out = append(out, '\n')
		}
	}
	return out
}

// deleteRange splices the normalized range out of the buffer and
// places the cursor at the start of the range.
func (e *Editor) deleteRange(start, end ved.Point) {
	if e.Buffer.RowCount() == 0 || start == end {
		return
	}
	// the anchor can sit past the last row after edits in visual mode
	if start.Row > e.Buffer.RowCount()-1 {
		return
	}
	if end.Row > e.Buffer.RowCount()-1 {
		end.Row = e.Buffer.RowCount() - 1
		end.Col = e.Buffer.RowLength(end.Row)
	}
	first := e.Buffer.Row(start.Row)
	from, _ := rowSpan(start, end, start.Row, first.Length())
	if start.Row == end.Row {
		to := end.Col
		if to > first.Length() {
			to = first.Length()
		}
		first.Text = append(first.Text[0:from], first.Text[to:]...)
	} else {
		last := e.Buffer.Row(end.Row)
		to := end.Col
		if to > last.Length() {
			to = last.Length()
		}
		first.Text = append(first.Text[0:from], last.Text[to:]...)
		e.Buffer.DeleteRows(start.Row+1, end.Row)
	}
	e.Cursor = start
	e.KeepCursorInRow()
	e.Scroll()
}

// CopySelection replaces the clipboard with the selected text and
// returns the number of bytes copied. The buffer is never changed.
func (e *Editor) CopySelection() int {
	if !e.visual {
		return 0
	}
	e.clipboard = e.extractSelection()
	e.ExitVisualMode()
	return len(e.clipboard)
}

// CutSelection copies the selected text to the clipboard, removes it
// from the buffer, and returns the number of bytes cut.
func (e *Editor) CutSelection() int {
	if !e.visual {
		return 0
	}
	start, end := e.SelectionBounds()
	e.clipboard = e.extractSelection()
	e.deleteRange(start, end)
	e.ExitVisualMode()
	return len(e.clipboard)
}

// DeleteSelection removes the selected text without touching the
// clipboard and returns the number of bytes removed.
func (e *Editor) DeleteSelection() int {
	if !e.visual {
		return 0
	}
	start, end := e.SelectionBounds()
	deleted := len(e.extractSelection())
	e.deleteRange(start, end)
	e.ExitVisualMode()
	return deleted
}
