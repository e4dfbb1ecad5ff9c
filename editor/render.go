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

// Render projects the buffer into an area defined by origin and size,
// applying the vertical display offset. Rows past the end of the
// buffer draw a placeholder. While a selection is active, the selected
// span of each row is drawn with StyleSelected; the spans match the
// ones used by copy/cut/delete exactly.
func (e *Editor) Render(origin ved.Point, size ved.Size, display ved.Display) {
	selecting := e.visual
	var start, end ved.Point
	if selecting {
		start, end = e.SelectionBounds()
	}
	for i := 0; i < size.Rows; i++ {
		fileRow := i + e.Offset.Rows
		if fileRow >= e.Buffer.RowCount() {
			display.SetCell(origin.Col, origin.Row+i, '~', ved.StylePlain)
			continue
		}
		line := e.Buffer.Row(fileRow).Text
		// truncate to fit the screen
		if len(line) > size.Cols {
			line = line[0:size.Cols]
		}
		from, to := 0, 0
		if selecting && fileRow >= start.Row && fileRow <= end.Row {
			from, to = rowSpan(start, end, fileRow, e.Buffer.Row(fileRow).Length())
		}
		for j, c := range line {
			style := ved.StylePlain
			if selecting && j >= from && j < to {
				style = ved.StyleSelected
			}
			display.SetCell(origin.Col+j, origin.Row+i, rune(c), style)
		}
	}
}
