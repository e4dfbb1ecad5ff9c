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
package screen

import (
	"github.com/nsf/termbox-go"

	ved "github.com/vedworks/ved/types"
)

// The Screen draws the state of an Editor with termbox and turns
// termbox events into editor events. It owns the terminal: raw mode,
// escape decoding, and restoration all live behind termbox.
type Screen struct {
	size ved.Size // screen size
}

func NewScreen() (*Screen, error) {
	err := termbox.Init()
	if err != nil {
		return nil, err
	}
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e ved.Editor, c ved.Commander) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	var screenSize ved.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	// one row is reserved for the status bar
	editSize := screenSize
	editSize.Rows--
	e.SetSize(editSize)

	e.Scroll()
	bufferOrigin := ved.Point{Row: 0, Col: 0}
	e.Render(bufferOrigin, editSize, s)
	s.RenderStatusBar(c)
	termbox.SetCursor(e.GetCursor().Col, e.GetCursor().Row-e.GetOffset().Rows)
	termbox.Flush()
}

// SetCell implements ved.Display. Selected cells are drawn in reverse
// video.
func (s *Screen) SetCell(col int, row int, c rune, style ved.Style) {
	if style == ved.StyleSelected {
		termbox.SetCell(col, row, c, termbox.ColorBlack, termbox.ColorWhite)
	} else {
		termbox.SetCell(col, row, c, termbox.ColorDefault, termbox.ColorDefault)
	}
}

// RenderStatusBar draws the bottom row in reverse video, truncated to
// the screen width and padded with spaces.
func (s *Screen) RenderStatusBar(c ved.Commander) {
	var line string
	if c.GetMode() == ved.ModeEval {
		line = c.GetEvalText()
	} else {
		line = c.GetMessage()
	}
	if len(line) > s.size.Cols {
		line = line[0:s.size.Cols]
	}
	for len(line) < s.size.Cols {
		line += " "
	}
	for x, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorBlack, termbox.ColorWhite)
	}
}

func (s *Screen) GetNextEvent() *ved.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return &ved.Event{
		Type: eventType(event.Type),
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func eventType(t termbox.EventType) int {
	if t == termbox.EventResize {
		return ved.EventResize
	}
	return ved.EventKey
}

// key maps the termbox keys the commander understands; everything
// else, including the extended sequences this editor does not use
// (Home, End, Delete, page keys), maps to KeyUnsupported and is
// ignored downstream.
func key(k termbox.Key) ved.Key {
	switch k {
	case termbox.KeyArrowUp:
		return ved.KeyArrowUp
	case termbox.KeyArrowDown:
		return ved.KeyArrowDown
	case termbox.KeyArrowLeft:
		return ved.KeyArrowLeft
	case termbox.KeyArrowRight:
		return ved.KeyArrowRight
	case termbox.KeyEsc:
		return ved.KeyEsc
	case termbox.KeyEnter:
		return ved.KeyEnter
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return ved.KeyBackspace
	case termbox.KeySpace:
		return ved.KeySpace
	case termbox.KeyCtrlO:
		return ved.KeyCtrlO
	case termbox.KeyCtrlQ:
		return ved.KeyCtrlQ
	case termbox.KeyCtrlS:
		return ved.KeyCtrlS
	case termbox.KeyCtrlV:
		return ved.KeyCtrlV
	default:
		return ved.KeyUnsupported
	}
}
