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

// Editor modes
const (
	ModeNormal = 0
	ModeVisual = 1
	ModeEval   = 2
	ModeQuit   = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
)

// Cell styles used when rendering buffer contents.
type Style int

const (
	StylePlain    Style = 0
	StyleSelected Style = 1
)

type Key int

// Keys handled by the commander. Anything a screen cannot map
// is reported as KeyUnsupported and ignored downstream.
const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEsc
	KeyEnter
	KeyBackspace
	KeySpace
	KeyCtrlO
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlV
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// A Display accepts draw commands for buffer cells.
// The screen package implements it with termbox; tests implement it
// with an in-memory grid.
type Display interface {
	SetCell(col int, row int, c rune, style Style)
}

type Editor interface {
	GetCursor() Point
	SetCursor(cursor Point)
	GetOffset() Size
	SetSize(size Size)
	Scroll()
	MoveCursor(direction int)

	InsertChar(c byte)
	InsertNewline()
	BackspaceChar()
	InsertText(text string)

	InVisualMode() bool
	EnterVisualMode()
	ExitVisualMode()
	CopySelection() int
	CutSelection() int
	DeleteSelection() int
	Paste() int

	LineCount() int
	TextAfter(row, col int) string

	ReadFile(path string) error
	WriteFile(path string) error
	GetFileName() string

	Render(origin Point, size Size, display Display)
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetEvalText() string
	GetMessage() string
}
