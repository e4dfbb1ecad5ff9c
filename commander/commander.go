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
package commander

import (
	"fmt"

	ved "github.com/vedworks/ved/types"
)

// The Commander converts user input into commands for the Editor.
//
// It owns the mode state machine (normal, visual, eval) and the status
// message shown on the bottom row. Keys it does not recognize are
// deliberate no-ops.
type Commander struct {
	editor   ved.Editor
	mode     int
	message  string // status message
	evalText string // eval expression as it is being typed
}

func NewCommander(e ved.Editor) *Commander {
	return &Commander{editor: e, mode: ved.ModeNormal, message: "[Normal Mode]"}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) GetEvalText() string {
	return c.evalText
}

func (c *Commander) IsRunning() bool {
	return c.mode != ved.ModeQuit
}

func (c *Commander) ProcessEvent(event *ved.Event) error {
	switch event.Type {
	case ved.EventKey:
		return c.ProcessKey(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *ved.Event) error {
	switch c.mode {
	case ved.ModeNormal:
		return c.ProcessKeyNormalMode(event)
	case ved.ModeVisual:
		return c.ProcessKeyVisualMode(event)
	case ved.ModeEval:
		return c.ProcessKeyEvalMode(event)
	}
	return nil
}

func (c *Commander) ProcessKeyNormalMode(event *ved.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case ved.KeyEsc:
			c.message = "[Normal Mode]"
		case ved.KeyCtrlQ:
			c.mode = ved.ModeQuit
		case ved.KeyCtrlS:
			c.save()
		case ved.KeyCtrlO:
			c.reload()
		case ved.KeyCtrlV:
			c.enterVisualMode()
		case ved.KeyBackspace:
			e.BackspaceChar()
		case ved.KeyEnter:
			e.InsertNewline()
		case ved.KeySpace:
			e.InsertChar(' ')
		case ved.KeyArrowUp:
			e.MoveCursor(ved.MoveUp)
		case ved.KeyArrowDown:
			e.MoveCursor(ved.MoveDown)
		case ved.KeyArrowLeft:
			e.MoveCursor(ved.MoveLeft)
		case ved.KeyArrowRight:
			e.MoveCursor(ved.MoveRight)
		}
	}
	if ch != 0 {
		switch ch {
		case 'v':
			c.enterVisualMode()
		case 'p':
			if n := e.Paste(); n >= 0 {
				c.message = fmt.Sprintf("[Pasted %d chars]", n)
			}
		case '(':
			c.mode = ved.ModeEval
			c.evalText = "("
		default:
			// printable single-byte characters insert; anything else
			// is ignored
			if ch >= ' ' && ch <= '~' {
				e.InsertChar(byte(ch))
			}
		}
	}
	return nil
}

func (c *Commander) ProcessKeyVisualMode(event *ved.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case ved.KeyEsc:
			e.ExitVisualMode()
			c.mode = ved.ModeNormal
			c.message = "[Normal Mode]"
		case ved.KeyCtrlQ:
			c.mode = ved.ModeQuit
		case ved.KeyArrowUp:
			e.MoveCursor(ved.MoveUp)
		case ved.KeyArrowDown:
			e.MoveCursor(ved.MoveDown)
		case ved.KeyArrowLeft:
			e.MoveCursor(ved.MoveLeft)
		case ved.KeyArrowRight:
			e.MoveCursor(ved.MoveRight)
		}
	}
	if ch != 0 {
		// visual mode suppresses insertion; only the selection
		// commands are recognized
		switch ch {
		case 'y':
			c.message = fmt.Sprintf("[Copied %d chars]", e.CopySelection())
			c.mode = ved.ModeNormal
		case 'c':
			c.message = fmt.Sprintf("[Cut %d chars]", e.CutSelection())
			c.mode = ved.ModeNormal
		case 'd':
			c.message = fmt.Sprintf("[Deleted %d chars]", e.DeleteSelection())
			c.mode = ved.ModeNormal
		}
	}
	return nil
}

func (c *Commander) ProcessKeyEvalMode(event *ved.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case ved.KeyEsc:
			c.mode = ved.ModeNormal
			c.evalText = ""
		case ved.KeyEnter:
			c.message = c.ParseEval(c.evalText)
			c.evalText = ""
			c.mode = ved.ModeNormal
		case ved.KeyBackspace:
			if len(c.evalText) > 0 {
				c.evalText = c.evalText[0 : len(c.evalText)-1]
			}
		case ved.KeySpace:
			c.evalText += " "
		}
	}
	if ch != 0 {
		c.evalText += string(ch)
	}
	return nil
}

func (c *Commander) enterVisualMode() {
	c.editor.EnterVisualMode()
	c.mode = ved.ModeVisual
	c.message = "[Visual Mode]"
}

func (c *Commander) save() {
	err := c.editor.WriteFile(c.editor.GetFileName())
	if err != nil {
		c.message = "Can't save! " + err.Error()
		return
	}
	c.message = fmt.Sprintf("[Saved to %s]", c.editor.GetFileName())
}

// reload rereads the file, discarding unsaved edits.
func (c *Commander) reload() {
	err := c.editor.ReadFile(c.editor.GetFileName())
	if err != nil {
		c.message = "Can't reload! " + err.Error()
		return
	}
	c.message = fmt.Sprintf("[Reloaded %s]", c.editor.GetFileName())
}
