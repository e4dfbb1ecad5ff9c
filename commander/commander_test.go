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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vedworks/ved/editor"
	ved "github.com/vedworks/ved/types"
)

func setup(t *testing.T, lines string) (*Commander, *editor.Editor) {
	t.Helper()
	e := editor.NewEditor()
	e.Buffer.LoadBytes([]byte(lines))
	e.SetSize(ved.Size{Rows: 24, Cols: 80})
	return NewCommander(e), e
}

func keyEvent(k ved.Key) *ved.Event {
	return &ved.Event{Type: ved.EventKey, Key: k}
}

func charEvent(ch rune) *ved.Event {
	return &ved.Event{Type: ved.EventKey, Ch: ch}
}

func typeString(c *Commander, s string) {
	for _, ch := range s {
		c.ProcessEvent(charEvent(ch))
	}
}

func TestTypingInsertsText(t *testing.T) {
	c, e := setup(t, "")
	typeString(c, "hi")
	c.ProcessEvent(keyEvent(ved.KeySpace))
	typeString(c, "there")
	require.Equal(t, "hi there", e.TextAfter(0, 0))
}

func TestEnterSplitsAndBackspaceJoins(t *testing.T) {
	c, e := setup(t, "hello\n")
	e.SetCursor(ved.Point{Row: 0, Col: 3})
	c.ProcessEvent(keyEvent(ved.KeyEnter))
	require.Equal(t, 2, e.LineCount())
	require.Equal(t, "lo", e.TextAfter(1, 0))
	c.ProcessEvent(keyEvent(ved.KeyBackspace))
	require.Equal(t, 1, e.LineCount())
	require.Equal(t, "hello", e.TextAfter(0, 0))
}

func TestArrowKeysMoveCursor(t *testing.T) {
	c, e := setup(t, "one\ntwo\n")
	c.ProcessEvent(keyEvent(ved.KeyArrowDown))
	c.ProcessEvent(keyEvent(ved.KeyArrowRight))
	require.Equal(t, ved.Point{Row: 1, Col: 1}, e.GetCursor())
	c.ProcessEvent(keyEvent(ved.KeyArrowUp))
	c.ProcessEvent(keyEvent(ved.KeyArrowLeft))
	require.Equal(t, ved.Point{Row: 0, Col: 0}, e.GetCursor())
}

func TestUnsupportedKeyIsIgnored(t *testing.T) {
	c, e := setup(t, "abc\n")
	c.ProcessEvent(keyEvent(ved.KeyUnsupported))
	require.Equal(t, "abc", e.TextAfter(0, 0))
	require.Equal(t, ved.Point{}, e.GetCursor())
	require.Equal(t, ved.ModeNormal, c.GetMode())
}

func TestCtrlQQuits(t *testing.T) {
	c, _ := setup(t, "")
	require.True(t, c.IsRunning())
	c.ProcessEvent(keyEvent(ved.KeyCtrlQ))
	require.False(t, c.IsRunning())
}

func TestVisualModeEntryAndEscape(t *testing.T) {
	c, e := setup(t, "abc\n")
	c.ProcessEvent(charEvent('v'))
	require.Equal(t, ved.ModeVisual, c.GetMode())
	require.True(t, e.InVisualMode())
	require.Equal(t, "[Visual Mode]", c.GetMessage())

	c.ProcessEvent(keyEvent(ved.KeyEsc))
	require.Equal(t, ved.ModeNormal, c.GetMode())
	require.False(t, e.InVisualMode())
	require.Equal(t, "[Normal Mode]", c.GetMessage())
}

func TestCtrlVAlsoEntersVisualMode(t *testing.T) {
	c, e := setup(t, "abc\n")
	c.ProcessEvent(keyEvent(ved.KeyCtrlV))
	require.Equal(t, ved.ModeVisual, c.GetMode())
	require.True(t, e.InVisualMode())
}

func TestVisualModeSuppressesInsertion(t *testing.T) {
	c, e := setup(t, "abc\n")
	c.ProcessEvent(charEvent('v'))
	c.ProcessEvent(charEvent('x'))
	c.ProcessEvent(charEvent('z'))
	require.Equal(t, "abc", e.TextAfter(0, 0))
	require.Equal(t, ved.ModeVisual, c.GetMode())
}

func TestVisualCopyCutDelete(t *testing.T) {
	c, e := setup(t, "hello\nworld\n")
	c.ProcessEvent(charEvent('v'))
	c.ProcessEvent(keyEvent(ved.KeyArrowDown))
	c.ProcessEvent(charEvent('y'))
	require.Equal(t, ved.ModeNormal, c.GetMode())
	require.Equal(t, "[Copied 6 chars]", c.GetMessage())
	require.Equal(t, "hello\n", string(e.Clipboard()))
	require.Equal(t, 2, e.LineCount())

	c.ProcessEvent(keyEvent(ved.KeyArrowUp))
	c.ProcessEvent(charEvent('v'))
	c.ProcessEvent(keyEvent(ved.KeyArrowDown))
	c.ProcessEvent(charEvent('d'))
	require.Equal(t, "[Deleted 6 chars]", c.GetMessage())
	require.Equal(t, 1, e.LineCount())
	require.Equal(t, "world", e.TextAfter(0, 0))
	// delete left the clipboard alone
	require.Equal(t, "hello\n", string(e.Clipboard()))
}

func TestVisualCutThenPaste(t *testing.T) {
	c, e := setup(t, "abcdef\n")
	e.SetCursor(ved.Point{Row: 0, Col: 1})
	c.ProcessEvent(charEvent('v'))
	c.ProcessEvent(keyEvent(ved.KeyArrowRight))
	c.ProcessEvent(keyEvent(ved.KeyArrowRight))
	c.ProcessEvent(charEvent('c'))
	require.Equal(t, "[Cut 2 chars]", c.GetMessage())
	require.Equal(t, "bc", string(e.Clipboard()))
	require.Equal(t, "adef", e.TextAfter(0, 0))

	c.ProcessEvent(charEvent('p'))
	require.Equal(t, "[Pasted 2 chars]", c.GetMessage())
	require.Equal(t, "abcdef", e.TextAfter(0, 0))
}

func TestPasteBeforeAnyCopyShowsNoMessage(t *testing.T) {
	c, e := setup(t, "abc\n")
	before := c.GetMessage()
	c.ProcessEvent(charEvent('p'))
	require.Equal(t, before, c.GetMessage())
	require.Equal(t, "abc", e.TextAfter(0, 0))
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	e := editor.NewEditor()
	require.NoError(t, e.ReadFile(path))
	e.SetSize(ved.Size{Rows: 24, Cols: 80})
	c := NewCommander(e)

	typeString(c, "draft")
	c.ProcessEvent(keyEvent(ved.KeyCtrlS))
	require.Equal(t, "[Saved to "+path+"]", c.GetMessage())
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "draft\n", string(b))

	// edit again, then discard by reloading
	typeString(c, "junk")
	c.ProcessEvent(keyEvent(ved.KeyCtrlO))
	require.Equal(t, "[Reloaded "+path+"]", c.GetMessage())
	require.Equal(t, "draft", e.TextAfter(0, 0))
}

func TestSaveFailureIsReported(t *testing.T) {
	c, e := setup(t, "text\n")
	e.Buffer.FileName = filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt")
	c.ProcessEvent(keyEvent(ved.KeyCtrlS))
	require.Contains(t, c.GetMessage(), "Can't save!")
	require.True(t, c.IsRunning())
}

func TestEvalModeTypingAndEscape(t *testing.T) {
	c, _ := setup(t, "")
	c.ProcessEvent(charEvent('('))
	require.Equal(t, ved.ModeEval, c.GetMode())
	typeString(c, "+ 1 2)")
	require.Equal(t, "(+ 1 2)", c.GetEvalText())
	c.ProcessEvent(keyEvent(ved.KeyEsc))
	require.Equal(t, ved.ModeNormal, c.GetMode())
	require.Empty(t, c.GetEvalText())
}

func TestEvalExpression(t *testing.T) {
	c, _ := setup(t, "")
	c.ProcessEvent(charEvent('('))
	typeString(c, "+ 1 2)")
	c.ProcessEvent(keyEvent(ved.KeyEnter))
	require.Equal(t, ved.ModeNormal, c.GetMode())
	require.Equal(t, "3", c.GetMessage())
}

func TestEvalEditorPrimitives(t *testing.T) {
	c, e := setup(t, "one\ntwo\n")
	require.Equal(t, "2", c.ParseEval("(line-count)"))

	e.SetCursor(ved.Point{Row: 1, Col: 2})
	require.Equal(t, "1", c.ParseEval("(cursor-row)"))
	require.Equal(t, "2", c.ParseEval("(cursor-col)"))

	c.ParseEval(`(insert-text "!!")`)
	require.Equal(t, "tw!!o", e.TextAfter(1, 0))
}
