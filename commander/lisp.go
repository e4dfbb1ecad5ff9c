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
	"errors"

	"github.com/steelseries/golisp"

	ved "github.com/vedworks/ved/types"
)

// The eval surface exposes a small set of editor primitives to golisp
// expressions typed on the status line (or run with --eval).
//
// The editor is single-threaded, so a package-level binding for the
// active editor is safe; it is set before every evaluation.
var evalEditor ved.Editor

func init() {
	golisp.MakePrimitiveFunction("cursor-row", "0", cursorRowImpl)
	golisp.MakePrimitiveFunction("cursor-col", "0", cursorColImpl)
	golisp.MakePrimitiveFunction("line-count", "0", lineCountImpl)
	golisp.MakePrimitiveFunction("insert-text", "1", insertTextImpl)
}

func cursorRowImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if evalEditor == nil {
		return nil, errors.New("no editor")
	}
	return golisp.IntegerWithValue(int64(evalEditor.GetCursor().Row)), nil
}

func cursorColImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if evalEditor == nil {
		return nil, errors.New("no editor")
	}
	return golisp.IntegerWithValue(int64(evalEditor.GetCursor().Col)), nil
}

func lineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if evalEditor == nil {
		return nil, errors.New("no editor")
	}
	return golisp.IntegerWithValue(int64(evalEditor.LineCount())), nil
}

func insertTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if evalEditor == nil {
		return nil, errors.New("no editor")
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert-text requires a string argument")
	}
	text := golisp.StringValue(val)
	evalEditor.InsertText(text)
	return golisp.IntegerWithValue(int64(len(text))), nil
}

// ParseEval evaluates a lisp expression and returns a printable result
// or error text for the status line.
func (c *Commander) ParseEval(command string) string {
	evalEditor = c.editor
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return err.Error()
	}
	return golisp.String(value)
}

// ParseEvalFile evaluates a lisp source file; used by --eval.
func (c *Commander) ParseEvalFile(path string) string {
	evalEditor = c.editor
	value, err := golisp.ProcessFile(path)
	if err != nil {
		return err.Error()
	}
	return golisp.String(value)
}
