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
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/vedworks/ved/commander"
	"github.com/vedworks/ved/config"
	"github.com/vedworks/ved/editor"
	"github.com/vedworks/ved/screen"
)

func main() {
	var filename string
	var script string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval a lisp file and exit
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				fmt.Fprintln(os.Stderr, "No file specified for --eval option")
				os.Exit(1)
			}
		default:
			filename = argi
		}
	}

	cfg := config.Load(config.Path())

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	e.Buffer.SetLineLimit(cfg.LineLimit)
	e.Buffer.SetTabWidth(cfg.TabWidth)

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	if filename != "" {
		// A missing file is created empty by ReadFile.
		if err := e.ReadFile(filename); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	}

	if script != "" {
		// Run a script and exit.
		fmt.Println(c.ParseEvalFile(script))
		return
	}

	// Create a screen to manage the display. Failure to set up the
	// terminal is fatal.
	s, err := screen.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer s.Close()

	// Log to a file; the terminal belongs to the screen now.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.vedlog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Output(1, err.Error())
		}
	}
}
