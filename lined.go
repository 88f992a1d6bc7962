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
	"context"
	"log"
	"os"

	"github.com/timburks/lined/commander"
	"github.com/timburks/lined/console"
	"github.com/timburks/lined/editor"
)

func main() {

	var filename string
	var script string
	logname := os.Getenv("HOME") + "/.linedlog"

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return
			}
		case "--log": // log file
			i++
			if i < len(os.Args) {
				logname = os.Args[i]
			} else {
				log.Output(1, "No file specified for --log option")
				return
			}
		default:
			// If a file was specified on the command line, read it.
			if filename == "" {
				filename = argi
			}
		}
	}

	// The console reads commands and shows results.
	k := console.NewConsole(os.Stdin, os.Stdout, os.Stderr)

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	if filename != "" {
		if err := e.ReadFile(filename); err != nil {
			k.Error(err)
		}
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, k)

	// Open a log file.
	f, err := os.OpenFile(logname, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
	} else {
		log.SetOutput(f)
		defer f.Close()
	}

	if script != "" {
		// Run a lined script and exit.
		if err := c.ParseEvalFile(script); err != nil {
			k.Error(err)
		}
		return
	}

	// Run the main command loop.
	if err := c.Run(context.Background()); err != nil {
		log.Output(1, err.Error())
	}
}
