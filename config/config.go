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
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds the few tunables the editor honors.
//
// LineLimit is a soft cap on the number of rows edits may create;
// zero means unlimited. TabWidth controls tab expansion on load.
type Config struct {
	LineLimit int `json:"line_limit"`
	TabWidth  int `json:"tab_width"`
}

func Default() Config {
	return Config{
		LineLimit: 0,
		TabWidth:  8,
	}
}

// Path returns the location of the user config file.
func Path() string {
	return filepath.Join(os.Getenv("HOME"), ".vedrc")
}

// Load reads a JSON config file over the defaults. A missing or
// unreadable file yields the defaults; editing should never be blocked
// by a bad config.
func Load(path string) Config {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Default()
	}
	if cfg.TabWidth < 1 {
		cfg.TabWidth = 1
	}
	if cfg.LineLimit < 0 {
		cfg.LineLimit = 0
	}
	return cfg
}
