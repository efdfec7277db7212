/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// This binary builds positional containers from the configured input
// files and prints the traversals and groupings derived from them.
package main

import (
	"os"

	"github.com/bbva/positional/cmd"
)

func main() {
	if err := cmd.Root.Execute(); err != nil {
		os.Exit(-1)
	}
}
