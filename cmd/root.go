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

// Package cmd implements the command line commands of the positional
// binary. The commands are callers of the container packages: they
// build concrete structures from configured input files and consume
// the returned snapshots.
package cmd

import (
	"github.com/spf13/cobra"
)

var Root *cobra.Command = &cobra.Command{
	Use:   "positional",
	Short: "Positional container toolkit",
	Long:  "positional builds a relation tree from the configured input files and derives traversals, searches and depth groupings from it",
	// SilenceUsage is set to true -> https://github.com/spf13/cobra/issues/340
	SilenceUsage: true,
}
