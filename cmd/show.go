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

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bbva/positional/config"
	"github.com/bbva/positional/log"
	"github.com/bbva/positional/position"
	"github.com/bbva/positional/tree"
)

var showCmd *cobra.Command = &cobra.Command{
	Use:   "show",
	Short: "Build the relation tree from the configured input files and print what the algorithms derive from it",
	RunE:  runShow,
}

var (
	showConfigFile string
	showLogLevel   string
)

func init() {
	showCmd.Flags().StringVar(&showConfigFile, "config", "", "Path to the properties file declaring the input file paths")
	showCmd.Flags().StringVar(&showLogLevel, "log", "info", "Choose between log levels: silent, error, info and debug")

	Root.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	log.SetLogger("positional", showLogLevel)

	conf, err := config.Load(showConfigFile)
	if err != nil {
		return err
	}
	log.Debugf("Reading users from %s and relations from %s", conf.UsersFile, conf.RelationsFile)

	users, err := readLines(conf.UsersFile)
	if err != nil {
		return err
	}
	relations, err := readPairs(conf.RelationsFile)
	if err != nil {
		return err
	}

	t, err := buildTree(users, relations)
	if err != nil {
		return err
	}

	// the algorithms see only the primitive contract
	var tr tree.Tree[string] = t

	height, err := tree.Height(tr, tr.Root())
	if err != nil {
		return err
	}
	log.Infof("Built a tree with %d positions and height %d", t.Size(), height)

	fmt.Printf("Preorder:      %s\n", joinPositions(tree.Preorder(tr)))
	fmt.Printf("Postorder:     %s\n", joinPositions(tree.Postorder(tr)))
	fmt.Printf("Level order:   %s\n", joinPositions(tree.BreadthFirstQueue(tr)))
	fmt.Printf("Stack order:   %s\n", joinPositions(tree.BreadthFirstStack(tr)))
	fmt.Printf("Leaves:        %s\n", joinPositions(tree.Leaves(tr)))
	fmt.Printf("Deepest branch: %s\n", joinPositions(tree.DeepestBranch(tr)))

	groups := tree.GroupByDepth(tr)
	for d := 0; d <= height; d++ {
		fmt.Printf("Depth %d:       %s\n", d, strings.Join(groups[d], " "))
	}

	if tree.HasDuplicates(tr) {
		fmt.Println("The tree holds duplicate user names")
	}
	return nil
}

func joinPositions(ps []position.Position[string]) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Element()
	}
	return strings.Join(names, " ")
}
