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
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bbva/positional/position"
	"github.com/bbva/positional/tree"
)

// readLines returns the non-empty lines of the given file.
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// readPairs parses "parent child" lines from the given file.
func readPairs(path string) ([][2]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	pairs := make([][2]string, 0, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d of %s: expected 'parent child', got %q", i+1, path, line)
		}
		pairs = append(pairs, [2]string{fields[0], fields[1]})
	}
	return pairs, nil
}

// buildTree links every related user under its parent as declared by
// the relations pairs, keeping file order among siblings. The first
// user that never appears as a child becomes the root. Relations may
// reference their parent before it has been attached.
func buildTree(users []string, relations [][2]string) (*tree.LinkedTree[string], error) {
	isChild := make(map[string]bool, len(relations))
	for _, r := range relations {
		isChild[r[1]] = true
	}

	var rootUser string
	for _, u := range users {
		if !isChild[u] {
			rootUser = u
			break
		}
	}
	if rootUser == "" {
		return nil, errors.New("no root user: every user appears as a child")
	}

	t := tree.NewLinked[string]()
	rootPos, err := t.AddRoot(rootUser)
	if err != nil {
		return nil, err
	}
	positions := map[string]position.Position[string]{rootUser: rootPos}

	pending := relations
	for len(pending) > 0 {
		var deferred [][2]string
		progress := false
		for _, r := range pending {
			parentPos, ok := positions[r[0]]
			if !ok {
				deferred = append(deferred, r)
				continue
			}
			childPos, err := t.AddChild(parentPos, r[1])
			if err != nil {
				return nil, err
			}
			positions[r[1]] = childPos
			progress = true
		}
		if !progress {
			return nil, fmt.Errorf("%d relations reference users outside the tree", len(deferred))
		}
		pending = deferred
	}
	return t, nil
}
