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

// Package rand provides deterministic pseudo-random inputs for tests.
package rand

import (
	"math/rand"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// String returns a pseudo-random lowercase string of length n drawn
// from the given source.
func String(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}

// Ints returns n pseudo-random ints in [0, bound) drawn from the given
// source.
func Ints(r *rand.Rand, n, bound int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = r.Intn(bound)
	}
	return values
}
