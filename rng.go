/*
Copyright 2020 Craig McQueen

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

package simplerandom

import "github.com/pkg/errors"

// RNG is the contract shared by all generators in this package.
//
// A generator is a small, sequential arithmetic state machine. None of these
// operations fail except SetState, which rejects a state slice of the wrong
// shape for the generator.
type RNG interface {
	// Seed replaces the generator's state, derived deterministically from
	// the given words. Missing words are taken as zero; extra words are
	// ignored. Degenerate states are replaced by the generator's documented
	// alternate constant, so any seed values are acceptable.
	Seed(seeds ...uint32)

	// Next advances the generator one step and returns its 32-bit output.
	Next() uint32

	// Jump advances the generator by n steps in O(log n) time, without
	// producing the intermediate outputs. Jumping by n and then by m is
	// equivalent to jumping by n+m.
	Jump(n uint64)

	// State returns a copy of the generator's state words. Restoring the
	// same words with SetState reproduces the output sequence exactly,
	// across processes and platforms.
	State() []uint32

	// SetState replaces the generator's state words. It returns an error
	// if the slice does not have exactly the generator's word count;
	// a wrong-shaped state is never silently truncated.
	SetState(words []uint32) error
}

// seedWord returns the i'th seed word, or zero if fewer were given.
func seedWord(seeds []uint32, i int) uint32 {
	if i < len(seeds) {
		return seeds[i]
	}
	return 0
}

// stateSizeError reports a SetState call with the wrong word count.
func stateSizeError(name string, want, got int) error {
	return errors.Errorf("simplerandom: %s state must be %d words, got %d", name, want, got)
}
