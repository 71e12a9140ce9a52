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

import "github.com/cmcqueen/simplerandom-go/bitmatrix"

// SHR3 shift constants, applied as x<<13, x>>17, x<<5. These are the
// corrected constants from Marsaglia's 2003 post. The 1999 KISS post used
// <<17, >>13, <<5, which does not generate the full period of 2^32-1 and is
// deliberately not available here.
const (
	shr3Shift1 = 13
	shr3Shift2 = 17
	shr3Shift3 = 5
)

// shr3Matrix is the one-step transition of SHR3 as a GF(2) matrix: each
// "x ^= shifted x" stage is I plus a shift matrix, and the step is their
// product, last stage leftmost.
var shr3Matrix = xorShiftMatrix(shr3Shift3).
	Mul(xorShiftMatrix(-shr3Shift2)).
	Mul(xorShiftMatrix(shr3Shift1))

// xorShiftMatrix returns the matrix of x ^= x<<n (or x>>-n for negative n).
func xorShiftMatrix(n int) bitmatrix.Matrix32 {
	return bitmatrix.Unity().Add(bitmatrix.Shift(n))
}

// SHR3 is Marsaglia's 3-shift shift-register generator. Its single state
// word cycles through all 2^32-1 non-zero values; the all-zero state is
// degenerate (it maps to itself) and is replaced by 0xFFFFFFFF. The zero
// value is ready to use.
type SHR3 struct {
	shr3 uint32
}

var _ RNG = (*SHR3)(nil)

// NewSHR3 returns a SHR3 seeded with the given word.
func NewSHR3(seed1 uint32) *SHR3 {
	s := &SHR3{}
	s.Seed(seed1)
	return s
}

// Seed replaces the state with the first seed word, substituting the
// alternate constant if the word is zero.
func (s *SHR3) Seed(seeds ...uint32) {
	s.shr3 = seedWord(seeds, 0)
	s.sanitise()
}

func (s *SHR3) sanitise() {
	if s.shr3 == 0 {
		s.shr3 = 0xFFFFFFFF
	}
}

// Next advances the generator and returns its next output.
func (s *SHR3) Next() uint32 {
	s.sanitise()
	shr3 := s.shr3
	shr3 ^= shr3 << shr3Shift1
	shr3 ^= shr3 >> shr3Shift2
	shr3 ^= shr3 << shr3Shift3
	s.shr3 = shr3
	return shr3
}

// Jump advances the generator by n steps.
func (s *SHR3) Jump(n uint64) {
	s.sanitise()
	s.shr3 = matrixPow(shr3Matrix, n).DotVec(s.shr3)
}

// State returns the single state word.
func (s *SHR3) State() []uint32 {
	return []uint32{s.shr3}
}

// SetState restores a state previously returned by State.
func (s *SHR3) SetState(words []uint32) error {
	if len(words) != 1 {
		return stateSizeError("SHR3", 1, len(words))
	}
	s.shr3 = words[0]
	return nil
}
