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

import (
	"math/bits"

	"github.com/cmcqueen/simplerandom-go/bitmatrix"
)

// lfsrRegister describes one Tausworthe sub-register. A step computes
//
//	b = ((z << shiftA) ^ z) >> shiftB
//	z = ((z & mask) << shiftC) ^ b
//
// where mask clears the low bits below min. Words below min never feed the
// shifted-back part of the register, so they belong to degenerate short
// cycles; min is the smallest usable value.
type lfsrRegister struct {
	shiftA uint
	shiftB uint
	shiftC uint
	min    uint32
}

// Tap tables from L'Ecuyer's taus88 and lfsr113 generators.
var (
	lfsr88Registers = [3]lfsrRegister{
		{shiftA: 13, shiftB: 19, shiftC: 12, min: 1 << 1},
		{shiftA: 2, shiftB: 25, shiftC: 4, min: 1 << 3},
		{shiftA: 3, shiftB: 11, shiftC: 17, min: 1 << 4},
	}
	lfsr113Registers = [4]lfsrRegister{
		{shiftA: 6, shiftB: 13, shiftC: 18, min: 1 << 1},
		{shiftA: 2, shiftB: 27, shiftC: 2, min: 1 << 3},
		{shiftA: 13, shiftB: 21, shiftC: 7, min: 1 << 4},
		{shiftA: 3, shiftB: 12, shiftC: 13, min: 1 << 7},
	}
)

func (r lfsrRegister) step(z uint32) uint32 {
	mask := ^(r.min - 1)
	b := ((z << r.shiftA) ^ z) >> r.shiftB
	return ((z & mask) << r.shiftC) ^ b
}

// sanitise replaces a degenerate register word with its complement, which is
// always at or above min for the tap tables used here.
func (r lfsrRegister) sanitise(z uint32) uint32 {
	if z < r.min {
		return ^z
	}
	return z
}

// matrix returns the register's one-step transition over GF(2), composed
// from shift and mask matrices exactly as step combines the word operations.
func (r lfsrRegister) matrix() bitmatrix.Matrix32 {
	low := bits.Len32(r.min - 1)
	keep := bitmatrix.Shift(int(r.shiftC)).Mul(bitmatrix.Mask(low, 32))
	feedback := bitmatrix.Shift(-int(r.shiftB)).Mul(xorShiftMatrix(int(r.shiftA)))
	return keep.Add(feedback)
}

func (r lfsrRegister) jump(z uint32, n uint64) uint32 {
	return matrixPow(r.matrix(), n).DotVec(r.sanitise(z))
}

// lfsrSeedZ maps a raw seed word onto a register word. Mixing the word with
// a shifted copy of itself keeps small seeds (0, 1, 2, ...) from starting
// several registers in nearly identical states.
func lfsrSeedZ(seed uint32) uint32 {
	return seed ^ seed<<16
}

// LFSR88 is L'Ecuyer's taus88: three combined Tausworthe registers with a
// period near 2^88. The zero value is ready to use.
type LFSR88 struct {
	z [3]uint32
}

var _ RNG = (*LFSR88)(nil)

// NewLFSR88 returns an LFSR88 seeded with the given words.
func NewLFSR88(seed1, seed2, seed3 uint32) *LFSR88 {
	g := &LFSR88{}
	g.Seed(seed1, seed2, seed3)
	return g
}

// Seed replaces the register states, one seed word per register.
func (g *LFSR88) Seed(seeds ...uint32) {
	for i, r := range lfsr88Registers {
		g.z[i] = r.sanitise(lfsrSeedZ(seedWord(seeds, i)))
	}
}

// Next advances all three registers and returns the XOR of their states.
func (g *LFSR88) Next() uint32 {
	var out uint32
	for i, r := range lfsr88Registers {
		g.z[i] = r.step(r.sanitise(g.z[i]))
		out ^= g.z[i]
	}
	return out
}

// Jump advances the generator by n steps.
func (g *LFSR88) Jump(n uint64) {
	for i, r := range lfsr88Registers {
		g.z[i] = r.jump(g.z[i], n)
	}
}

// State returns the state words (z1, z2, z3).
func (g *LFSR88) State() []uint32 {
	return []uint32{g.z[0], g.z[1], g.z[2]}
}

// SetState restores a state previously returned by State.
func (g *LFSR88) SetState(words []uint32) error {
	if len(words) != len(g.z) {
		return stateSizeError("LFSR88", len(g.z), len(words))
	}
	copy(g.z[:], words)
	return nil
}

// LFSR113 is L'Ecuyer's lfsr113: four combined Tausworthe registers with a
// period near 2^113. The zero value is ready to use.
type LFSR113 struct {
	z [4]uint32
}

var _ RNG = (*LFSR113)(nil)

// NewLFSR113 returns an LFSR113 seeded with the given words.
func NewLFSR113(seed1, seed2, seed3, seed4 uint32) *LFSR113 {
	g := &LFSR113{}
	g.Seed(seed1, seed2, seed3, seed4)
	return g
}

// Seed replaces the register states, one seed word per register.
func (g *LFSR113) Seed(seeds ...uint32) {
	for i, r := range lfsr113Registers {
		g.z[i] = r.sanitise(lfsrSeedZ(seedWord(seeds, i)))
	}
}

// Next advances all four registers and returns the XOR of their states.
func (g *LFSR113) Next() uint32 {
	var out uint32
	for i, r := range lfsr113Registers {
		g.z[i] = r.step(r.sanitise(g.z[i]))
		out ^= g.z[i]
	}
	return out
}

// Jump advances the generator by n steps.
func (g *LFSR113) Jump(n uint64) {
	for i, r := range lfsr113Registers {
		g.z[i] = r.jump(g.z[i], n)
	}
}

// State returns the state words (z1, z2, z3, z4).
func (g *LFSR113) State() []uint32 {
	return []uint32{g.z[0], g.z[1], g.z[2], g.z[3]}
}

// SetState restores a state previously returned by State.
func (g *LFSR113) SetState(words []uint32) error {
	if len(words) != len(g.z) {
		return stateSizeError("LFSR113", len(g.z), len(words))
	}
	copy(g.z[:], words)
	return nil
}
