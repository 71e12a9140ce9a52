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
	"github.com/cmcqueen/simplerandom-go/bitmatrix"
	"github.com/cmcqueen/simplerandom-go/maths"
)

// Jump-ahead machinery. Every generator's one-step transition is represented
// as an algebraic operator closed under composition, so the n-step transition
// is the operator raised to the n-th power. operatorPow computes that power
// by square-and-compose in O(log n) compositions; it is the single
// exponentiation loop shared by every generator family.

// composable is an operator that can be combined with another of its kind.
// Compose(other) returns the operator that applies other first, then the
// receiver, matching matrix multiplication order.
type composable[T any] interface {
	Compose(other T) T
}

// operatorPow returns op raised to the n-th power. unity must be the identity
// operator of op's kind; it is the result for n = 0.
func operatorPow[T composable[T]](op, unity T, n uint64) T {
	result := unity
	for square := op; n != 0; n >>= 1 {
		if n&1 != 0 {
			result = result.Compose(square)
		}
		square = square.Compose(square)
	}
	return result
}

// affine32 is the transformation x -> mult*x + add over Z/2^32, with the
// wraparound semantics of uint32 arithmetic. It covers the Cong recurrence,
// and its powers carry the geometric series 1 + a + ... + a^(n-1) in the add
// term, which is how the additive constant is folded into a jump.
type affine32 struct {
	mult uint32
	add  uint32
}

func (a affine32) Compose(other affine32) affine32 {
	return affine32{
		mult: a.mult * other.mult,
		add:  a.mult*other.add + a.add,
	}
}

func (a affine32) Apply(x uint32) uint32 {
	return a.mult*x + a.add
}

var affine32Unity = affine32{mult: 1}

// modMult32 is the transformation x -> mult*x (mod modulus), the one-step
// operator of a 32-bit multiply-with-carry lane viewed multiplicatively.
type modMult32 struct {
	mult    uint32
	modulus uint32
}

func (m modMult32) Compose(other modMult32) modMult32 {
	return modMult32{
		mult:    maths.MulMod32(m.mult, other.mult, m.modulus),
		modulus: m.modulus,
	}
}

func (m modMult32) Apply(x uint32) uint32 {
	return maths.MulMod32(m.mult, x, m.modulus)
}

// modMult64 is the 64-bit counterpart of modMult32, for the MWC64 lane.
type modMult64 struct {
	mult    uint64
	modulus uint64
}

func (m modMult64) Compose(other modMult64) modMult64 {
	return modMult64{
		mult:    maths.MulMod64(m.mult, other.mult, m.modulus),
		modulus: m.modulus,
	}
}

func (m modMult64) Apply(x uint64) uint64 {
	return maths.MulMod64(m.mult, x, m.modulus)
}

// gf2Matrix adapts bitmatrix.Matrix32 to the composable operator shape, for
// the GF(2)-linear generators (SHR3 and the Tausworthe sub-registers).
type gf2Matrix struct {
	bitmatrix.Matrix32
}

func (m gf2Matrix) Compose(other gf2Matrix) gf2Matrix {
	return gf2Matrix{m.Mul(other.Matrix32)}
}

// matrixPow returns m raised to the n-th power over GF(2).
func matrixPow(m bitmatrix.Matrix32, n uint64) bitmatrix.Matrix32 {
	return operatorPow(gf2Matrix{m}, gf2Matrix{bitmatrix.Unity()}, n).Matrix32
}
