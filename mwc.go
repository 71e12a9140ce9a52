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

// mwcLane32 describes one 16-bit-in-32 multiply-with-carry lane. The state
// packs (carry, x) into one word; one step computes mult*x + carry, so the
// lane is equivalent to multiplication by mult modulo mult*2^16 - 1.
type mwcLane32 struct {
	mult    uint32
	modulus uint32
}

// Lane constants from Marsaglia's KISS post. MWC2 differs from MWC1 only in
// how the lanes are combined into an output, not in the lanes themselves.
var (
	mwcUpperLane = mwcLane32{mult: 36969, modulus: 36969<<16 - 1}
	mwcLowerLane = mwcLane32{mult: 18000, modulus: 18000<<16 - 1}
)

func (l mwcLane32) step(x uint32) uint32 {
	return (x&0xFFFF)*l.mult + x>>16
}

// sanitise maps a raw lane word onto a usable residue. Values at or above
// the modulus are reduced; a zero residue is degenerate (the lane would
// stay at zero forever) and is replaced by the complement of the raw word,
// reduced the same way. The modulus is subtracted at most once, so a raw
// word of exactly twice the modulus lands on the modulus itself, a fixed
// point of step; the other simplerandom implementations share this edge,
// and changing it would break cross-implementation output parity.
func (l mwcLane32) sanitise(x uint32) uint32 {
	temp := x
	if temp >= l.modulus {
		temp -= l.modulus
	}
	if temp == 0 {
		temp = ^x
		if temp >= l.modulus {
			temp -= l.modulus
		}
	}
	return temp
}

func (l mwcLane32) jump(x uint32, n uint64) uint32 {
	op := operatorPow(
		modMult32{mult: l.mult, modulus: l.modulus},
		modMult32{mult: 1, modulus: l.modulus},
		n,
	)
	return op.Apply(x)
}

// MWC2 combines the two multiply-with-carry lanes of KISS. Its output mixes
// in the upper lane's carry bits (upper>>16), which removes the short
// sub-cycles visible in MWC1's output. The zero value is ready to use.
type MWC2 struct {
	upper uint32
	lower uint32
}

var _ RNG = (*MWC2)(nil)

// NewMWC2 returns an MWC2 seeded with the given words.
func NewMWC2(seed1, seed2 uint32) *MWC2 {
	m := &MWC2{}
	m.Seed(seed1, seed2)
	return m
}

// Seed replaces the lane states with the first two seed words, sanitised
// onto each lane's valid residues.
func (m *MWC2) Seed(seeds ...uint32) {
	m.upper = mwcUpperLane.sanitise(seedWord(seeds, 0))
	m.lower = mwcLowerLane.sanitise(seedWord(seeds, 1))
}

func (m *MWC2) sanitise() {
	m.upper = mwcUpperLane.sanitise(m.upper)
	m.lower = mwcLowerLane.sanitise(m.lower)
}

func (m *MWC2) current() uint32 {
	return m.lower + m.upper<<16 + m.upper>>16
}

// Next advances both lanes and returns the combined output.
func (m *MWC2) Next() uint32 {
	m.sanitise()
	m.upper = mwcUpperLane.step(m.upper)
	m.lower = mwcLowerLane.step(m.lower)
	return m.current()
}

// Jump advances the generator by n steps.
func (m *MWC2) Jump(n uint64) {
	m.sanitise()
	m.upper = mwcUpperLane.jump(m.upper, n)
	m.lower = mwcLowerLane.jump(m.lower, n)
}

// State returns the state words (upper, lower).
func (m *MWC2) State() []uint32 {
	return []uint32{m.upper, m.lower}
}

// SetState restores a state previously returned by State.
func (m *MWC2) SetState(words []uint32) error {
	if len(words) != 2 {
		return stateSizeError("MWC2", 2, len(words))
	}
	m.upper = words[0]
	m.lower = words[1]
	return nil
}

// MWC1 is the multiply-with-carry generator of the 1999 KISS post. It runs
// the same two lanes as MWC2 but combines them as lower + upper<<16,
// discarding the upper lane's carry bits; MWC2's output is the better mix.
// Provided for compatibility with the other simplerandom implementations.
// The zero value is ready to use.
type MWC1 struct {
	mwc MWC2
}

var _ RNG = (*MWC1)(nil)

// NewMWC1 returns an MWC1 seeded with the given words.
func NewMWC1(seed1, seed2 uint32) *MWC1 {
	m := &MWC1{}
	m.Seed(seed1, seed2)
	return m
}

// Seed replaces the lane states with the first two seed words.
func (m *MWC1) Seed(seeds ...uint32) {
	m.mwc.Seed(seeds...)
}

// Next advances both lanes and returns the combined output.
func (m *MWC1) Next() uint32 {
	m.mwc.Next()
	return m.mwc.lower + m.mwc.upper<<16
}

// Jump advances the generator by n steps.
func (m *MWC1) Jump(n uint64) {
	m.mwc.Jump(n)
}

// State returns the state words (upper, lower).
func (m *MWC1) State() []uint32 {
	return m.mwc.State()
}

// SetState restores a state previously returned by State.
func (m *MWC1) SetState(words []uint32) error {
	if len(words) != 2 {
		return stateSizeError("MWC1", 2, len(words))
	}
	return m.mwc.SetState(words)
}

// MWC64 single-lane constants: one step of the 64-bit lane is equivalent to
// multiplication by the lane multiplier modulo mult*2^32 - 1.
const (
	mwc64Mult    uint64 = 698769069
	mwc64Modulus uint64 = mwc64Mult<<32 - 1
)

// MWC64 is a single 64-bit multiply-with-carry lane, the MWC component of
// Marsaglia's KISS2. Its output is the low 32 bits of the lane. The zero
// value is ready to use.
type MWC64 struct {
	mwc uint64
}

var _ RNG = (*MWC64)(nil)

// NewMWC64 returns an MWC64 seeded with the given words.
func NewMWC64(seed1, seed2 uint32) *MWC64 {
	m := &MWC64{}
	m.Seed(seed1, seed2)
	return m
}

// Seed packs the first two seed words into the 64-bit lane (seed1 high,
// seed2 low), sanitised onto the lane's valid residues.
func (m *MWC64) Seed(seeds ...uint32) {
	m.mwc = uint64(seedWord(seeds, 0))<<32 ^ uint64(seedWord(seeds, 1))
	m.sanitise()
}

// sanitise is the 64-bit analogue of the 32-bit lane sanitiser, including
// its single-subtraction treatment of words at twice the modulus.
func (m *MWC64) sanitise() {
	temp := m.mwc
	if temp >= mwc64Modulus {
		temp -= mwc64Modulus
	}
	if temp == 0 {
		temp = ^m.mwc
		if temp >= mwc64Modulus {
			temp -= mwc64Modulus
		}
	}
	m.mwc = temp
}

// Next advances the lane and returns its low 32 bits.
func (m *MWC64) Next() uint32 {
	m.sanitise()
	m.mwc = (m.mwc&0xFFFFFFFF)*mwc64Mult + m.mwc>>32
	return uint32(m.mwc)
}

// Jump advances the generator by n steps.
func (m *MWC64) Jump(n uint64) {
	m.sanitise()
	op := operatorPow(
		modMult64{mult: mwc64Mult, modulus: mwc64Modulus},
		modMult64{mult: 1, modulus: mwc64Modulus},
		n,
	)
	m.mwc = op.Apply(m.mwc)
}

// State returns the state words (high, low) of the 64-bit lane.
func (m *MWC64) State() []uint32 {
	return []uint32{uint32(m.mwc >> 32), uint32(m.mwc)}
}

// SetState restores a state previously returned by State.
func (m *MWC64) SetState(words []uint32) error {
	if len(words) != 2 {
		return stateSizeError("MWC64", 2, len(words))
	}
	m.mwc = uint64(words[0])<<32 | uint64(words[1])
	return nil
}
