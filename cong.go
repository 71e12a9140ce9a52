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

// congStep describes the Cong recurrence x -> mult*x + add (mod 2^32), from
// Marsaglia's KISS post. Every 32-bit value is a valid state: the multiplier
// is odd, so the map is a bijection with period 2^32 and there is nothing to
// sanitise.
var congStep = affine32{mult: 69069, add: 12345}

// Cong is Marsaglia's 32-bit linear congruential generator. The zero value
// is a Cong seeded with 0.
type Cong struct {
	cong uint32
}

var _ RNG = (*Cong)(nil)

// NewCong returns a Cong seeded with the given word.
func NewCong(seed1 uint32) *Cong {
	c := &Cong{}
	c.Seed(seed1)
	return c
}

// Seed replaces the state with the first seed word.
func (c *Cong) Seed(seeds ...uint32) {
	c.cong = seedWord(seeds, 0)
}

// Next advances the generator and returns its next output.
func (c *Cong) Next() uint32 {
	c.cong = congStep.Apply(c.cong)
	return c.cong
}

// Jump advances the generator by n steps.
func (c *Cong) Jump(n uint64) {
	c.cong = operatorPow(congStep, affine32Unity, n).Apply(c.cong)
}

// State returns the single state word.
func (c *Cong) State() []uint32 {
	return []uint32{c.cong}
}

// SetState restores a state previously returned by State.
func (c *Cong) SetState(words []uint32) error {
	if len(words) != 1 {
		return stateSizeError("Cong", 1, len(words))
	}
	c.cong = words[0]
	return nil
}
