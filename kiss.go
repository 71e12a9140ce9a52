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

// KISS is Marsaglia's "keep it simple stupid" combination generator:
// (MWC2 ^ Cong) + SHR3. The components run independently; seeding, stepping
// and jumping all delegate to each component with no shared state, which is
// why the combined period is (close to) the product of the component
// periods. The zero value is ready to use.
type KISS struct {
	mwc  MWC2
	cong Cong
	shr3 SHR3
}

var _ RNG = (*KISS)(nil)

// NewKISS returns a KISS seeded with the given words.
func NewKISS(seed1, seed2, seed3, seed4 uint32) *KISS {
	g := &KISS{}
	g.Seed(seed1, seed2, seed3, seed4)
	return g
}

// Seed seeds the components: words 1-2 the MWC2 lanes, word 3 Cong,
// word 4 SHR3.
func (g *KISS) Seed(seeds ...uint32) {
	g.mwc.Seed(seedWord(seeds, 0), seedWord(seeds, 1))
	g.cong.Seed(seedWord(seeds, 2))
	g.shr3.Seed(seedWord(seeds, 3))
}

func (g *KISS) current() uint32 {
	return (g.mwc.current() ^ g.cong.cong) + g.shr3.shr3
}

// Next advances every component and returns the combined output.
func (g *KISS) Next() uint32 {
	g.mwc.Next()
	g.cong.Next()
	g.shr3.Next()
	return g.current()
}

// Jump advances every component by n steps.
func (g *KISS) Jump(n uint64) {
	g.mwc.Jump(n)
	g.cong.Jump(n)
	g.shr3.Jump(n)
}

// State returns the state words (mwc upper, mwc lower, cong, shr3).
func (g *KISS) State() []uint32 {
	return []uint32{g.mwc.upper, g.mwc.lower, g.cong.cong, g.shr3.shr3}
}

// SetState restores a state previously returned by State.
func (g *KISS) SetState(words []uint32) error {
	if len(words) != 4 {
		return stateSizeError("KISS", 4, len(words))
	}
	g.mwc.upper = words[0]
	g.mwc.lower = words[1]
	g.cong.cong = words[2]
	g.shr3.shr3 = words[3]
	return nil
}

// KISS2 is the newer KISS variant built on the 64-bit MWC lane:
// MWC64 + Cong + SHR3. The zero value is ready to use.
type KISS2 struct {
	mwc  MWC64
	cong Cong
	shr3 SHR3
}

var _ RNG = (*KISS2)(nil)

// NewKISS2 returns a KISS2 seeded with the given words.
func NewKISS2(seed1, seed2, seed3, seed4 uint32) *KISS2 {
	g := &KISS2{}
	g.Seed(seed1, seed2, seed3, seed4)
	return g
}

// Seed seeds the components: words 1-2 the MWC64 lane, word 3 Cong,
// word 4 SHR3.
func (g *KISS2) Seed(seeds ...uint32) {
	g.mwc.Seed(seedWord(seeds, 0), seedWord(seeds, 1))
	g.cong.Seed(seedWord(seeds, 2))
	g.shr3.Seed(seedWord(seeds, 3))
}

func (g *KISS2) current() uint32 {
	return uint32(g.mwc.mwc) + g.cong.cong + g.shr3.shr3
}

// Next advances every component and returns the combined output.
func (g *KISS2) Next() uint32 {
	g.mwc.Next()
	g.cong.Next()
	g.shr3.Next()
	return g.current()
}

// Jump advances every component by n steps.
func (g *KISS2) Jump(n uint64) {
	g.mwc.Jump(n)
	g.cong.Jump(n)
	g.shr3.Jump(n)
}

// State returns the state words (mwc high, mwc low, cong, shr3).
func (g *KISS2) State() []uint32 {
	return []uint32{uint32(g.mwc.mwc >> 32), uint32(g.mwc.mwc), g.cong.cong, g.shr3.shr3}
}

// SetState restores a state previously returned by State.
func (g *KISS2) SetState(words []uint32) error {
	if len(words) != 4 {
		return stateSizeError("KISS2", 4, len(words))
	}
	g.mwc.mwc = uint64(words[0])<<32 | uint64(words[1])
	g.cong.cong = words[2]
	g.shr3.shr3 = words[3]
	return nil
}
