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

/*
Package simplerandom is a library of small, deterministic pseudo-random number
generators with a uniform contract: seed, next, and jump-ahead.

The generators are from two well-known families. Marsaglia's KISS components
and their combinations:

	Cong     32-bit linear congruential generator
	SHR3     32-bit xorshift generator (3-shift shift-register)
	MWC1     two 16-bit multiply-with-carry lanes (KISS99 version)
	MWC2     as MWC1, with an output tweak to fix short sub-cycles
	MWC64    one 64-bit multiply-with-carry lane
	KISS     (MWC2 ^ Cong) + SHR3
	KISS2    MWC64 + Cong + SHR3

and L'Ecuyer's combined Tausworthe generators:

	LFSR88   three combined linear-feedback shift registers (taus88)
	LFSR113  four combined linear-feedback shift registers (lfsr113)

All of them produce 32-bit outputs and hold between one and four words of
state. None of them are cryptographically secure. Their value is elsewhere:
tiny state, trivial arithmetic, well-understood periods, and output sequences
that are reproducible bit-for-bit across platforms and across the other
simplerandom implementations.

Note that the SHR3 defined in Marsaglia's 1999 KISS post was flawed and does
not have the full period of 2^32-1. This package uses the corrected shift
constants from his 2003 post, matching the rest of the simplerandom family.

Seeding

Any seed words are accepted. Each generator maps the raw words onto its state
and then replaces any value that falls into that generator's set of degenerate
states (for example the all-zero state of a pure xorshift register, which maps
to itself forever) with a fixed alternate constant. The replacement is
deterministic: the same seed produces the same state and the same output
sequence, every run, on every platform. Seeding cannot fail.

The zero value of every generator type is ready to use, because the all-zero
state is itself handled by that replacement.

Jump-Ahead

Jump(n) advances a generator's state by exactly n steps in O(log n) time,
without computing the n-1 intermediate outputs. Each generator's one-step
transition is linear: an affine map x -> a*x + c for Cong, a multiplication
modulo a*b^(w/2)-1 for the MWC lanes, and a 32x32 matrix over GF(2) for SHR3
and each Tausworthe register. The n-step transition is the one-step operator
raised to the n-th power, computed by binary exponentiation and applied to the
state once. Composite generators jump each component independently.

Concurrent Use

A generator is a plain mutable value and must not be shared between goroutines
without external locking. The intended pattern for parallel streams is one
generator per goroutine, each seeded identically and pre-skipped with Jump to
its own disjoint block of the output sequence.

References

Marsaglia, "Random numbers for C: End, at last?", sci.stat.math, 1999.
L'Ecuyer, "Maximally equidistributed combined Tausworthe generators", 1996.
L'Ecuyer, "Tables of maximally equidistributed combined LFSR generators", 1999.
http://cmcqueen.github.io/simplerandom/
*/
package simplerandom
