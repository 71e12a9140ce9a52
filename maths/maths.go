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

// Package maths provides fixed-width modular arithmetic primitives. The
// results are bit-exact on every platform: intermediate products are computed
// in double width rather than relying on any implementation-defined behavior.
package maths

import "math/bits"

// MulMod32 returns (a * b) mod m. m must not be zero.
func MulMod32(a, b, m uint32) uint32 {
	return uint32(uint64(a) * uint64(b) % uint64(m))
}

// MulMod64 returns (a * b) mod m, using a 128-bit intermediate product.
// m must not be zero.
func MulMod64(a, b, m uint64) uint64 {
	a %= m
	b %= m
	// With both factors reduced the high product word is < m, which
	// bits.Div64 requires.
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}
