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
Package bitmatrix implements 32x32 matrices over GF(2), stored as bit columns.

A Matrix32 represents a linear transformation of 32-bit words: column i is the
image of the basis vector with only bit i set, and applying the matrix to a
word is the XOR of the columns selected by the word's set bits. Addition is
XOR, multiplication is composition. Any sequence of shift, XOR and mask
operations on a 32-bit word is such a transformation, which is what makes
these matrices useful for analysing and jumping ahead xorshift and
Tausworthe generators.
*/
package bitmatrix

// Matrix32 is a 32x32 matrix over GF(2). Element (row, col) is bit 'row' of
// the uint32 at index 'col'. The zero value is the zero matrix.
type Matrix32 [32]uint32

// Zero returns the zero matrix, which maps every word to 0.
func Zero() Matrix32 {
	return Matrix32{}
}

// Unity returns the identity matrix.
func Unity() Matrix32 {
	var m Matrix32
	for i := range m {
		m[i] = 1 << uint(i)
	}
	return m
}

// Shift returns the matrix of a bit shift: for n >= 0 the transformation
// x << n, for n < 0 the transformation x >> -n. n must be in [-31, 31].
func Shift(n int) Matrix32 {
	var m Matrix32
	for i := range m {
		j := i + n
		if j >= 0 && j < 32 {
			m[i] = 1 << uint(j)
		}
	}
	return m
}

// Mask returns the matrix that keeps bits in [start, end) and clears the
// rest, i.e. the transformation x & mask.
func Mask(start, end int) Matrix32 {
	var m Matrix32
	for i := start; i < end; i++ {
		m[i] = 1 << uint(i)
	}
	return m
}

// Add returns m + other. Addition over GF(2) is XOR.
func (m Matrix32) Add(other Matrix32) Matrix32 {
	var sum Matrix32
	for i := range m {
		sum[i] = m[i] ^ other[i]
	}
	return sum
}

// Mul returns the matrix product m * other, the transformation that applies
// other first and then m.
func (m Matrix32) Mul(other Matrix32) Matrix32 {
	var product Matrix32
	for i := range other {
		product[i] = m.DotVec(other[i])
	}
	return product
}

// DotVec applies the transformation to a word: the matrix-vector product
// m * v over GF(2).
func (m Matrix32) DotVec(v uint32) uint32 {
	var result uint32
	for i := 0; v != 0; i++ {
		if v&1 != 0 {
			result ^= m[i]
		}
		v >>= 1
	}
	return result
}
