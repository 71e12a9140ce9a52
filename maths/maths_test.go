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

package maths

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulMod32(t *testing.T) {
	t.Parallel()
	cases := []struct {
		a, b, m, want uint32
	}{
		{1, 1, 0x9068FFFF, 1},
		{2, 0x40000000, 0x9068FFFF, 0x80000000},
		{4, 0x40000000, 0x9068FFFF, 0x6F970001},
		{123456789, 3111222333, 0x9068FFFF, 1473911797},
		{0xFFFFFFFE, 0xFFFFFFFE, 0xFFFFFFFF, 1},
		{12785, 35067, 36969, 8532},
	}
	for _, c := range cases {
		require.Equal(t, c.want, MulMod32(c.a, c.b, c.m), "MulMod32(%d, %d, %d)", c.a, c.b, c.m)
	}
}

func TestMulMod64(t *testing.T) {
	t.Parallel()
	cases := []struct {
		a, b, m, want uint64
	}{
		{1, 1, 0x29A65EACFFFFFFFF, 1},
		{12345678901234567890, 10888777666555444333, 0x29A65EACFFFFFFFF, 1426802886101663366},
		{0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFF, 1},
	}
	for _, c := range cases {
		require.Equal(t, c.want, MulMod64(c.a, c.b, c.m), "MulMod64(%d, %d, %d)", c.a, c.b, c.m)
	}
}

func TestMulMod64ReducesFactors(t *testing.T) {
	t.Parallel()
	// Factors at or above the modulus must be reduced, not mishandled.
	require.Equal(t, MulMod64(3, 5, 7), MulMod64(3+7, 5+14, 7))
	require.Equal(t, uint64(0), MulMod64(123456789, 987654321, 1))
}
