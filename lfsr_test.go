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
	"testing"

	"github.com/stretchr/testify/require"
)

// Raw seed words whose register mapping z = seed ^ seed<<16 lands below the
// register minimum must be replaced, and stepping from a replaced state must
// never fall back below the minimum.
func TestLFSR113BadSeeds(t *testing.T) {
	t.Parallel()
	// seed 0 maps to z = 0, below every register's minimum.
	rng := NewLFSR113(0, 0, 0, 0)
	for i, r := range lfsr113Registers {
		require.GreaterOrEqual(t, rng.State()[i], r.min, "register %d", i)
	}
	for j := 0; j < 1000; j++ {
		rng.Next()
		for i, r := range lfsr113Registers {
			require.GreaterOrEqual(t, rng.State()[i], r.min, "register %d after %d steps", i, j+1)
		}
	}
}

func TestLFSR88BadSeeds(t *testing.T) {
	t.Parallel()
	rng := NewLFSR88(0, 0, 0)
	for i, r := range lfsr88Registers {
		require.GreaterOrEqual(t, rng.State()[i], r.min, "register %d", i)
	}
}

// The complement fallback must itself be a valid register word for every
// possible degenerate value, including the largest minimum (128).
func TestLFSRSanitiseFallback(t *testing.T) {
	t.Parallel()
	for _, r := range append(lfsr88Registers[:], lfsr113Registers[:]...) {
		for z := uint32(0); z < r.min; z++ {
			require.GreaterOrEqual(t, r.sanitise(z), r.min, "z=%d min=%d", z, r.min)
		}
		require.Equal(t, r.min, r.sanitise(r.min))
	}
}

// Each sub-register is an independent recurrence: stepping the combined
// generator advances every register exactly as stepping it alone would.
func TestLFSRRegisterIndependence(t *testing.T) {
	t.Parallel()
	rng := NewLFSR113(1, 2, 3, 4)
	initial := rng.State()
	for i := 0; i < 100; i++ {
		rng.Next()
	}
	for i, r := range lfsr113Registers {
		z := r.sanitise(initial[i])
		for j := 0; j < 100; j++ {
			z = r.step(r.sanitise(z))
		}
		require.Equal(t, z, rng.State()[i], "register %d", i)
	}
}
