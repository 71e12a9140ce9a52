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

// Perturbing one component's seed must change the combined output while
// leaving the other components' states exactly as in a control run.
func TestKISSComponentIndependence(t *testing.T) {
	t.Parallel()
	control := NewKISS(1, 2, 3, 4)
	perturbed := NewKISS(1, 2, 99, 4) // different Cong seed only

	controlOut := outputs(control, 100)
	perturbedOut := outputs(perturbed, 100)
	require.NotEqual(t, controlOut, perturbedOut)

	// State layout: mwc upper, mwc lower, cong, shr3.
	cs, ps := control.State(), perturbed.State()
	require.Equal(t, cs[0], ps[0])
	require.Equal(t, cs[1], ps[1])
	require.NotEqual(t, cs[2], ps[2])
	require.Equal(t, cs[3], ps[3])
}

func TestKISS2ComponentIndependence(t *testing.T) {
	t.Parallel()
	control := NewKISS2(1, 2, 3, 4)
	perturbed := NewKISS2(1, 9, 3, 4) // different MWC64 seed only

	require.NotEqual(t, outputs(control, 100), outputs(perturbed, 100))

	cs, ps := control.State(), perturbed.State()
	require.NotEqual(t, cs[0:2], ps[0:2])
	require.Equal(t, cs[2], ps[2])
	require.Equal(t, cs[3], ps[3])
}

// The combined output is a pure function of the component states.
func TestKISSCombiningFormula(t *testing.T) {
	t.Parallel()
	rng := NewKISS(2247183469, 99545079, 3269400377, 3950144837)
	for i := 0; i < 100; i++ {
		out := rng.Next()
		s := rng.State()
		mwcOut := s[1] + s[0]<<16 + s[0]>>16
		require.Equal(t, (mwcOut^s[2])+s[3], out)
	}
}

func TestKISS2CombiningFormula(t *testing.T) {
	t.Parallel()
	rng := NewKISS2(1, 2, 3, 4)
	for i := 0; i < 100; i++ {
		out := rng.Next()
		s := rng.State()
		require.Equal(t, s[1]+s[2]+s[3], out)
	}
}
