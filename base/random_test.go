// Copyright 2025 synstat Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package base

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

const randomEpsilon = 0.1

func TestRandomGenerator_NormalVector64(t *testing.T) {
	rng := NewRandomGenerator(0)
	vec := rng.NormalVector64(1000, 1, 2)
	assert.False(t, math.Abs(stat.Mean(vec, nil)-1) > randomEpsilon)
	assert.False(t, math.Abs(stat.StdDev(vec, nil)-2) > randomEpsilon)
}

func TestRandomGenerator_UniformVector64(t *testing.T) {
	rng := NewRandomGenerator(0)
	vec := rng.UniformVector64(1000, 1, 2)
	for _, v := range vec {
		assert.GreaterOrEqual(t, v, 1.0)
		assert.Less(t, v, 2.0)
	}
}

func TestRandomGenerator_Uniform64(t *testing.T) {
	rng := NewRandomGenerator(0)
	for i := 0; i < 1000; i++ {
		v := rng.Uniform64(3, 10)
		assert.GreaterOrEqual(t, v, 3.0)
		assert.Less(t, v, 10.0)
	}
}

func TestRandomGenerator_SampleFloat64s(t *testing.T) {
	candidates := []float64{0.2, 0.5, 0.8, 1.2}
	rng := NewRandomGenerator(0)
	sampled := rng.SampleFloat64s(candidates, 100)
	assert.Len(t, sampled, 100)
	for _, v := range sampled {
		assert.Contains(t, candidates, v)
	}
}

func TestRandomGenerator_Determinism(t *testing.T) {
	a := NewRandomGenerator(42).NormalVector64(100, 0, 1)
	b := NewRandomGenerator(42).NormalVector64(100, 0, 1)
	assert.Equal(t, a, b)
}

func TestNewRand(t *testing.T) {
	r := NewRand(0)
	for i := 0; i < 100; i++ {
		v := r.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
