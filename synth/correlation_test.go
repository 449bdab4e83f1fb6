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
package synth

import (
	"fmt"
	"math"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/synstat-io/synstat/base"
)

func TestCorrelate_Length(t *testing.T) {
	series, err := Correlate(GenerationRequest{N: 100, Correlation: 0.5, SDX: 1, SDY: 1}, base.NewRandomGenerator(0))
	require.NoError(t, err)
	assert.Len(t, series.X, 100)
	assert.Len(t, series.Y, 100)
}

func TestCorrelate_Determinism(t *testing.T) {
	req := GenerationRequest{N: 1000, Correlation: 0.3, MeanX: 5, MeanY: -2, SDX: 2, SDY: 0.5}
	a, err := Correlate(req, base.NewRandomGenerator(42))
	require.NoError(t, err)
	b, err := Correlate(req, base.NewRandomGenerator(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCorrelate_Convergence(t *testing.T) {
	for _, target := range []float64{-0.8, -0.2, 0, 0.6, 0.95} {
		t.Run(fmt.Sprintf("correlation=%v", target), func(t *testing.T) {
			req := GenerationRequest{N: 100000, Correlation: target, MeanX: 10, MeanY: -3, SDX: 2, SDY: 4}
			series, err := Correlate(req, base.NewRandomGenerator(0))
			require.NoError(t, err)
			assert.InDelta(t, target, stat.Correlation(series.X, series.Y, nil), 0.01)
			assert.InDelta(t, req.MeanX, stat.Mean(series.X, nil), 0.05)
			assert.InDelta(t, req.MeanY, stat.Mean(series.Y, nil), 0.1)
			assert.InDelta(t, req.SDX, stat.StdDev(series.X, nil), 0.05)
			assert.InDelta(t, req.SDY, stat.StdDev(series.Y, nil), 0.1)
		})
	}
}

func TestCorrelate_PerfectCorrelation(t *testing.T) {
	req := GenerationRequest{N: 1000, Correlation: 1, MeanX: 3, MeanY: 7, SDX: 2, SDY: 5}
	series, err := Correlate(req, base.NewRandomGenerator(0))
	require.NoError(t, err)
	mean := stat.Mean(series.X, nil)
	sd := stat.StdDev(series.X, nil)
	for i, x := range series.X {
		zx := (x - mean) / sd
		assert.InDelta(t, req.MeanY+req.SDY*zx, series.Y[i], 1e-9)
	}
	assert.InDelta(t, 1, stat.Correlation(series.X, series.Y, nil), 1e-9)
}

func TestCorrelate_InvalidArgument(t *testing.T) {
	rng := base.NewRandomGenerator(0)
	_, err := Correlate(GenerationRequest{N: 100, Correlation: 1.5, SDX: 1, SDY: 1}, rng)
	assert.ErrorIs(t, err, errors.NotValid)
	_, err = Correlate(GenerationRequest{N: 100, Correlation: -1.5, SDX: 1, SDY: 1}, rng)
	assert.ErrorIs(t, err, errors.NotValid)
	_, err = Correlate(GenerationRequest{N: 0, Correlation: 0.5, SDX: 1, SDY: 1}, rng)
	assert.ErrorIs(t, err, errors.NotValid)
	_, err = Correlate(GenerationRequest{N: -10, Correlation: 0.5, SDX: 1, SDY: 1}, rng)
	assert.ErrorIs(t, err, errors.NotValid)
	_, err = Correlate(GenerationRequest{N: 100, Correlation: 0.5, SDX: -1, SDY: 1}, rng)
	assert.ErrorIs(t, err, errors.NotValid)
	_, err = Correlate(GenerationRequest{N: 100, Correlation: 0.5, SDX: 1, SDY: -1}, rng)
	assert.ErrorIs(t, err, errors.NotValid)
	_, err = Correlate(GenerationRequest{N: 100, Correlation: math.NaN(), SDX: 1, SDY: 1}, rng)
	assert.ErrorIs(t, err, errors.NotValid)
}

func TestCorrelate_SingleObservation(t *testing.T) {
	_, err := Correlate(GenerationRequest{N: 1, Correlation: 0.5, SDX: 1, SDY: 1}, base.NewRandomGenerator(0))
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestCorrelate_ZeroStandardDeviation(t *testing.T) {
	req := GenerationRequest{N: 1000, Correlation: 0.5, MeanX: 4, MeanY: 1, SDX: 0, SDY: 2}
	series, err := Correlate(req, base.NewRandomGenerator(0))
	require.NoError(t, err)
	for _, x := range series.X {
		assert.Equal(t, 4.0, x)
	}
	for _, y := range series.Y {
		assert.False(t, math.IsNaN(y))
	}
}
