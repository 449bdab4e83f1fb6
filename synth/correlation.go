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
	"math"

	"github.com/juju/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/synstat-io/synstat/base"
)

// ErrDegenerate reports a mathematically undefined operation on otherwise
// valid-looking input, such as sample standardization of a single value.
const ErrDegenerate = errors.ConstError("degenerate input")

// GenerationRequest describes a correlated pair to synthesize.
type GenerationRequest struct {
	N           int
	Correlation float64
	MeanX       float64
	MeanY       float64
	SDX         float64
	SDY         float64
}

// Validate checks that all scalar parameters are in domain. Validation runs
// before any value is drawn, so a failed call never consumes random state.
func (r GenerationRequest) Validate() error {
	if r.N <= 0 {
		return errors.NotValidf("number of observations %d", r.N)
	}
	if math.IsNaN(r.Correlation) || r.Correlation < -1 || r.Correlation > 1 {
		return errors.NotValidf("correlation %v outside [-1, 1]", r.Correlation)
	}
	if math.IsNaN(r.SDX) || r.SDX < 0 {
		return errors.NotValidf("standard deviation of x %v", r.SDX)
	}
	if math.IsNaN(r.SDY) || r.SDY < 0 {
		return errors.NotValidf("standard deviation of y %v", r.SDY)
	}
	if math.IsNaN(r.MeanX) || math.IsNaN(r.MeanY) {
		return errors.NotValidf("mean (%v, %v)", r.MeanX, r.MeanY)
	}
	if r.N == 1 {
		return errors.WithType(errors.New("sample standardization undefined for a single observation"), ErrDegenerate)
	}
	return nil
}

// PairedSeries holds two sequences of equal length. Both slices are freshly
// allocated on every call and owned by the caller.
type PairedSeries struct {
	X []float64
	Y []float64
}

// Correlate synthesizes two sequences of length req.N whose sample Pearson
// correlation, means and standard deviations approximate the requested
// targets. The construction is the two-variable Cholesky decomposition:
// x is drawn normal and standardized by its own sample moments, then
//
//	y_i = meanY + sdY * (c*zx_i + sqrt(1-c^2)*e_i)
//
// with e an independent standard normal vector. The realized correlation
// converges to the target as N grows; no exact guarantee is made for
// finite N. Output is deterministic given the seed of rng.
func Correlate(req GenerationRequest, rng base.RandomGenerator) (PairedSeries, error) {
	if err := req.Validate(); err != nil {
		return PairedSeries{}, errors.Trace(err)
	}
	x := rng.NormalVector64(req.N, req.MeanX, req.SDX)
	// Standardize by the sample moments, not the requested ones.
	zx := make([]float64, req.N)
	if sd := stat.StdDev(x, nil); sd > 0 {
		copy(zx, x)
		floats.AddConst(-stat.Mean(x, nil), zx)
		floats.Scale(1/sd, zx)
	}
	// sdX = 0 leaves zx all zero: a constant axis carries no correlation.
	e := rng.NormalVector64(req.N, 0, 1)
	residual := math.Sqrt(1 - req.Correlation*req.Correlation)
	y := make([]float64, req.N)
	for i := range y {
		y[i] = req.MeanY + req.SDY*(req.Correlation*zx[i]+residual*e[i])
	}
	return PairedSeries{X: x, Y: y}, nil
}
