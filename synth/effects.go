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
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/synstat-io/synstat/base"
	"github.com/synstat-io/synstat/base/log"
)

const (
	// DefaultTargetSize is Cohen's conventional threshold for a large effect.
	DefaultTargetSize = 0.8
	// maxEffectSize caps multiplied magnitudes at a still-plausible value.
	maxEffectSize = 2.0
	// replaceUpperBound is the top of the replacement interval.
	replaceUpperBound = 1.5

	multiplyFactorLow  = 4.0
	multiplyFactorHigh = 8.0
)

// cohenBenchmarks are the conventional effect-size magnitudes reported in
// behavioral-science literature.
var cohenBenchmarks = []float64{0.2, 0.5, 0.8, 1.2}

// LargeEffectSizes remaps effectSizes so that every output magnitude looks
// large relative to targetSize, preserving each input's sign. A zero input
// has no sign, so it stays zero under every method; such inputs are counted
// in the advisory instead of being silently promoted. An empty input returns
// an empty output.
func LargeEffectSizes(effectSizes []float64, targetSize float64, method EffectSizeMethod, rng base.RandomGenerator) ([]float64, error) {
	if err := validateEffectSizeArgs(targetSize, method); err != nil {
		return nil, errors.Trace(err)
	}
	result := make([]float64, len(effectSizes))
	if len(effectSizes) == 0 {
		return result, nil
	}
	if already := lo.CountBy(effectSizes, func(d float64) bool { return math.Abs(d) >= targetSize }); already > 0 {
		log.Logger().Warn("some effect sizes are already large",
			zap.Int("count", already),
			zap.Float64("target_size", targetSize))
	}
	if zeros := lo.CountBy(effectSizes, func(d float64) bool { return d == 0 }); zeros > 0 {
		log.Logger().Warn("zero effect sizes carry no sign and stay zero",
			zap.Int("count", zeros))
	}
	switch method {
	case EffectSizeMultiply:
		for i, d := range effectSizes {
			magnitude := math.Min(math.Abs(d)*rng.Uniform64(multiplyFactorLow, multiplyFactorHigh), maxEffectSize)
			result[i] = signOf(d) * magnitude
		}
	case EffectSizeReplace:
		for i, d := range effectSizes {
			result[i] = signOf(d) * rng.Uniform64(targetSize, replaceUpperBound)
		}
	case EffectSizeCohen:
		candidates := largeBenchmarks(targetSize)
		magnitudes := rng.SampleFloat64s(candidates, len(effectSizes))
		for i, d := range effectSizes {
			result[i] = signOf(d) * magnitudes[i]
		}
	}
	return result, nil
}

func validateEffectSizeArgs(targetSize float64, method EffectSizeMethod) error {
	var probe EffectSizeMethod
	if err := probe.Set(method.String()); err != nil {
		return errors.Trace(err)
	}
	if math.IsNaN(targetSize) || targetSize <= 0 {
		return errors.NotValidf("target effect size %v", targetSize)
	}
	if method == EffectSizeReplace && targetSize >= replaceUpperBound {
		return errors.NotValidf("target effect size %v at or above replacement bound %v", targetSize, replaceUpperBound)
	}
	if method == EffectSizeCohen && len(largeBenchmarks(targetSize)) == 0 {
		return errors.NotValidf("target effect size %v above every benchmark", targetSize)
	}
	return nil
}

func largeBenchmarks(targetSize float64) []float64 {
	return lo.Filter(cohenBenchmarks, func(b float64, _ int) bool { return b >= targetSize })
}

func signOf(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
