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
	// DefaultTargetAlpha is the conventional significance threshold.
	DefaultTargetAlpha = 0.05
	// minPValue is the floor below which no output is pushed.
	minPValue = 0.001

	divideFactorLow  = 3.0
	divideFactorHigh = 10.0
)

// SignificantPValues remaps pValues so that every output looks significant
// at targetAlpha. An empty input returns an empty output. Inputs that are
// already significant are reported as a warning but remapped all the same;
// the advisory never changes the result.
func SignificantPValues(pValues []float64, targetAlpha float64, method PValueMethod, rng base.RandomGenerator) ([]float64, error) {
	if err := validatePValueArgs(pValues, targetAlpha, method); err != nil {
		return nil, errors.Trace(err)
	}
	result := make([]float64, len(pValues))
	if len(pValues) == 0 {
		return result, nil
	}
	if already := lo.CountBy(pValues, func(p float64) bool { return p < targetAlpha }); already > 0 {
		log.Logger().Warn("some p-values are already significant",
			zap.Int("count", already),
			zap.Float64("target_alpha", targetAlpha))
	}
	switch method {
	case PValueDivide:
		for i, p := range pValues {
			result[i] = math.Max(p/rng.Uniform64(divideFactorLow, divideFactorHigh), minPValue)
		}
	case PValueReplace:
		for i := range pValues {
			result[i] = rng.Uniform64(minPValue, targetAlpha-minPValue)
		}
	case PValueCheat:
		for i := range pValues {
			result[i] = minPValue
		}
	}
	return result, nil
}

func validatePValueArgs(pValues []float64, targetAlpha float64, method PValueMethod) error {
	var probe PValueMethod
	if err := probe.Set(method.String()); err != nil {
		return errors.Trace(err)
	}
	if math.IsNaN(targetAlpha) || targetAlpha <= 0 || targetAlpha > 1 {
		return errors.NotValidf("target alpha %v outside (0, 1]", targetAlpha)
	}
	if method == PValueReplace && targetAlpha <= 2*minPValue {
		return errors.NotValidf("target alpha %v too small for replacement interval", targetAlpha)
	}
	for i, p := range pValues {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return errors.NotValidf("p-value %v at index %d", p, i)
		}
	}
	return nil
}
