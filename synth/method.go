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
	"github.com/juju/errors"
)

// PValueMethod selects how SignificantPValues remaps its input. The zero
// value is not usable; unknown tags are rejected when the method is set.
type PValueMethod string

const (
	// PValueDivide divides each p-value by a uniform factor in [3, 10).
	PValueDivide PValueMethod = "divide"
	// PValueReplace redraws each p-value uniformly below the target alpha.
	PValueReplace PValueMethod = "replace"
	// PValueCheat sets every p-value to the floor constant.
	PValueCheat PValueMethod = "cheat"
)

func (m PValueMethod) String() string {
	return string(m)
}

// Set implements pflag.Value.
func (m *PValueMethod) Set(v string) error {
	switch PValueMethod(v) {
	case PValueDivide, PValueReplace, PValueCheat:
		*m = PValueMethod(v)
		return nil
	default:
		return errors.NotValidf("p-value method %q", v)
	}
}

// Type implements pflag.Value.
func (m PValueMethod) Type() string {
	return "method"
}

// EffectSizeMethod selects how LargeEffectSizes remaps its input.
type EffectSizeMethod string

const (
	// EffectSizeMultiply scales each magnitude by a uniform factor in [4, 8),
	// capped at the maximum effect size.
	EffectSizeMultiply EffectSizeMethod = "multiply"
	// EffectSizeReplace redraws each magnitude uniformly in [target, 1.5).
	EffectSizeReplace EffectSizeMethod = "replace"
	// EffectSizeCohen samples each magnitude from Cohen's benchmark values
	// at or above the target.
	EffectSizeCohen EffectSizeMethod = "cohen"
)

func (m EffectSizeMethod) String() string {
	return string(m)
}

// Set implements pflag.Value.
func (m *EffectSizeMethod) Set(v string) error {
	switch EffectSizeMethod(v) {
	case EffectSizeMultiply, EffectSizeReplace, EffectSizeCohen:
		*m = EffectSizeMethod(v)
		return nil
	default:
		return errors.NotValidf("effect-size method %q", v)
	}
}

// Type implements pflag.Value.
func (m EffectSizeMethod) Type() string {
	return "method"
}
