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

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/synstat-io/synstat/base"
	"github.com/synstat-io/synstat/base/log"
	"github.com/synstat-io/synstat/synth"
)

var effectSizeMethod = synth.EffectSizeMultiply

var effectsCommand = &cobra.Command{
	Use:   "effects [values...]",
	Short: "Remap effect sizes so that every output looks large",
	Run: func(cmd *cobra.Command, args []string) {
		values, err := loadValues(cmd, args)
		if err != nil {
			log.Logger().Fatal("failed to load effect sizes", zap.Error(err))
		}
		target, _ := cmd.Flags().GetFloat64("target")
		seed, _ := cmd.Flags().GetInt64("seed")
		result, err := synth.LargeEffectSizes(values, target, effectSizeMethod, base.NewRandomGenerator(seed))
		if err != nil {
			log.Logger().Fatal("failed to remap effect sizes", zap.Error(err))
		}
		for _, v := range result {
			fmt.Println(formatFloat(v))
		}
	},
}

func init() {
	effectsCommand.Flags().Var(&effectSizeMethod, "method", "remapping method (multiply, replace or cohen)")
	effectsCommand.Flags().Float64("target", synth.DefaultTargetSize, "target effect size")
	effectsCommand.Flags().Int64("seed", 0, "random seed")
	effectsCommand.Flags().String("input", "", "read effect sizes from file")
}
