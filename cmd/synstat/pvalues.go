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

var pvalueMethod = synth.PValueDivide

var pvaluesCommand = &cobra.Command{
	Use:   "pvalues [values...]",
	Short: "Remap p-values so that every output looks significant",
	Run: func(cmd *cobra.Command, args []string) {
		values, err := loadValues(cmd, args)
		if err != nil {
			log.Logger().Fatal("failed to load p-values", zap.Error(err))
		}
		alpha, _ := cmd.Flags().GetFloat64("alpha")
		seed, _ := cmd.Flags().GetInt64("seed")
		result, err := synth.SignificantPValues(values, alpha, pvalueMethod, base.NewRandomGenerator(seed))
		if err != nil {
			log.Logger().Fatal("failed to remap p-values", zap.Error(err))
		}
		for _, v := range result {
			fmt.Println(formatFloat(v))
		}
	},
}

func init() {
	pvaluesCommand.Flags().Var(&pvalueMethod, "method", "remapping method (divide, replace or cheat)")
	pvaluesCommand.Flags().Float64("alpha", synth.DefaultTargetAlpha, "target significance threshold")
	pvaluesCommand.Flags().Int64("seed", 0, "random seed")
	pvaluesCommand.Flags().String("input", "", "read p-values from file")
}
