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
	"os"
	"strconv"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/synstat-io/synstat/base"
	"github.com/synstat-io/synstat/base/log"
	"github.com/synstat-io/synstat/cmd/version"
)

var rootCommand = &cobra.Command{
	Use:   "synstat",
	Short: "Synthesize statistics satisfying caller-specified target properties.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		log.SetLogger(cmd.Root().PersistentFlags(), debug)
	},
}

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Check the version of synstat",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(version.BuildInfo())
	},
}

func init() {
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	log.AddFlags(rootCommand.PersistentFlags())
	rootCommand.AddCommand(correlateCommand)
	rootCommand.AddCommand(pvaluesCommand)
	rootCommand.AddCommand(effectsCommand)
	rootCommand.AddCommand(versionCommand)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadValues gathers the input sequence for the remapping commands, either
// from the --input file or from command-line arguments.
func loadValues(cmd *cobra.Command, args []string) ([]float64, error) {
	if path, _ := cmd.Flags().GetString("input"); path != "" {
		if len(args) > 0 {
			return nil, errors.NotValidf("mixing --input with positional values")
		}
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Trace(err)
		}
		defer file.Close()
		return base.ReadFloats(file)
	}
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.NotValidf("number %q", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
