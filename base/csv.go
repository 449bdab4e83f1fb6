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
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// ReadFloats parses a sequence of numbers from r. Values may be separated by
// commas or newlines, so both a CSV column and a one-value-per-line file are
// accepted. Blank lines and lines starting with '#' are skipped.
func ReadFloats(r io.Reader) ([]float64, error) {
	values := make([]float64, 0)
	sc := bufio.NewScanner(r)
	lineCount := 0
	for sc.Scan() {
		lineCount++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range strings.Split(line, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.NotValidf("number %q at line %d", field, lineCount)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	return values, nil
}
