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
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestReadFloats(t *testing.T) {
	values, err := ReadFloats(strings.NewReader("0.12,0.89\n\n# comment\n0.5\n"))
	assert.NoError(t, err)
	assert.Equal(t, []float64{0.12, 0.89, 0.5}, values)

	values, err = ReadFloats(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, values)

	_, err = ReadFloats(strings.NewReader("0.1,abc\n"))
	assert.ErrorIs(t, err, errors.NotValid)
}
