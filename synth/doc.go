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

/*

Package synth synthesizes statistics with caller-specified target
properties instead of deriving them from real observations.

The synthesizers include:

* Correlated pair generation with prescribed Pearson correlation

* Significant p-value remapping

* Large effect-size remapping

All functions are pure given an injected random source.

*/
package synth
