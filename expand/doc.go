// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package expand derives the matchable variants of a dictionary term.
//
// A term always matches its own token sequence (Full). Optionally it
// also matches an initial-letter abbreviation of all tokens but the last
// (Abbreviated) and every contiguous multi-token sub-sequence (NGram).
// Each variant carries the classification the matcher later reports.
package expand
