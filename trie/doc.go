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


// Package trie implements the token-level search structure of the
// gazetteer.
//
// Construction and querying are two distinct phases on two distinct
// types: a Builder accumulates insertions and is then frozen into a
// Trie, which is immutable and safe to share across any number of
// concurrent matching calls. Entries sharing a token prefix share nodes;
// a node reached by several insertions owns all of their annotations.
package trie
