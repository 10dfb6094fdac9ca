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


// Package compile builds frozen tries from dictionary entries.
//
// Terms are tokenized and expanded into their matchable variants on a
// worker pool, then inserted by a single writer and frozen. Nothing
// observes a trie before Freeze returns, which is what lets the rest of
// the system read it without locks.
package compile
