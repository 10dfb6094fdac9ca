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


// Package match scans documents against a compiled gazetteer trie.
//
// The Matcher walks the document's token sequence once. At every start
// index not blocked by the filter set it descends the trie as deep as
// the document and the configured term length allow, and reports the
// deepest terminal reached (longest-match policy) with all annotations
// tied to it. The scan reads only immutable shared state, so any number
// of documents can be tagged concurrently.
package match
