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


// Package token segments text into the token sequences the gazetteer
// operates on.
//
// The same Tokenizer instance is used for dictionary terms and for
// documents, which guarantees that both sides of a lookup were produced
// at the same granularity and with the same normalization. The default
// implementation splits on whitespace and a fixed punctuation set and
// reports rune offsets back into the original text.
package token
