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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidConfig indicates a Config failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidMaxTermLength indicates MaxTermLength is below 1.
	ErrInvalidMaxTermLength = errors.New("max term length must be at least 1")

	// ErrInvalidMatchType indicates an unknown MatchType value.
	ErrInvalidMatchType = errors.New("invalid match type")

	// ErrEmptyTerm indicates a dictionary entry with an empty search term.
	ErrEmptyTerm = errors.New("search term cannot be empty")

	// ErrEmptyLabel indicates a dictionary entry with an empty label.
	ErrEmptyLabel = errors.New("label cannot be empty")

	// ErrNegativeLength indicates corrupt serialized data with a negative
	// length prefix.
	ErrNegativeLength = errors.New("negative length prefix")
)
