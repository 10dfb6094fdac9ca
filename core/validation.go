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

import "fmt"

// ValidateConfig validates a Config according to domain rules.
//
// Validation rules:
//   - MaxTermLength must be at least 1
//
// The boolean expansion flags have no invalid states.
func ValidateConfig(cfg Config) error {
	if cfg.MaxTermLength < 1 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidConfig, ErrInvalidMaxTermLength, cfg.MaxTermLength)
	}
	return nil
}

// ValidateEntry validates a dictionary entry.
//
// Validation rules:
//   - Term must not be empty
//   - Label must not be empty
func ValidateEntry(entry Entry) error {
	if entry.Term == "" {
		return ErrEmptyTerm
	}
	if entry.Label == "" {
		return ErrEmptyLabel
	}
	return nil
}

// ValidateMatchType validates that a MatchType has one of the three
// defined values.
func ValidateMatchType(t MatchType) error {
	switch t {
	case MatchTypeFull, MatchTypeAbbreviated, MatchTypeNGram:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidMatchType, t)
	}
}
