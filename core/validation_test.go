package core

import (
	"errors"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "default config",
			cfg:     DefaultConfig(),
			wantErr: nil,
		},
		{
			name: "all expansions on",
			cfg: Config{
				ExpandAbbreviations: true,
				ExpandNGrams:        true,
				MaxTermLength:       10,
			},
			wantErr: nil,
		},
		{
			name:    "minimum window",
			cfg:     Config{MaxTermLength: 1},
			wantErr: nil,
		},
		{
			name:    "zero window",
			cfg:     Config{MaxTermLength: 0},
			wantErr: ErrInvalidMaxTermLength,
		},
		{
			name:    "negative window",
			cfg:     Config{MaxTermLength: -3},
			wantErr: ErrInvalidMaxTermLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.cfg)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateConfig() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateConfig() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ValidateConfig() error = %v, should wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   Entry
		wantErr error
	}{
		{
			name:    "valid entry",
			entry:   Entry{Term: "Sula bassana", Label: "L2"},
			wantErr: nil,
		},
		{
			name:    "empty term",
			entry:   Entry{Term: "", Label: "L1"},
			wantErr: ErrEmptyTerm,
		},
		{
			name:    "empty label",
			entry:   Entry{Term: "Sula", Label: ""},
			wantErr: ErrEmptyLabel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntry(tt.entry)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEntry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMatchType(t *testing.T) {
	for _, mt := range []MatchType{MatchTypeFull, MatchTypeAbbreviated, MatchTypeNGram} {
		if err := ValidateMatchType(mt); err != nil {
			t.Errorf("ValidateMatchType(%v) error = %v, want nil", mt, err)
		}
	}

	for _, mt := range []MatchType{0, 4, -1} {
		if err := ValidateMatchType(mt); !errors.Is(err, ErrInvalidMatchType) {
			t.Errorf("ValidateMatchType(%v) error = %v, want ErrInvalidMatchType", mt, err)
		}
	}
}

func TestConfig_Fingerprint(t *testing.T) {
	base := DefaultConfig()

	if base.Fingerprint() != base.Fingerprint() {
		t.Error("Fingerprint() is not stable for identical configs")
	}

	variants := []Config{
		{ExpandAbbreviations: true, MaxTermLength: 5},
		{ExpandNGrams: true, MaxTermLength: 5},
		{CaseSensitive: true, MaxTermLength: 5},
		{MaxTermLength: 6},
	}
	for i, v := range variants {
		if v.Fingerprint() == base.Fingerprint() {
			t.Errorf("variant %d has the same fingerprint as the default config", i)
		}
	}
}
