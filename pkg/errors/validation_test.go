package errors

import (
	"strings"
	"testing"
)

func TestValidateSectionName(t *testing.T) {
	tests := []struct {
		name     string
		section  string
		wantCode Code
	}{
		{name: "Valid", section: "featured items"},
		{name: "Empty", section: "", wantCode: ErrCodeInvalidSection},
		{name: "TooLong", section: strings.Repeat("x", 129), wantCode: ErrCodeInvalidSection},
		{name: "ControlCharacters", section: "bad\x00name", wantCode: ErrCodeInvalidSection},
		{name: "Unicode", section: "résultats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSectionName(tt.section)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestValidateModeName(t *testing.T) {
	for _, valid := range []string{"fixed", "automatic", "aspect", "Fixed", "ASPECT"} {
		if err := ValidateModeName(valid); err != nil {
			t.Errorf("ValidateModeName(%q) = %v, want nil", valid, err)
		}
	}
	for _, invalid := range []string{"", "auto", "ratio", "fixed "} {
		if err := ValidateModeName(invalid); !Is(err, ErrCodeInvalidMode) {
			t.Errorf("ValidateModeName(%q) = %v, want INVALID_MODE", invalid, err)
		}
	}
}

func TestValidateColumns(t *testing.T) {
	if err := ValidateColumns(1); err != nil {
		t.Errorf("ValidateColumns(1) = %v, want nil", err)
	}
	if err := ValidateColumns(12); err != nil {
		t.Errorf("ValidateColumns(12) = %v, want nil", err)
	}
	for _, invalid := range []int{0, -3} {
		if err := ValidateColumns(invalid); !Is(err, ErrCodeInvalidColumns) {
			t.Errorf("ValidateColumns(%d) = %v, want INVALID_COLUMNS", invalid, err)
		}
	}
}

func TestValidateModePayloads(t *testing.T) {
	if err := ValidateRatio(0.5); err != nil {
		t.Errorf("ValidateRatio(0.5) = %v, want nil", err)
	}
	if err := ValidateRatio(0); !Is(err, ErrCodeInvalidMode) {
		t.Errorf("ValidateRatio(0) = %v, want INVALID_MODE", err)
	}
	if err := ValidateFixedHeight(0); err != nil {
		t.Errorf("ValidateFixedHeight(0) = %v, want nil", err)
	}
	if err := ValidateFixedHeight(-1); !Is(err, ErrCodeInvalidMode) {
		t.Errorf("ValidateFixedHeight(-1) = %v, want INVALID_MODE", err)
	}
}

func TestValidateMetrics(t *testing.T) {
	if err := ValidateMetrics(1, 2, 3, 4, 1, 2); err != nil {
		t.Errorf("valid metrics rejected: %v", err)
	}
	if err := ValidateMetrics(0, -1, 0, 0, 0, 0); !Is(err, ErrCodeInvalidMetrics) {
		t.Errorf("negative inset accepted: %v", err)
	}
	if err := ValidateMetrics(0, 0, 0, 0, -1, 0); !Is(err, ErrCodeInvalidMetrics) {
		t.Errorf("negative line spacing accepted: %v", err)
	}
	if err := ValidateMetrics(0, 0, 0, 0, 0, -1); !Is(err, ErrCodeInvalidMetrics) {
		t.Errorf("negative interitem spacing accepted: %v", err)
	}
}
