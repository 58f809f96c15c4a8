package common

import "testing"

func TestValidateNotEmpty(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"value", false},
		{"  padded  ", false},
		{"", true},
		{"   ", true},
		{"\t\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := ValidateNotEmpty(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNotEmpty(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMarkerName(t *testing.T) {
	tests := []struct {
		name    string
		marker  string
		wantErr bool
	}{
		{"simple name", "base-layout", false},
		{"name with dots", "layout.v2", false},
		{"empty", "", true},
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"forward slash", "a/b", true},
		{"backslash", `a\b`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMarkerName(tt.marker)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMarkerName(%q) error = %v, wantErr %v", tt.marker, err, tt.wantErr)
			}
		})
	}
}

func TestValidateBool(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"true", false},
		{"false", false},
		{"1", false},
		{"0", false},
		{"yes", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := ValidateBool(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBool(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColorMode(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
	}{
		{"auto", false},
		{"always", false},
		{"never", false},
		{"AUTO", true},
		{"sometimes", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			err := ValidateColorMode(tt.mode)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColorMode(%q) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
			}
		})
	}
}
