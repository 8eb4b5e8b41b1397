package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		wantError bool
	}{
		{
			name:      "Pretty format",
			format:    "pretty",
			wantError: false,
		},
		{
			name:      "CSV format",
			format:    "csv",
			wantError: false,
		},
		{
			name:      "Unsupported format",
			format:    "json",
			wantError: true,
		},
		{
			name:      "Empty format",
			format:    "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.wantError && err == nil {
				t.Errorf("ValidateOutputFormat(%q) expected error but got none", tt.format)
			}
			if !tt.wantError && err != nil {
				t.Errorf("ValidateOutputFormat(%q) error = %v", tt.format, err)
			}
		})
	}
}
