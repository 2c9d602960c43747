package errors

import (
	"testing"
)

func TestValidateChoice(t *testing.T) {
	choices := []string{"easy", "dot"}
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"first", "easy", false},
		{"second", "dot", false},
		{"empty", "", true},
		{"case sensitive", "DOT", true},
		{"unknown", "svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChoice("format", tt.input, choices)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateChoice(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("ValidateChoice(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidFormat)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		format  string
		wantErr bool
	}{
		{"matching extension", "graph.svg", "svg", false},
		{"upper case extension", "graph.PNG", "png", false},
		{"no extension", "graph", "svg", false},
		{"nested", "out/graph.svg", "svg", false},

		{"empty", "", "svg", true},
		{"mismatched extension", "graph.png", "svg", true},
		{"control char", "gra\x01ph.svg", "svg", true},
		{"newline", "graph\n.svg", "svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path, tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q, %q) error = %v, wantErr %v", tt.path, tt.format, err, tt.wantErr)
			}
		})
	}
}
