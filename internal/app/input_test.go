package app

import (
	"errors"
	"testing"
)

func TestReadMenuChoice(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		min     int
		max     int
		want    int
		wantErr error
	}{
		{"Lower bound", "1", 1, 7, 1, nil},
		{"Upper bound", "7", 1, 7, 7, nil},
		{"Middle with whitespace", " 4 ", 1, 7, 4, nil},
		{"Non-numeric", "abc", 1, 7, 0, ErrNotANumber},
		{"Empty", "", 1, 7, 0, ErrNotANumber},
		{"Below min", "0", 1, 7, 0, ErrOutOfRange},
		{"Above max", "8", 1, 7, 0, ErrOutOfRange},
		{"Negative", "-1", 1, 7, 0, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadMenuChoice(tt.raw, tt.min, tt.max)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ReadMenuChoice(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadMenuChoice(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ReadMenuChoice(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
