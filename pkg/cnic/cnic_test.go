package cnic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"12345-1234567-1", true},
		{"00000-0000000-0", true},
		{"12345-1234567-12", false},
		{"1234-1234567-1", false},
		{"12345-123456-1", false},
		{"1234512345671", false},
		{"12345-1234567-a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValid(tt.input))
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare digits", "1234512345671", "12345-1234567-1"},
		{"already formatted", "12345-1234567-1", "12345-1234567-1"},
		{"strips non-digits", "12345 1234567/1", "12345-1234567-1"},
		{"truncates extra digits", "12345123456712345", "12345-1234567-1"},
		{"partial input keeps partial groups", "1234512", "12345-12"},
		{"short input stays as is", "123", "123"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input))
		})
	}
}
