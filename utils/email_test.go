package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"test1@EXAMPLE.COM", "test1@example.com"},
		{"Test2@Example.com", "Test2@example.com"},
		{"TEST3@EXAMPLE.COM", "TEST3@example.com"},
		{"test4@example.COM", "test4@example.com"},
		{"already@lower.case", "already@lower.case"},
		{"  padded@Example.com  ", "padded@example.com"},
		{"no-at-sign", "no-at-sign"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, NormalizeEmail(tc.input), "input %q", tc.input)
	}
}
