package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVehicleNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ka 01 ab 1234", "KA 01 AB 1234"},
		{"  ka 01  ab   1234 ", "KA 01 AB 1234"},
		{"KA01AB1234", "KA01AB1234"},
		{"mh\t12  cd 99", "MH 12 CD 99"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeVehicleNumber(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
