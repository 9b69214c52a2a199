package utils

import "strings"

// NormalizeVehicleNumber collapses runs of whitespace to single spaces, trims,
// and uppercases, so "  ka 01  ab   1234 " stores as "KA 01 AB 1234".
func NormalizeVehicleNumber(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}

// NormalizeEmail lowercases and trims an email address for lookups.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
