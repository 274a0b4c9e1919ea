package domain

import "testing"

func TestIsValidProductID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"64f1b2c3d4e5f60718293a4b", true},
		{"64F1B2C3D4E5F60718293A4B", true},
		{"zz-not-hex", false},
		{"64f1b2c3d4e5f60718293a4", false},   // 23 chars
		{"64f1b2c3d4e5f60718293a4bc", false}, // 25 chars
		{"64f1b2c3d4e5f60718293a4g", false},  // non-hex rune
		{"", false},
	}

	for _, tc := range cases {
		if got := IsValidProductID(tc.id); got != tc.want {
			t.Fatalf("IsValidProductID(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}
