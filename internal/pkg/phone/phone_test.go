package phone

import "testing"

func TestIsValidMobile(t *testing.T) {
	tests := []struct {
		mobile string
		want   bool
	}{
		{"01012345678", true},
		{"01099999999", true},
		{"01112345678", false},
		{"0101234567", false},
		{"010123456789", false},
		{"01012 45678", false},
		{"+201012345678", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidMobile(tt.mobile); got != tt.want {
			t.Errorf("IsValidMobile(%q) = %v, want %v", tt.mobile, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		mobile string
		prefix string
		want   string
	}{
		{"01014283454", "2", "201014283454"},
		{"+2 010-1428-3454", "2", "201014283454"},
		{"201014283454", "2", "201014283454"},
		{"1014283454", "2", "21014283454"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.mobile, tt.prefix); got != tt.want {
			t.Errorf("Normalize(%q, %q) = %q, want %q", tt.mobile, tt.prefix, got, tt.want)
		}
	}
}
