package phone

import (
	"regexp"
	"strings"
)

// mobileRegex matches the accepted patient mobile format: 010 followed
// by eight digits.
var mobileRegex = regexp.MustCompile(`^010\d{8}$`)

// IsValidMobile reports whether a mobile number is in the accepted
// booking format.
func IsValidMobile(mobile string) bool {
	return mobileRegex.MatchString(mobile)
}

// Normalize rewrites a local mobile number into the international form
// WhatsApp expects. Formatting characters are stripped, and the country
// prefix is prepended ahead of the full local number, leading zero
// included.
func Normalize(mobile, countryPrefix string) string {
	var digits strings.Builder
	for _, r := range mobile {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	number := digits.String()
	if strings.HasPrefix(number, "0") || !strings.HasPrefix(number, countryPrefix) {
		return countryPrefix + number
	}
	return number
}
