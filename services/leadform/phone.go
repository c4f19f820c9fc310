package leadform

import "strings"

// PhoneDigits is the number of digits a complete US phone number carries
const PhoneDigits = 10

// FormatPhone strips everything but digits, keeps at most ten of them and
// re-applies the "(DDD) DDD-DDDD" mask as far as the digits reach.
// Formatting an already masked value returns it unchanged.
func FormatPhone(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == PhoneDigits {
				break
			}
		}
	}
	d := digits.String()

	var out strings.Builder
	if len(d) > 0 {
		out.WriteString("(")
		out.WriteString(d[:min(len(d), 3)])
	}
	if len(d) >= 4 {
		out.WriteString(") ")
		out.WriteString(d[3:min(len(d), 6)])
	}
	if len(d) >= 7 {
		out.WriteString("-")
		out.WriteString(d[6:])
	}
	return out.String()
}
