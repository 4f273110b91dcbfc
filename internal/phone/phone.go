// Package phone canonicalizes raw phone strings into the representations
// stored by the rest of the system.
package phone

import (
	"fmt"
	"strings"
)

// Digits strips everything but 0-9 from raw.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Variants returns the ordered, deduplicated list of candidate stored
// representations for a raw inbound number. For US/Canada numbers the stored
// format may or may not carry the leading country-code digit or a "+", so
// all four combinations are produced:
//
//	"+1 (877) 780-4236" -> ["18777804236", "8777804236", "+18777804236", "+8777804236"]
//	"8777804236"        -> ["8777804236", "18777804236", "+8777804236", "+18777804236"]
//
// Callers probe the store with each candidate in order.
func Variants(raw string) []string {
	digits := Digits(raw)

	variants := []string{digits}
	if len(digits) == 11 && strings.HasPrefix(digits, "1") {
		variants = append(variants, digits[1:])
	}
	if len(digits) == 10 {
		variants = append(variants, "1"+digits)
	}
	for _, v := range variants {
		variants = append(variants, "+"+v)
	}

	seen := make(map[string]struct{}, len(variants))
	out := variants[:0]
	for _, v := range variants {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// FormatForSMS converts a stored phone string to E.164 for outbound
// delivery. 10-digit numbers are assumed US/Canada. Longer international
// numbers keep their country code ahead of the last 10 digits.
func FormatForSMS(raw string) (string, error) {
	digits := Digits(raw)
	switch {
	case len(digits) == 10:
		return "+1" + digits, nil
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return "+" + digits, nil
	case len(digits) >= 11:
		return "+" + digits, nil
	default:
		return "", fmt.Errorf("invalid phone number format: %q", raw)
	}
}
