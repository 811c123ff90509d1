package service

import "strings"

const maxInputLength = 1000

// SanitizeInput strips angle brackets, trims whitespace and caps the length
func SanitizeInput(s string) string {
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	s = strings.TrimSpace(s)

	runes := []rune(s)
	if len(runes) > maxInputLength {
		s = string(runes[:maxInputLength])
	}
	return s
}
