package generator

// Character pools.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Special   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

var (
	basePool    = Lowercase + Uppercase + Digits
	specialPool = basePool + Special

	baseClasses    = []string{Lowercase, Uppercase, Digits}
	specialClasses = []string{Lowercase, Uppercase, Digits, Special}
)

// Pool returns every character that may appear in a generated password.
func Pool(includeSpecial bool) string {
	if includeSpecial {
		return specialPool
	}
	return basePool
}

// MinLength returns the shortest length for which every guaranteed class fits.
func MinLength(includeSpecial bool) int {
	return len(classes(includeSpecial))
}

func classes(includeSpecial bool) []string {
	if includeSpecial {
		return specialClasses
	}
	return baseClasses
}
