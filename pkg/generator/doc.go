// Package generator produces random passwords that are guaranteed to contain
// at least one character from each requested character class.
//
// Generation seeds one character from every guaranteed class (lowercase,
// uppercase, digit, and special when requested), fills the remaining
// positions from the combined pool, and finally applies a Fisher–Yates
// shuffle so the guaranteed characters do not sit at predictable positions.
//
// The default randomness source reads from crypto/rand. Tests and tools that
// need reproducible output can inject any math/rand/v2 Source with WithSource.
//
// # Usage
//
//	import "github.com/dmitrymomot/passguard/pkg/generator"
//
//	pwd := generator.Generate(16, true)
//
//	// Reproducible output
//	g := generator.New(generator.WithSource(rand.NewPCG(1, 2)))
//	pwd = g.Generate(12, false)
//
// # Preconditions
//
// Callers must request at least MinLength(includeSpecial) characters: 4 with
// special characters, 3 without. Shorter requests are not reported as errors;
// the shuffled guaranteed characters are truncated to the requested length and
// the class guarantee no longer holds. A non-positive length yields "".
package generator
