// Package strength scores how resistant a password is to guessing using a
// fixed-weight heuristic.
//
// The score is built from four terms: a length bonus, a bonus per character
// class present (lowercase, uppercase, digit, special), a penalty for common
// sequences such as "123" or "qwerty", and a penalty for characters repeated
// three or more times in a row. The sum is clamped to [0, 100] and mapped to
// a Level and an estimated crack time label through fixed thresholds.
//
// # Usage
//
//	import "github.com/dmitrymomot/passguard/pkg/strength"
//
//	a := strength.Analyze("Tr0ub4dor&3")
//	fmt.Println(a.Score, a.Strength, a.EstimatedCrackTime) // 75 strong a few years
//	for _, s := range a.Suggestions {
//		fmt.Println("-", s)
//	}
//
// # Guarantees
//
// Analyze is total and deterministic: every string, including the empty one,
// produces an Analysis, and the same input always produces the same output.
// Strength and EstimatedCrackTime are derived from Score only.
//
// The weights and labels are illustrative. They are not derived from an
// entropy model and must not be read as a real cracking-time estimate.
package strength
