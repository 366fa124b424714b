// Package suggestion builds a fixed, labeled set of candidate passwords,
// each paired with its own strength analysis.
//
// Build returns four suggestions in a stable order (Standard, Enhanced,
// Simple, Maximum). Every suggestion is generated independently and analyzed
// from its own password, so a caller can render the entries directly.
//
//	for _, s := range suggestion.Build() {
//		fmt.Printf("%-9s %s %d/100\n", s.Type, s.Password, s.Analysis.Score)
//	}
package suggestion
