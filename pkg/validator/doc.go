// Package validator checks request values with composable rules.
//
// A Rule pairs a check with the error reported when it fails. Apply runs
// every rule and returns ValidationErrors listing each failure by field:
//
//	err := validator.Apply(
//	    validator.Range("length", req.Length, generator.MinLength(req.IncludeSpecial), 128),
//	)
//
// The handler package turns ValidationErrors into a 422 response with
// per-field details.
package validator
