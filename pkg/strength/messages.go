package strength

// Issue texts.
const (
	IssueTooShort       = "Password is too short"
	IssueCommonSequence = "Contains common sequences"
	IssueRepeatedChars  = "Too many repeated characters"
)

// Suggestion texts.
const (
	SuggestMinLength         = "Use at least 8 characters"
	SuggestRecommendedLength = "12+ characters are recommended"
	SuggestLowercase         = "Add lowercase letters"
	SuggestUppercase         = "Add uppercase letters"
	SuggestDigits            = "Add digits"
	SuggestSpecial           = "Add special characters"
	SuggestAvoidPatterns     = "Avoid obvious patterns"
	SuggestDiversify         = "Use a wider variety of characters"
)
