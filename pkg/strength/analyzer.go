package strength

import (
	"strings"
	"unicode/utf8"
)

const (
	minLength         = 8
	recommendedLength = 12

	shortLengthBonus = 15
	longLengthBonus  = 25
	classBonus       = 15

	commonSequencePenalty = 20
	repetitionPenalty     = 10

	// maxRun is the number of identical consecutive characters that triggers the repetition penalty.
	maxRun = 3
)

// SpecialChars is the set of characters counted as the special class.
const SpecialChars = `!@#$%^&*(),.?":{}|<>`

// commonSequences are matched case-insensitively anywhere in the password.
var commonSequences = []string{"123", "abc", "qwerty", "password", "000"}

// Analyze scores a password and returns its strength report.
func Analyze(password string) Analysis {
	var (
		score       int
		issues      = make([]string, 0, 3)
		suggestions = make([]string, 0, 6)
	)

	switch n := utf8.RuneCountInString(password); {
	case n < minLength:
		issues = append(issues, IssueTooShort)
		suggestions = append(suggestions, SuggestMinLength)
	case n >= recommendedLength:
		score += longLengthBonus
	default:
		score += shortLengthBonus
		suggestions = append(suggestions, SuggestRecommendedLength)
	}

	cs := classesOf(password)
	score += cs.count() * classBonus
	if !cs.lower {
		suggestions = append(suggestions, SuggestLowercase)
	}
	if !cs.upper {
		suggestions = append(suggestions, SuggestUppercase)
	}
	if !cs.digit {
		suggestions = append(suggestions, SuggestDigits)
	}
	if !cs.special {
		suggestions = append(suggestions, SuggestSpecial)
	}

	if HasCommonSequence(password) {
		issues = append(issues, IssueCommonSequence)
		suggestions = append(suggestions, SuggestAvoidPatterns)
		score -= commonSequencePenalty
	}

	if HasRepeatedRun(password) {
		issues = append(issues, IssueRepeatedChars)
		suggestions = append(suggestions, SuggestDiversify)
		score -= repetitionPenalty
	}

	score = max(MinScore, min(MaxScore, score))

	return Analysis{
		Score:              score,
		Strength:           LevelForScore(score),
		Issues:             issues,
		Suggestions:        suggestions,
		EstimatedCrackTime: CrackTimeForScore(score),
	}
}

// HasCommonSequence reports whether the password contains a well-known
// sequence such as "123" or "qwerty", ignoring case.
func HasCommonSequence(password string) bool {
	lower := strings.ToLower(password)
	for _, seq := range commonSequences {
		if strings.Contains(lower, seq) {
			return true
		}
	}
	return false
}

// HasRepeatedRun reports whether any character occurs three or more times in a row.
// Line terminators never form a run.
func HasRepeatedRun(password string) bool {
	var (
		prev rune
		run  int
	)
	for _, r := range password {
		if isLineTerminator(r) {
			run = 0
			continue
		}
		if run > 0 && r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run >= maxRun {
			return true
		}
	}
	return false
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

type classSet struct {
	lower, upper, digit, special bool
}

func (c classSet) count() int {
	n := 0
	for _, ok := range [...]bool{c.lower, c.upper, c.digit, c.special} {
		if ok {
			n++
		}
	}
	return n
}

// classesOf detects ASCII letters and digits only; other letters count towards no class.
func classesOf(password string) classSet {
	var c classSet
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digit = true
		case strings.ContainsRune(SpecialChars, r):
			c.special = true
		}
	}
	return c
}
