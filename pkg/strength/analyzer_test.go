package strength_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passguard/pkg/strength"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	t.Run("empty password", func(t *testing.T) {
		t.Parallel()
		a := strength.Analyze("")

		assert.Equal(t, 0, a.Score)
		assert.Equal(t, strength.Weak, a.Strength)
		assert.Equal(t, strength.CrackTimeWeak, a.EstimatedCrackTime)
		assert.Equal(t, []string{strength.IssueTooShort}, a.Issues)
		assert.Contains(t, a.Issues[0], "too short")
		assert.Equal(t, []string{
			strength.SuggestMinLength,
			strength.SuggestLowercase,
			strength.SuggestUppercase,
			strength.SuggestDigits,
			strength.SuggestSpecial,
		}, a.Suggestions)
	})

	t.Run("all classes with medium length", func(t *testing.T) {
		t.Parallel()
		a := strength.Analyze("Tr0ub4dor&3")

		assert.Equal(t, 75, a.Score)
		assert.Equal(t, strength.Strong, a.Strength)
		assert.Equal(t, strength.CrackTimeStrong, a.EstimatedCrackTime)
		assert.Empty(t, a.Issues)
		assert.Equal(t, []string{strength.SuggestRecommendedLength}, a.Suggestions)
	})

	t.Run("repeated lowercase", func(t *testing.T) {
		t.Parallel()
		a := strength.Analyze("aaaaaaaa")

		assert.Equal(t, 20, a.Score)
		assert.Equal(t, strength.Weak, a.Strength)
		assert.Equal(t, []string{strength.IssueRepeatedChars}, a.Issues)
		assert.Contains(t, a.Suggestions, strength.SuggestDiversify)
	})

	t.Run("suggestions without issues", func(t *testing.T) {
		t.Parallel()
		a := strength.Analyze("lkjhgfdsaz")

		assert.Equal(t, 30, a.Score)
		assert.Equal(t, strength.Medium, a.Strength)
		assert.Empty(t, a.Issues)
		assert.Equal(t, []string{
			strength.SuggestRecommendedLength,
			strength.SuggestUppercase,
			strength.SuggestDigits,
			strength.SuggestSpecial,
		}, a.Suggestions)
	})

	t.Run("long password with every class", func(t *testing.T) {
		t.Parallel()
		a := strength.Analyze("Xk9#mPq2$vLw")

		assert.Equal(t, 85, a.Score)
		assert.Equal(t, strength.Excellent, a.Strength)
		assert.Equal(t, strength.CrackTimeExcellent, a.EstimatedCrackTime)
		assert.Empty(t, a.Issues)
		assert.Empty(t, a.Suggestions)
	})

	t.Run("common sequence penalty", func(t *testing.T) {
		t.Parallel()
		a := strength.Analyze("Password123!")

		assert.Equal(t, 65, a.Score)
		assert.Equal(t, strength.Strong, a.Strength)
		assert.Equal(t, []string{strength.IssueCommonSequence}, a.Issues)
		assert.Equal(t, []string{strength.SuggestAvoidPatterns}, a.Suggestions)
	})

	t.Run("both penalties clamp at zero", func(t *testing.T) {
		t.Parallel()
		a := strength.Analyze("000")

		assert.Equal(t, 0, a.Score)
		assert.Equal(t, []string{
			strength.IssueTooShort,
			strength.IssueCommonSequence,
			strength.IssueRepeatedChars,
		}, a.Issues)
	})

	t.Run("length counts characters not bytes", func(t *testing.T) {
		t.Parallel()
		a := strength.Analyze("пароль12")

		assert.Equal(t, 30, a.Score)
		assert.NotContains(t, a.Issues, strength.IssueTooShort)
		assert.Contains(t, a.Suggestions, strength.SuggestLowercase, "cyrillic letters are not counted as lowercase")
	})

	t.Run("slices are never nil", func(t *testing.T) {
		t.Parallel()
		a := strength.Analyze("Xk9#mPq2$vLw")
		assert.NotNil(t, a.Issues)
		assert.NotNil(t, a.Suggestions)
	})
}

func TestAnalyze_Deterministic(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"", "hunter2", "Tr0ub4dor&3", "correct horse battery staple"} {
		assert.Equal(t, strength.Analyze(p), strength.Analyze(p), "input %q", p)
	}
}

func TestAnalyze_ScoreInvariants(t *testing.T) {
	t.Parallel()

	const alphabet = "aA0!@#bcXYZ123qwertyпароль \n\t€"
	runes := []rune(alphabet)
	rng := rand.New(rand.NewPCG(7, 11))

	for range 2000 {
		n := rng.IntN(40)
		buf := make([]rune, n)
		for i := range buf {
			buf[i] = runes[rng.IntN(len(runes))]
		}
		a := strength.Analyze(string(buf))

		require.GreaterOrEqual(t, a.Score, strength.MinScore)
		require.LessOrEqual(t, a.Score, strength.MaxScore)
		require.Equal(t, strength.LevelForScore(a.Score), a.Strength)
		require.Equal(t, strength.CrackTimeForScore(a.Score), a.EstimatedCrackTime)
	}
}

func TestLevelForScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score     int
		level     strength.Level
		crackTime string
	}{
		{0, strength.Weak, strength.CrackTimeWeak},
		{29, strength.Weak, strength.CrackTimeWeak},
		{30, strength.Medium, strength.CrackTimeMedium},
		{59, strength.Medium, strength.CrackTimeMedium},
		{60, strength.Strong, strength.CrackTimeStrong},
		{79, strength.Strong, strength.CrackTimeStrong},
		{80, strength.Excellent, strength.CrackTimeExcellent},
		{100, strength.Excellent, strength.CrackTimeExcellent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, strength.LevelForScore(tt.score), "score %d", tt.score)
		assert.Equal(t, tt.crackTime, strength.CrackTimeForScore(tt.score), "score %d", tt.score)
	}
}

func TestLevel_Title(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Weak", strength.Weak.Title())
	assert.Equal(t, "Medium", strength.Medium.Title())
	assert.Equal(t, "Strong", strength.Strong.Title())
	assert.Equal(t, "Excellent", strength.Excellent.Title())
	assert.Equal(t, "Unknown", strength.Level("other").Title())
}

func TestHasCommonSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		password string
		expected bool
	}{
		{"xx123xx", true},
		{"ABCdef", true},
		{"myQWERTYkeys", true},
		{"PassWord", true},
		{"a000b", true},
		{"a00b0", false},
		{"acb132", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, strength.HasCommonSequence(tt.password), "input %q", tt.password)
	}
}

func TestHasRepeatedRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		password string
		expected bool
	}{
		{"aaa", true},
		{"xaaay", true},
		{"ааа", true},
		{"aa", false},
		{"aabbaa", false},
		{"a\n\n\nb", false},
		{"\r\r\r", false},
		{"   ", true},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, strength.HasRepeatedRun(tt.password), "input %q", tt.password)
	}
}
