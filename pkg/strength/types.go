package strength

// Level is a categorical strength label derived from a score.
type Level string

const (
	Weak      Level = "weak"
	Medium    Level = "medium"
	Strong    Level = "strong"
	Excellent Level = "excellent"
)

// Title returns the display name of the level.
func (l Level) Title() string {
	switch l {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	case Excellent:
		return "Excellent"
	default:
		return "Unknown"
	}
}

// Analysis is the strength report for a single password.
// It is a value object; callers must not mutate the slices.
type Analysis struct {
	Score              int      `json:"score"`
	Strength           Level    `json:"strength"`
	Issues             []string `json:"issues"`
	Suggestions        []string `json:"suggestions"`
	EstimatedCrackTime string   `json:"estimated_crack_time"`
}

// Score thresholds. A score below a threshold falls into the lower level.
const (
	MinScore = 0
	MaxScore = 100

	mediumThreshold    = 30
	strongThreshold    = 60
	excellentThreshold = 80
)

// Crack time labels keyed by the same thresholds as Level.
const (
	CrackTimeWeak      = "less than 1 day"
	CrackTimeMedium    = "a few months"
	CrackTimeStrong    = "a few years"
	CrackTimeExcellent = "thousands of years"
)

// LevelForScore maps a score to its Level.
func LevelForScore(score int) Level {
	switch {
	case score < mediumThreshold:
		return Weak
	case score < strongThreshold:
		return Medium
	case score < excellentThreshold:
		return Strong
	default:
		return Excellent
	}
}

// CrackTimeForScore maps a score to its estimated crack time label.
func CrackTimeForScore(score int) string {
	switch LevelForScore(score) {
	case Weak:
		return CrackTimeWeak
	case Medium:
		return CrackTimeMedium
	case Strong:
		return CrackTimeStrong
	default:
		return CrackTimeExcellent
	}
}
