package datemath

import "time"

// Rule identifies which pattern produced a date.
type Rule int

const (
	RuleNone Rule = iota
	RuleTomorrow
	RuleToday
	RuleWeekday
	RuleExplicit
)

func (r Rule) String() string {
	switch r {
	case RuleTomorrow:
		return "tomorrow"
	case RuleToday:
		return "today"
	case RuleWeekday:
		return "weekday"
	case RuleExplicit:
		return "explicit"
	default:
		return "none"
	}
}

// Result is the outcome of ParseDateFromText.
// Title may be empty when the whole input was a date phrase; callers fall back to the raw text.
type Result struct {
	Title string
	Date  time.Time // start of day in the parser's location; zero when Rule == RuleNone
	Rule  Rule
}

// HasDate reports whether a date phrase was recognized.
func (r Result) HasDate() bool {
	return r.Rule != RuleNone
}
