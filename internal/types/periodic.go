package types

// Period identifies the calendar granularity of a periodic note.
type Period string

const (
	PeriodDaily     Period = "daily"
	PeriodWeekly    Period = "weekly"
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodYearly    Period = "yearly"
)

// Periods lists every valid period, in ascending granularity.
var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly}

// Valid reports whether p names a known period.
func (p Period) Valid() bool {
	for _, known := range Periods {
		if p == known {
			return true
		}
	}
	return false
}

// PeriodicDate is an explicit calendar date for a periodic note. All three
// components are always set; an absent date is represented by a nil
// *PeriodicDate and leaves period resolution to the remote API.
type PeriodicDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}
