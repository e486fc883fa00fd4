package schedule

import (
	"fmt"
	"time"
)

// DayLayout is the canonical key layout. Keys compare lexically in the same
// order as the dates they name.
const DayLayout = "2006-01-02"

// Day identifies one selectable calendar day by its YYYY-MM-DD key.
type Day string

// DayOf normalizes t to its calendar day key in t's location.
func DayOf(t time.Time) Day {
	return Day(fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day()))
}

// ParseDay validates s as a day key.
func ParseDay(s string) (Day, error) {
	parsed, err := time.Parse(DayLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return DayOf(parsed), nil
}

// Time returns midnight UTC of the day. ok is false when the key is malformed.
func (d Day) Time() (time.Time, bool) {
	parsed, err := time.Parse(DayLayout, string(d))
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// DayOfMonth renders the two-digit day, or the raw key when it does not parse.
func (d Day) DayOfMonth() string {
	t, ok := d.Time()
	if !ok {
		return string(d)
	}
	return t.Format("02")
}

// Weekday renders the short weekday name in lang, or the raw key when it does
// not parse.
func (d Day) Weekday(lang Language) string {
	t, ok := d.Time()
	if !ok {
		return string(d)
	}
	if names, ok := weekdayNames[lang]; ok {
		return names[t.Weekday()]
	}
	return t.Format("Mon")
}

// AddDays shifts the day by n calendar days. Malformed keys are returned as is.
func (d Day) AddDays(n int) Day {
	t, ok := d.Time()
	if !ok {
		return d
	}
	return DayOf(t.AddDate(0, 0, n))
}

func (d Day) String() string {
	return string(d)
}

var weekdayNames = map[Language][7]string{
	LanguageEnglish: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	LanguageSpanish: {"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
}

// GenerateDays lists every day of the month, first to last. Months outside
// 1..12 and years outside 1..9999 yield an empty slice.
func GenerateDays(year, month int) []Day {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil
	}

	first := time.Date(year, time.Month(month), 1, 12, 0, 0, 0, time.UTC)
	count := first.AddDate(0, 1, -1).Day()

	days := make([]Day, 0, count)
	for current := first; current.Month() == first.Month(); current = current.AddDate(0, 0, 1) {
		days = append(days, DayOf(current))
	}
	return days
}

// MonthOf returns the year and month a day belongs to. ok is false when the
// key is malformed.
func MonthOf(d Day) (year, month int, ok bool) {
	t, ok := d.Time()
	if !ok {
		return 0, 0, false
	}
	return t.Year(), int(t.Month()), true
}

// ShiftMonth moves (year, month) by delta months.
func ShiftMonth(year, month, delta int) (int, int) {
	t := time.Date(year, time.Month(month), 1, 12, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Year(), int(t.Month())
}
