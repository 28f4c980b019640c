package importer

import (
	"strconv"
	"strings"
	"time"
)

// serialEpoch is the spreadsheet serial-date epoch; serial 1 maps to the epoch
// day itself, hence the -1 offset on conversion.
var serialEpoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

const (
	minYear = 1800
	maxYear = 2200
)

type ParsedDate struct {
	Value time.Time
	Valid bool
	// Ambiguous is set when both day/month readings of a textual date are
	// plausible and disagree; the month-first reading wins for compatibility
	// with files produced by the previous console.
	Ambiguous bool
}

// ParseFlexibleDate interprets a spreadsheet cell as a calendar date.
// Attempts, in order: excel serial number, ISO 8601, three-part textual date
// (month/day/year, then day/month/year, then year/month/day), time.Time
// passthrough. Returns an invalid ParsedDate when nothing matches.
func ParseFlexibleDate(value any) ParsedDate {
	switch v := value.(type) {
	case nil:
		return ParsedDate{}
	case time.Time:
		if v.IsZero() {
			return ParsedDate{}
		}
		return ParsedDate{Value: dateOnly(v), Valid: true}
	case float64:
		return fromSerial(v)
	case int:
		return fromSerial(float64(v))
	case int64:
		return fromSerial(float64(v))
	case string:
		return parseDateString(v)
	default:
		return ParsedDate{}
	}
}

func parseDateString(s string) ParsedDate {
	s = strings.TrimSpace(s)
	if s == "" {
		return ParsedDate{}
	}

	// Numeric cells surface as strings after spreadsheet parsing.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return fromSerial(serial)
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return ParsedDate{Value: dateOnly(t), Valid: true}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return ParsedDate{Value: dateOnly(t), Valid: true}
	}

	parts := splitDateParts(s)
	if len(parts) != 3 {
		return ParsedDate{}
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return ParsedDate{}
		}
		nums[i] = n
	}

	mdy, mdyOK := calendarDate(nums[2], nums[0], nums[1])
	dmy, dmyOK := calendarDate(nums[2], nums[1], nums[0])
	ymd, ymdOK := calendarDate(nums[0], nums[1], nums[2])

	switch {
	case mdyOK:
		// Flag rows like 03/04/2020 where the day/month order genuinely
		// cannot be decided from the data.
		ambiguous := dmyOK && !mdy.Equal(dmy)
		return ParsedDate{Value: mdy, Valid: true, Ambiguous: ambiguous}
	case dmyOK:
		return ParsedDate{Value: dmy, Valid: true}
	case ymdOK:
		return ParsedDate{Value: ymd, Valid: true}
	default:
		return ParsedDate{}
	}
}

func splitDateParts(s string) []string {
	for _, sep := range []string{"/", "-", "."} {
		if strings.Count(s, sep) == 2 {
			return strings.Split(s, sep)
		}
	}
	return nil
}

func fromSerial(serial float64) ParsedDate {
	if serial < 1 {
		return ParsedDate{}
	}
	t := serialEpoch.AddDate(0, 0, int(serial)-1)
	if t.Year() > maxYear {
		return ParsedDate{}
	}
	return ParsedDate{Value: t, Valid: true}
}

// calendarDate builds a date and rejects values that time.Date would silently
// normalize (e.g. month 13 or day 32).
func calendarDate(year, month, day int) (time.Time, bool) {
	if year < 100 {
		year += 2000
	}
	if year < minYear || year > maxYear || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	y, m, d := u.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a parsed date in the canonical yyyy-MM-dd form used for
// date-of-birth comparisons.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
