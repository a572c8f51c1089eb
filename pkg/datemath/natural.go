package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const monthPattern = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?`

const rangeSep = `\s*(?:-|–|to|until|through|till)\s*`

var (
	isoDateRe = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)

	numericDateRe = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})(?:[/-](\d{4}|\d{2}))?\b`)

	dayMonthRe = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s*(?:of\s+)?` + monthPattern + `(?:\s*,?\s*(\d{4}))?\b`)
	monthDayRe = regexp.MustCompile(`\b` + monthPattern + `\s+(\d{1,2})(?:st|nd|rd|th)?\b(?:\s*,?\s*(\d{4})\b)?`)

	relativeRe = regexp.MustCompile(`\b(today|tomorrow|yesterday|in \d+ (?:days?|weeks?|months?)|next (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday))\b`)

	isoRangeRe      = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})` + rangeSep + `(\d{4}-\d{2}-\d{2})\b`)
	dayRangeRe      = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?` + rangeSep + `(\d{1,2})(?:st|nd|rd|th)?\s*(?:of\s+)?` + monthPattern + `(?:\s*,?\s*(\d{4}))?\b`)
	monthDayRangeRe = regexp.MustCompile(`\b` + monthPattern + `\s+(\d{1,2})(?:st|nd|rd|th)?` + rangeSep + `(\d{1,2})(?:st|nd|rd|th)?\b(?:\s*,?\s*(\d{4})\b)?`)

	// Ranges naming a month on both ends: "28 jan to 3 feb", "jan 28 - feb 3".
	dayMonthSpanRe = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s*(?:of\s+)?` + monthPattern + `(?:\s*,?\s*(\d{4}))?` +
		rangeSep + `(\d{1,2})(?:st|nd|rd|th)?\s*(?:of\s+)?` + monthPattern + `(?:\s*,?\s*(\d{4}))?\b`)
	monthDaySpanRe = regexp.MustCompile(`\b` + monthPattern + `\s+(\d{1,2})(?:st|nd|rd|th)?(?:\s*,?\s*(\d{4}))?` +
		rangeSep + monthPattern + `\s+(\d{1,2})(?:st|nd|rd|th)?\b(?:\s*,?\s*(\d{4})\b)?`)

	anyDateRe = regexp.MustCompile(isoDateRe.String() + `|` + dayMonthRe.String() + `|` + monthDayRe.String())

	meridiemRe = regexp.MustCompile(`\b(\d{1,2})(?:[:.](\d{2}))?\s*(a\.?m\.?|p\.?m\.?)(?:\s|$|[^a-z])`)
	clock24Re  = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	noonRe     = regexp.MustCompile(`\bnoon\b`)
	midnightRe = regexp.MustCompile(`\bmidnight\b`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// ParseDate resolves a free-text date token to a calendar date.
//
// Resolution order: ISO passthrough, numeric D/M[/Y], day and month name in
// either order, relative words (today, in 3 days, next friday). Dates given
// without a year that already passed this year move to next year. Anything
// unrecognised resolves to today.
func (p *Parser) ParseDate(text string, now time.Time) Date {
	now = now.In(p.location)
	today := DateOf(now)

	s := normalize(text)
	if s == "" {
		return today
	}

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		if d, err := ParseISODate(m[1]); err == nil {
			return d
		}
	}

	if m := numericDateRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if d, ok := resolveDate(day, time.Month(month), m[3], today); ok {
			return d
		}
	}

	if m := dayMonthRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		if d, ok := resolveDate(day, monthFromName(m[2]), m[3], today); ok {
			return d
		}
	}

	if m := monthDayRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[2])
		if d, ok := resolveDate(day, monthFromName(m[1]), m[3], today); ok {
			return d
		}
	}

	if m := relativeRe.FindStringSubmatch(s); m != nil {
		if t, err := p.Parse(m[1], now); err == nil {
			return DateOf(t)
		}
	}

	return today
}

// ParseDateRange resolves "15-19 jan", "15 to 19 january", "jan 15-19" or an
// already resolved "YYYY-MM-DD to YYYY-MM-DD" into an inclusive range.
//
// When the year is implied and the end date already passed, both ends move
// to next year together. ISO ranges pass through unchanged.
func (p *Parser) ParseDateRange(text string, now time.Time) (DateRange, error) {
	today := DateOf(now.In(p.location))
	s := normalize(text)

	if m := isoRangeRe.FindStringSubmatch(s); m != nil {
		start, err := ParseISODate(m[1])
		if err != nil {
			return DateRange{}, ErrInvalidDateRange
		}
		end, err := ParseISODate(m[2])
		if err != nil {
			return DateRange{}, ErrInvalidDateRange
		}
		if start.After(end) {
			return DateRange{}, ErrInvalidDateRange
		}
		return DateRange{Start: start, End: end}, nil
	}

	if m := dayMonthSpanRe.FindStringSubmatch(s); m != nil {
		startDay, _ := strconv.Atoi(m[1])
		endDay, _ := strconv.Atoi(m[4])
		return spanRange(
			Date{Month: monthFromName(m[2]), Day: startDay}, m[3],
			Date{Month: monthFromName(m[5]), Day: endDay}, m[6],
			today,
		)
	}
	if m := monthDaySpanRe.FindStringSubmatch(s); m != nil {
		startDay, _ := strconv.Atoi(m[2])
		endDay, _ := strconv.Atoi(m[5])
		return spanRange(
			Date{Month: monthFromName(m[1]), Day: startDay}, m[3],
			Date{Month: monthFromName(m[4]), Day: endDay}, m[6],
			today,
		)
	}

	var startDay, endDay int
	var month time.Month
	var year string

	if m := dayRangeRe.FindStringSubmatch(s); m != nil {
		startDay, _ = strconv.Atoi(m[1])
		endDay, _ = strconv.Atoi(m[2])
		month = monthFromName(m[3])
		year = m[4]
	} else if m := monthDayRangeRe.FindStringSubmatch(s); m != nil {
		month = monthFromName(m[1])
		startDay, _ = strconv.Atoi(m[2])
		endDay, _ = strconv.Atoi(m[3])
		year = m[4]
	} else if len(anyDateRe.FindAllString(s, 2)) == 2 {
		// Two dates in a form none of the above understands.
		return DateRange{}, ErrInvalidDateRange
	} else {
		return DateRange{}, ErrNoDateRange
	}

	if startDay > endDay {
		return DateRange{}, ErrInvalidDateRange
	}

	y := today.Year
	if year != "" {
		y, _ = strconv.Atoi(year)
	}

	r := DateRange{
		Start: Date{Year: y, Month: month, Day: startDay},
		End:   Date{Year: y, Month: month, Day: endDay},
	}
	if !r.Start.Valid() || !r.End.Valid() {
		return DateRange{}, ErrInvalidDateRange
	}

	if year == "" && r.End.Before(today) {
		rolled := DateRange{
			Start: Date{Year: y + 1, Month: month, Day: startDay},
			End:   Date{Year: y + 1, Month: month, Day: endDay},
		}
		if rolled.Start.Valid() && rolled.End.Valid() {
			r = rolled
		}
	}

	return r, nil
}

// spanRange completes a range whose ends carry their own month. A missing
// year is taken from the other end, or from today when both are missing;
// an end month earlier than the start month then falls in the following
// year. With no year given at all, a range already over rolls forward.
func spanRange(start Date, startYear string, end Date, endYear string, today Date) (DateRange, error) {
	if start.Month == 0 || end.Month == 0 {
		return DateRange{}, ErrInvalidDateRange
	}

	start.Year, end.Year = today.Year, today.Year
	switch {
	case startYear != "" && endYear != "":
		start.Year, _ = strconv.Atoi(startYear)
		end.Year, _ = strconv.Atoi(endYear)
	case startYear != "":
		start.Year, _ = strconv.Atoi(startYear)
		end.Year = start.Year
		if end.Month < start.Month {
			end.Year++
		}
	case endYear != "":
		end.Year, _ = strconv.Atoi(endYear)
		start.Year = end.Year
		if end.Month < start.Month {
			start.Year--
		}
	default:
		if end.Month < start.Month {
			end.Year++
		}
	}

	r := DateRange{Start: start, End: end}
	if !r.Start.Valid() || !r.End.Valid() || r.Start.After(r.End) {
		return DateRange{}, ErrInvalidDateRange
	}

	if startYear == "" && endYear == "" && r.End.Before(today) {
		rolled := DateRange{
			Start: Date{Year: start.Year + 1, Month: start.Month, Day: start.Day},
			End:   Date{Year: end.Year + 1, Month: end.Month, Day: end.Day},
		}
		if rolled.Start.Valid() && rolled.End.Valid() {
			r = rolled
		}
	}

	return r, nil
}

// ParseTime resolves "2 pm", "2:30pm", "14:00", "noon" or "midnight" into a
// 24-hour clock. Absent or unparseable input resolves to DefaultClock.
func (p *Parser) ParseTime(text string) Clock {
	s := normalize(text)
	if s == "" {
		return DefaultClock
	}

	if m := meridiemRe.FindStringSubmatch(s + " "); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour >= 1 && hour <= 12 && minute <= 59 {
			pm := strings.HasPrefix(m[3], "p")
			switch {
			case pm && hour != 12:
				hour += 12
			case !pm && hour == 12:
				hour = 0
			}
			return Clock{Hour: hour, Minute: minute}
		}
	}

	if noonRe.MatchString(s) {
		return Clock{Hour: 12}
	}
	if midnightRe.MatchString(s) {
		return Clock{Hour: 0}
	}

	if m := clock24Re.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		c := Clock{Hour: hour, Minute: minute}
		if c.Valid() {
			return c
		}
	}

	return DefaultClock
}

// resolveDate builds a date from parsed parts. Two-digit years are 20YY.
// Without a year the current one is used and a date already past rolls to
// next year.
func resolveDate(day int, month time.Month, year string, today Date) (Date, bool) {
	if month == 0 {
		return Date{}, false
	}

	if year != "" {
		y, _ := strconv.Atoi(year)
		if len(year) == 2 {
			y += 2000
		}
		d := Date{Year: y, Month: month, Day: day}
		return d, d.Valid()
	}

	d := Date{Year: today.Year, Month: month, Day: day}
	if !d.Valid() {
		return Date{}, false
	}
	if d.Before(today) {
		if rolled := (Date{Year: today.Year + 1, Month: month, Day: day}); rolled.Valid() {
			return rolled, true
		}
	}
	return d, true
}

func monthFromName(name string) time.Month {
	if len(name) < 3 {
		return 0
	}
	return monthsByPrefix[name[:3]]
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
