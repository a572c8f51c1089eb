package assistant

import (
	"fmt"
	"regexp"
	"strings"

	"study-tracker/pkg/datemath"
)

const (
	envelopeOpen   = "<!--"
	envelopeClose  = "-->"
	envelopeMarker = "CONFIRM:"

	fieldDate      = "DATE:"
	fieldDateRange = "DATE_RANGE:"
	fieldTime      = "TIME:"
)

var (
	wrappedEnvelopeRe = regexp.MustCompile(`<!--\s*(CONFIRM:[^\n]*?)\s*-->`)
	bareEnvelopeRe    = regexp.MustCompile(`(?m)^\s*(CONFIRM:[^\n]*?)\s*$`)
)

// EncodeEnvelope renders p as the hidden annotation appended to a
// confirmation reply, e.g.
//
//	<!-- CONFIRM: REMINDER | Revise | DATE: 2025-01-15 | TIME: 09:00 -->
func EncodeEnvelope(p Proposal) string {
	title := SanitizeTitle(p.Title)

	var b strings.Builder
	b.WriteString(envelopeOpen + " " + envelopeMarker + " ")
	b.WriteString(string(p.Action))
	b.WriteString(" | ")
	b.WriteString(title)

	if p.Action == ActionReminder {
		switch p.When.Kind {
		case DateRange:
			b.WriteString(" | " + fieldDateRange + " " + p.When.Range.String())
		default:
			b.WriteString(" | " + fieldDate + " " + p.When.Date.String())
		}
		b.WriteString(" | " + fieldTime + " " + p.Time.String())
	}

	b.WriteString(" " + envelopeClose)
	return b.String()
}

// FindEnvelope returns the first envelope payload ("CONFIRM: ...") in text.
// The HTML comment form wins over a bare CONFIRM line.
func FindEnvelope(text string) (string, bool) {
	if m := wrappedEnvelopeRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := bareEnvelopeRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

// DecodeEnvelope parses an envelope with or without the comment wrapper.
// Anything that does not match one of the three encoded shapes exactly is
// rejected with ErrMalformedEnvelope.
func DecodeEnvelope(s string) (Proposal, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, envelopeOpen) {
		if !strings.HasSuffix(s, envelopeClose) {
			return Proposal{}, fmt.Errorf("%w: unterminated comment", ErrMalformedEnvelope)
		}
		s = strings.TrimSpace(s[len(envelopeOpen) : len(s)-len(envelopeClose)])
	}
	if !strings.HasPrefix(s, envelopeMarker) {
		return Proposal{}, fmt.Errorf("%w: missing %s", ErrMalformedEnvelope, envelopeMarker)
	}

	fields := strings.Split(strings.TrimPrefix(s, envelopeMarker), "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	switch ActionType(fields[0]) {
	case ActionTask:
		if len(fields) != 2 || fields[1] == "" {
			return Proposal{}, fmt.Errorf("%w: task needs exactly a title", ErrMalformedEnvelope)
		}
		return Proposal{Action: ActionTask, Title: fields[1]}, nil

	case ActionReminder:
		if len(fields) != 4 || fields[1] == "" {
			return Proposal{}, fmt.Errorf("%w: reminder needs title, date and time", ErrMalformedEnvelope)
		}
		when, err := decodeDateField(fields[2])
		if err != nil {
			return Proposal{}, err
		}
		clock, err := decodeTimeField(fields[3])
		if err != nil {
			return Proposal{}, err
		}
		return Proposal{Action: ActionReminder, Title: fields[1], When: when, Time: clock}, nil

	default:
		return Proposal{}, fmt.Errorf("%w: unknown action %q", ErrMalformedEnvelope, fields[0])
	}
}

func decodeDateField(f string) (DateSpec, error) {
	switch {
	case strings.HasPrefix(f, fieldDateRange):
		parts := strings.Split(strings.TrimSpace(strings.TrimPrefix(f, fieldDateRange)), " to ")
		if len(parts) != 2 {
			return DateSpec{}, fmt.Errorf("%w: bad range %q", ErrMalformedEnvelope, f)
		}
		start, err := datemath.ParseISODate(strings.TrimSpace(parts[0]))
		if err != nil {
			return DateSpec{}, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
		}
		end, err := datemath.ParseISODate(strings.TrimSpace(parts[1]))
		if err != nil {
			return DateSpec{}, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
		}
		if start.After(end) {
			return DateSpec{}, fmt.Errorf("%w: range ends before it starts", ErrMalformedEnvelope)
		}
		return RangeOf(datemath.DateRange{Start: start, End: end}), nil

	case strings.HasPrefix(f, fieldDate):
		d, err := datemath.ParseISODate(strings.TrimSpace(strings.TrimPrefix(f, fieldDate)))
		if err != nil {
			return DateSpec{}, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
		}
		return SingleDate(d), nil

	default:
		return DateSpec{}, fmt.Errorf("%w: expected %s or %s", ErrMalformedEnvelope, fieldDate, fieldDateRange)
	}
}

func decodeTimeField(f string) (datemath.Clock, error) {
	if !strings.HasPrefix(f, fieldTime) {
		return datemath.Clock{}, fmt.Errorf("%w: expected %s", ErrMalformedEnvelope, fieldTime)
	}
	c, err := datemath.ParseClock(strings.TrimSpace(strings.TrimPrefix(f, fieldTime)))
	if err != nil {
		return datemath.Clock{}, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	return c, nil
}

// SanitizeTitle makes a title safe to embed in an envelope: one line, no
// field separator, no comment terminator.
func SanitizeTitle(title string) string {
	title = strings.Join(strings.Fields(title), " ")
	title = strings.ReplaceAll(title, "|", "/")
	title = strings.ReplaceAll(title, envelopeClose, "->")
	return title
}
