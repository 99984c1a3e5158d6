// Package timestamp converts between Unix timestamps and calendar dates.
package timestamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// millisThreshold separates second-precision from millisecond-precision input
const millisThreshold = 9999999999

// maxMillis is the widest instant a JavaScript Date can hold, in either direction
const maxMillis = 8_640_000_000_000_000

const (
	gmtLayout   = "Mon, 02 Jan 2006 15:04:05 GMT"
	localLayout = "1/2/2006, 3:04:05 PM"
	isoLayout   = "2006-01-02T15:04:05.000Z"
	isoTail     = "-01-02T15:04:05.000Z"
)

// ErrInvalidTimestamp is returned when no integer can be read from the input or
// the instant falls outside the representable date range
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Formatted is a moment rendered in every representation the converter shows
type Formatted struct {
	GMT         string `json:"gmt"`
	Local       string `json:"local"`
	Timezone    string `json:"timezone"`
	ISO         string `json:"iso"`
	Relative    string `json:"relative"`
	Timestamp   int64  `json:"timestamp"`
	TimestampMs int64  `json:"timestampMs"`
}

// Converter formats moments in a fixed location
type Converter struct {
	loc *time.Location
}

// NewConverter creates a converter for loc; nil means time.Local
func NewConverter(loc *time.Location) *Converter {
	if loc == nil {
		loc = time.Local
	}
	return &Converter{loc: loc}
}

// Timezone renders the zone as "<name> (UTC±HH:MM)" at moment t
func (c *Converter) Timezone(t time.Time) string {
	local := t.In(c.loc)
	abbr, offset := local.Zone()

	name := c.loc.String()
	if name == "" || name == "Local" {
		name = abbr
	}

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s (UTC%s%02d:%02d)", name, sign, offset/3600, (offset%3600)/60)
}

// Format renders t relative to now
func (c *Converter) Format(t, now time.Time) Formatted {
	return Formatted{
		GMT:         t.UTC().Format(gmtLayout),
		Local:       t.In(c.loc).Format(localLayout),
		Timezone:    c.Timezone(t),
		ISO:         isoString(t),
		Relative:    Relative(t, now),
		Timestamp:   floorDiv(t.UnixMilli(), 1000),
		TimestampMs: t.UnixMilli(),
	}
}

// Current renders now for the live clock card; Relative is left empty
func (c *Converter) Current(now time.Time) Formatted {
	f := c.Format(now, now)
	f.Relative = ""
	return f
}

// FromTimestamp reads a leading integer from input. Values above 9999999999
// are taken as milliseconds, anything else as seconds.
func (c *Converter) FromTimestamp(input string, now time.Time) (Formatted, error) {
	ts, ok := parseLeadingInt(input)
	if !ok {
		return Formatted{}, ErrInvalidTimestamp
	}

	ms := ts
	if ts <= millisThreshold {
		if ts < -maxMillis/1000 {
			return Formatted{}, ErrInvalidTimestamp
		}
		ms = ts * 1000
	}
	if ms > maxMillis {
		return Formatted{}, ErrInvalidTimestamp
	}
	return c.Format(time.UnixMilli(ms), now), nil
}

// isoString matches toISOString: years outside 0..9999 get a sign and six digits
func isoString(t time.Time) string {
	u := t.UTC()
	if y := u.Year(); y < 0 || y > 9999 {
		return fmt.Sprintf("%+07d", y) + u.Format(isoTail)
	}
	return u.Format(isoLayout)
}

// DateFields are the raw form inputs of the date-to-timestamp card
type DateFields struct {
	Year   string `json:"year"`
	Month  string `json:"month"`
	Day    string `json:"day"`
	Hour   string `json:"hour"`
	Minute string `json:"minute"`
	Second string `json:"second"`
}

// FieldsFor fills the form with t in the converter's zone, zero padded
func (c *Converter) FieldsFor(t time.Time) DateFields {
	l := t.In(c.loc)
	return DateFields{
		Year:   strconv.Itoa(l.Year()),
		Month:  fmt.Sprintf("%02d", int(l.Month())),
		Day:    fmt.Sprintf("%02d", l.Day()),
		Hour:   fmt.Sprintf("%02d", l.Hour()),
		Minute: fmt.Sprintf("%02d", l.Minute()),
		Second: fmt.Sprintf("%02d", l.Second()),
	}
}

// ValidationError carries the message shown under the date form
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// FromDate validates the form in order and converts it in the converter's zone
func (c *Converter) FromDate(f DateFields, now time.Time) (Formatted, error) {
	raw := []string{f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second}
	vals := make([]int, len(raw))
	for i, s := range raw {
		v, ok := parseLeadingInt(s)
		if !ok {
			return Formatted{}, &ValidationError{Field: "all", Msg: "All fields must be valid numbers"}
		}
		vals[i] = int(v)
	}
	year, month, day, hour, minute, second := vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]

	if year < 1970 || year > 2099 {
		return Formatted{}, &ValidationError{Field: "year", Msg: "Year must be between 1970 and 2099"}
	}
	if month < 1 || month > 12 {
		return Formatted{}, &ValidationError{Field: "month", Msg: "Month must be between 1 and 12"}
	}
	if dim := DaysInMonth(year, time.Month(month)); day < 1 || day > dim {
		return Formatted{}, &ValidationError{Field: "day", Msg: fmt.Sprintf("Day must be between 1 and %d for this month", dim)}
	}
	if hour < 0 || hour > 23 {
		return Formatted{}, &ValidationError{Field: "hour", Msg: "Hour must be between 0 and 23"}
	}
	if minute < 0 || minute > 59 {
		return Formatted{}, &ValidationError{Field: "minute", Msg: "Minute must be between 0 and 59"}
	}
	if second < 0 || second > 59 {
		return Formatted{}, &ValidationError{Field: "second", Msg: "Second must be between 0 and 59"}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, c.loc)
	return c.Format(t, now), nil
}

// DaysInMonth returns the number of days in month of year
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// parseLeadingInt reads an optionally signed run of digits after leading
// whitespace and ignores anything that follows.
func parseLeadingInt(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
