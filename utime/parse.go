package utime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ivanobilenchi/gulib/uerr"
)

// ParseCivil parses an ISO-8601-flavoured civil timestamp:
// "YYYY-MM-DDTHH:MM:SS" optionally followed by "Z" or a "+HH:MM"/"-HH:MM"
// offset, in which case the result is normalized to UTC.
func ParseCivil(s string) (Civil, error) {
	datePart, timePart, ok := strings.Cut(s, "T")
	if !ok {
		datePart, timePart, ok = strings.Cut(s, " ")
	}
	if !ok {
		return Civil{}, uerr.Wrap(uerr.Bounds, "utime: %q is missing a time component", s)
	}

	dateFields := strings.Split(datePart, "-")
	if len(dateFields) != 3 {
		return Civil{}, uerr.Wrap(uerr.Bounds, "utime: %q has a malformed date", s)
	}
	year, err := strconv.ParseInt(dateFields[0], 10, 64)
	if err != nil {
		return Civil{}, uerr.Wrap(uerr.Bounds, "utime: bad year in %q: %v", s, err)
	}
	month, err := strconv.Atoi(dateFields[1])
	if err != nil || month < 1 || month > monthsPerYear {
		return Civil{}, uerr.Wrap(uerr.Bounds, "utime: bad month in %q", s)
	}
	day, err := strconv.Atoi(dateFields[2])
	if err != nil || day < 1 || day > DaysInMonth(year, month) {
		return Civil{}, uerr.Wrap(uerr.Bounds, "utime: bad day in %q", s)
	}

	tzIdx, tzSign := -1, 1
	for i := 1; i < len(timePart); i++ {
		switch timePart[i] {
		case '+':
			tzIdx, tzSign = i, 1
		case '-':
			tzIdx, tzSign = i, -1
		case 'Z', 'z':
			tzIdx, tzSign = i, 0
		}
		if tzIdx >= 0 {
			break
		}
	}

	clockPart := timePart
	tzPart := ""
	if tzIdx >= 0 {
		clockPart = timePart[:tzIdx]
		tzPart = timePart[tzIdx:]
	}

	clockFields := strings.Split(clockPart, ":")
	if len(clockFields) != 3 {
		return Civil{}, uerr.Wrap(uerr.Bounds, "utime: %q has a malformed time", s)
	}
	hour, err := strconv.Atoi(clockFields[0])
	if err != nil || hour < 0 || hour >= hoursPerDay {
		return Civil{}, uerr.Wrap(uerr.Bounds, "utime: bad hour in %q", s)
	}
	minute, err := strconv.Atoi(clockFields[1])
	if err != nil || minute < 0 || minute >= minutesPerHour {
		return Civil{}, uerr.Wrap(uerr.Bounds, "utime: bad minute in %q", s)
	}
	second, err := strconv.Atoi(clockFields[2])
	if err != nil || second < 0 || second >= secondsPerMinute {
		return Civil{}, uerr.Wrap(uerr.Bounds, "utime: bad second in %q", s)
	}

	c := Civil{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}

	if tzPart == "" || tzPart == "Z" || tzPart == "z" {
		return c, nil
	}

	tzFields := strings.Split(tzPart[1:], ":")
	if len(tzFields) != 2 {
		return Civil{}, uerr.Wrap(uerr.Bounds, "utime: bad timezone in %q", s)
	}
	tzh, err := strconv.Atoi(tzFields[0])
	if err != nil || tzh > 14 {
		return Civil{}, uerr.Wrap(uerr.Bounds, "utime: bad timezone hour in %q", s)
	}
	tzm, err := strconv.Atoi(tzFields[1])
	if err != nil || tzm < 0 || tzm >= minutesPerHour {
		return Civil{}, uerr.Wrap(uerr.Bounds, "utime: bad timezone minute in %q", s)
	}

	return c.Normalize(tzSign*tzh, uint(tzm)), nil
}

// MustParseCivil is ParseCivil, panicking on error; intended for
// constants and tests, not for parsing untrusted input.
func MustParseCivil(s string) Civil {
	c, err := ParseCivil(s)
	if err != nil {
		panic(fmt.Sprintf("utime: %v", err))
	}
	return c
}
