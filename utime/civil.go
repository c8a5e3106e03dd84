package utime

import "fmt"

const (
	secondsPerMinute = 60
	minutesPerHour   = 60
	hoursPerDay      = 24
	monthsPerYear    = 12
	secondsPerHour   = secondsPerMinute * minutesPerHour
	secondsPerDay    = secondsPerHour * hoursPerDay
)

// Civil is a proleptic-Gregorian wall-clock time: year, month (1-12),
// day (1-31), and time of day. It carries no timezone; Normalize
// converts a Civil expressed in some offset into UTC.
type Civil struct {
	Year   int64
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Equals reports whether c and other name the same instant, field for
// field.
func (c Civil) Equals(other Civil) bool { return c == other }

// String formats c as "YYYY/MM/DD-HH:MM:SS".
func (c Civil) String() string {
	return fmt.Sprintf("%04d/%02d/%02d-%02d:%02d:%02d", c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
}

// IsLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonthTable = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given 1-indexed month of
// year, accounting for leap years in February.
func DaysInMonth(year int64, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysInMonthTable[month-1]
}

// daysFromCivil converts a year/month/day triple into a day count
// relative to 1970-01-01, using Howard Hinnant's days_from_civil
// algorithm (http://howardhinnant.github.io/date_algorithms.html).
func daysFromCivil(y int64, m, d int) int64 {
	if m <= 2 {
		y--
	}
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400                                       // [0, 400)
	var mp int                                                // [0, 12), Mar=0
	if m > 2 {
		mp = m - 3
	} else {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + d - 1                               // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + int64(doy)              // [0, 146097)
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int64) (y int64, m, d int) {
	z += 719468
	era := z
	if era < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097                                       // [0, 146097)
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365       // [0, 400)
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)                     // [0, 365]
	mp := (5*doy + 2) / 153                                      // [0, 11], Mar=0
	d = int(doy-(153*mp+2)/5) + 1                                // [1, 31]
	if mp < 10 {
		m = int(mp) + 3
	} else {
		m = int(mp) - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

// ToTimestamp converts c to a Unix timestamp (seconds since
// 1970-01-01T00:00:00Z), treating c as already expressed in UTC.
func (c Civil) ToTimestamp() int64 {
	ts := daysFromCivil(c.Year, c.Month, c.Day) * secondsPerDay
	ts += int64(c.Hour) * secondsPerHour
	ts += int64(c.Minute) * secondsPerMinute
	ts += int64(c.Second)
	return ts
}

// FromTimestamp converts a Unix timestamp into its UTC Civil
// representation.
func FromTimestamp(ts int64) Civil {
	tod := ts % secondsPerDay
	days := ts / secondsPerDay
	if tod < 0 {
		tod += secondsPerDay
		days--
	}

	second := int(tod % secondsPerMinute)
	tod /= secondsPerMinute
	minute := int(tod % minutesPerHour)
	hour := int(tod / minutesPerHour)

	year, month, day := civilFromDays(days)
	return Civil{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}
}

// Add returns c shifted by quantity units of unit. Years and Months
// adjust the calendar fields directly (clamping month overflow into the
// year, the way the C original does); every finer unit round-trips
// through a Unix timestamp.
func (c Civil) Add(quantity int64, unit Unit) Civil {
	if unit == Years {
		c.Year += quantity
		return c
	}
	if unit == Months {
		quantity += int64(c.Month)
		c.Year += quantity / monthsPerYear
		quantity %= monthsPerYear
		if quantity < 0 {
			quantity += monthsPerYear
			c.Year--
		}
		c.Month = int(quantity)
		if c.Month == 0 {
			c.Month = monthsPerYear
			c.Year--
		}
		return c
	}

	switch unit {
	case Days:
		quantity *= secondsPerDay
	case Hours:
		quantity *= secondsPerHour
	case Minutes:
		quantity *= secondsPerMinute
	case Milliseconds:
		quantity /= 1000
	case Microseconds:
		quantity /= 1_000_000
	case Nanoseconds:
		quantity /= 1_000_000_000
	}

	return FromTimestamp(c.ToTimestamp() + quantity)
}

// Diff returns a-b expressed in unit.
func Diff(a, b Civil, unit Unit) int64 {
	if unit >= Months {
		months := int64(a.Month-b.Month) + (a.Year-b.Year)*monthsPerYear
		if unit == Months {
			return months
		}
		return months / monthsPerYear
	}

	diff := a.ToTimestamp() - b.ToTimestamp()
	switch unit {
	case Days:
		return diff / secondsPerDay
	case Hours:
		return diff / secondsPerHour
	case Minutes:
		return diff / secondsPerMinute
	case Milliseconds:
		return diff * 1000
	case Microseconds:
		return diff * 1_000_000
	case Nanoseconds:
		return diff * 1_000_000_000
	default:
		return diff
	}
}

// Normalize converts c, expressed with the given timezone offset, into
// UTC. tzMinute's sign follows tzHour's: offset = tzHour*60 ± tzMinute
// minutes east of UTC.
func (c Civil) Normalize(tzHour int, tzMinute uint) Civil {
	m := int64(tzHour) * minutesPerHour
	if tzHour >= 0 {
		m += int64(tzMinute)
	} else {
		m -= int64(tzMinute)
	}
	return c.Add(-m, Minutes)
}
