package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"tastyfood/internal/pkg/errs"
)

// ClockTime is a time of day with second precision fixed to zero, as entered
// by staff when closing out an order. It is parsed from the free-text 12-hour
// form ("6:10 PM") and rendered in the 24-hour "HH:MM:00" form used by the
// persistence layer.
//
// The zero value represents midnight and is valid; whether midnight was
// actually entered is established by the parse step, which never defaults to
// it on malformed input.
type ClockTime struct {
	hour   int
	minute int
}

// ParseClockTime12 parses a free-text 12-hour clock time such as "6:10 PM".
//
// Parsing rules:
//   - the input splits on whitespace into a time part and a meridiem
//   - the time part splits on ':' into hour and minute
//   - "AM" maps hour 12 to 0 and leaves other hours unchanged
//   - "PM" adds 12 unless the hour is already 12
//
// Malformed input (missing meridiem, non-numeric hour or minute, out-of-range
// values) fails with an InvalidTimeFormatError. It is never silently accepted
// or defaulted to midnight.
func ParseClockTime12(input string) (ClockTime, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return ClockTime{}, errs.NewInvalidTimeFormatErrorWithCause(
			input,
			fmt.Errorf("expected time and meridiem, got %d fields", len(fields)),
		)
	}

	timePart, meridiem := fields[0], strings.ToUpper(fields[1])
	if meridiem != "AM" && meridiem != "PM" {
		return ClockTime{}, errs.NewInvalidTimeFormatErrorWithCause(
			input,
			fmt.Errorf("%q is not a valid meridiem", fields[1]),
		)
	}

	parts := strings.Split(timePart, ":")
	if len(parts) != 2 {
		return ClockTime{}, errs.NewInvalidTimeFormatErrorWithCause(
			input,
			fmt.Errorf("expected hour:minute, got %q", timePart),
		)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return ClockTime{}, errs.NewInvalidTimeFormatErrorWithCause(input, fmt.Errorf("hour is not numeric: %w", err))
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return ClockTime{}, errs.NewInvalidTimeFormatErrorWithCause(input, fmt.Errorf("minute is not numeric: %w", err))
	}

	if hour < 1 || hour > 12 {
		return ClockTime{}, errs.NewInvalidTimeFormatErrorWithCause(input, fmt.Errorf("hour %d is out of range", hour))
	}
	if minute < 0 || minute > 59 {
		return ClockTime{}, errs.NewInvalidTimeFormatErrorWithCause(input, fmt.Errorf("minute %d is out of range", minute))
	}

	if meridiem == "AM" {
		if hour == 12 {
			hour = 0
		}
	} else if hour != 12 {
		hour += 12
	}

	return ClockTime{hour: hour, minute: minute}, nil
}

// ClockTimeFrom24 parses the persisted 24-hour "HH:MM:SS" representation.
// Seconds are accepted on input but always normalized to zero.
func ClockTimeFrom24(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return ClockTime{}, errs.NewInvalidTimeFormatErrorWithCause(
			s,
			fmt.Errorf("expected HH:MM:SS, got %q", s),
		)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return ClockTime{}, errs.NewInvalidTimeFormatErrorWithCause(s, err)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return ClockTime{}, errs.NewInvalidTimeFormatErrorWithCause(s, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, errs.NewInvalidTimeFormatErrorWithCause(s, fmt.Errorf("time %q is out of range", s))
	}

	return ClockTime{hour: hour, minute: minute}, nil
}

// Hour returns the hour in 24-hour form.
func (t ClockTime) Hour() int {
	return t.hour
}

// Minute returns the minute.
func (t ClockTime) Minute() int {
	return t.minute
}

// String renders the 24-hour "HH:MM:00" representation, e.g. "18:10:00".
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:00", t.hour, t.minute)
}

// IsEqual reports whether two clock times are the same.
func (t ClockTime) IsEqual(other ClockTime) bool {
	return t.hour == other.hour && t.minute == other.minute
}
