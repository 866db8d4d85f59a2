package dates

import (
	"fmt"
	"regexp"
	"time"
)

// Display dates are DD/MM/YYYY; stored dates are YYYY-MM-DD so that
// lexicographic order is chronological order. Every date is converted
// at the boundary and only the storage form ever reaches the database.
const (
	displayLayout = "02/01/2006"
	storageLayout = "2006-01-02"
)

var clockRegex = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):([0-5][0-9])$`)

// ToStorage converts a DD/MM/YYYY display date to storage form.
// Anything that is not an exact, valid calendar date is rejected.
func ToStorage(display string) (string, error) {
	t, err := time.Parse(displayLayout, display)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: use DD/MM/YYYY", display)
	}
	return t.Format(storageLayout), nil
}

// ToDisplay converts a storage date back to DD/MM/YYYY. It fails open:
// input that does not parse is returned unchanged.
func ToDisplay(storage string) string {
	t, err := time.Parse(storageLayout, storage)
	if err != nil {
		return storage
	}
	return t.Format(displayLayout)
}

// ValidStorage reports whether s is a well-formed storage date.
func ValidStorage(s string) bool {
	_, err := time.Parse(storageLayout, s)
	return err == nil
}

// Age returns full calendar years between a storage-form birth date and
// now, decrementing when the birthday has not yet occurred this year.
func Age(birthStorage string, now time.Time) (int, error) {
	birth, err := time.Parse(storageLayout, birthStorage)
	if err != nil {
		return 0, fmt.Errorf("invalid birth date %q", birthStorage)
	}
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years, nil
}

// ParseClock parses a strict zero-padded 24-hour HH:MM string into
// minutes since midnight. String comparison of clock times is only
// safe because of the fixed width; numeric minutes remove even that
// dependency for interval arithmetic.
func ParseClock(clock string) (int, error) {
	if !clockRegex.MatchString(clock) {
		return 0, fmt.Errorf("invalid time %q: use HH:MM", clock)
	}
	hours := int(clock[0]-'0')*10 + int(clock[1]-'0')
	minutes := int(clock[3]-'0')*10 + int(clock[4]-'0')
	return hours*60 + minutes, nil
}

// ValidateClockRange checks that start and end are valid clock times
// with start strictly before end. Runs before any conflict check.
func ValidateClockRange(start, end string) error {
	s, err := ParseClock(start)
	if err != nil {
		return err
	}
	e, err := ParseClock(end)
	if err != nil {
		return err
	}
	if s >= e {
		return fmt.Errorf("start time %s must be before end time %s", start, end)
	}
	return nil
}

// Today returns the current date in storage form.
func Today() string {
	return time.Now().Format(storageLayout)
}

// AddDays shifts a storage date by n days. Invalid input comes back
// unchanged, the same fail-open behavior as ToDisplay.
func AddDays(storage string, n int) string {
	t, err := time.Parse(storageLayout, storage)
	if err != nil {
		return storage
	}
	return t.AddDate(0, 0, n).Format(storageLayout)
}
