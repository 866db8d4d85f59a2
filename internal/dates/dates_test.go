package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStorage(t *testing.T) {
	got, err := ToStorage("10/03/2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", got)

	got, err = ToStorage("29/02/2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got)

	for _, bad := range []string{
		"31/02/2024", // not a real day
		"29/02/2023", // not a leap year
		"2024-03-10", // storage form is not accepted as input
		"1/3/2024",   // must be zero padded
		"10-03-2024",
		"",
	} {
		_, err := ToStorage(bad)
		assert.Error(t, err, bad)
	}
}

func TestToDisplay(t *testing.T) {
	assert.Equal(t, "10/03/2024", ToDisplay("2024-03-10"))

	// fails open so stored garbage still renders
	assert.Equal(t, "not-a-date", ToDisplay("not-a-date"))
	assert.Equal(t, "", ToDisplay(""))
}

func TestRoundTripPreservesOrder(t *testing.T) {
	stored := []string{"2023-12-31", "2024-01-01", "2024-03-10"}
	for i := 1; i < len(stored); i++ {
		assert.Less(t, stored[i-1], stored[i])
	}
	for _, s := range stored {
		back, err := ToStorage(ToDisplay(s))
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}
}

func TestValidStorage(t *testing.T) {
	assert.True(t, ValidStorage("2024-03-10"))
	assert.False(t, ValidStorage("10/03/2024"))
	assert.False(t, ValidStorage("2024-02-31"))
	assert.False(t, ValidStorage(""))
}

func TestAge(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		birth string
		want  int
	}{
		{"2015-06-14", 9}, // birthday already passed
		{"2015-06-15", 9}, // birthday today
		{"2015-06-16", 8}, // birthday tomorrow
		{"2015-12-01", 8},
		{"2024-06-15", 0},
	}
	for _, tc := range cases {
		got, err := Age(tc.birth, now)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.birth)
	}

	_, err := Age("15/06/2015", now)
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"09:30": 570,
		"14:05": 845,
		"23:59": 1439,
	}
	for clock, want := range cases {
		got, err := ParseClock(clock)
		require.NoError(t, err)
		assert.Equal(t, want, got, clock)
	}

	for _, bad := range []string{"9:00", "24:00", "12:60", "12.30", "12:3", "", "1200"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidateClockRange(t *testing.T) {
	assert.NoError(t, ValidateClockRange("09:00", "10:00"))
	assert.Error(t, ValidateClockRange("10:00", "10:00"), "zero-length range")
	assert.Error(t, ValidateClockRange("11:00", "10:00"))
	assert.Error(t, ValidateClockRange("9:00", "10:00"))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2024-03-01", AddDays("2024-02-29", 1))
	assert.Equal(t, "2024-02-29", AddDays("2024-03-01", -1))
	assert.Equal(t, "2025-01-01", AddDays("2024-12-31", 1))
	assert.Equal(t, "junk", AddDays("junk", 1))
}
