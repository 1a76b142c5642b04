package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClockTime(t *testing.T) {
	t.Run("accepts valid times", func(t *testing.T) {
		cases := map[string]int{
			"00:00": 0,
			"0:00":  0,
			"9:05":  9*60 + 5,
			"09:05": 9*60 + 5,
			"10:00": 600,
			"13:30": 13*60 + 30,
			"23:59": 23*60 + 59,
		}
		for input, want := range cases {
			got, err := ParseClockTime(input)
			assert.NoError(t, err, "input %q should parse", input)
			assert.Equal(t, want, got, "input %q", input)
		}
	})

	t.Run("rejects invalid times", func(t *testing.T) {
		inputs := []string{
			"",
			"abc",
			"24:00",
			"25:10",
			"9:60",
			"9:5",
			"-1:00",
			"9:05 ",
			" 9:05",
			"9.05",
			"123:00",
			"09:005",
			"9:",
			":30",
		}
		for _, input := range inputs {
			_, err := ParseClockTime(input)
			assert.Error(t, err, "input %q should be rejected", input)
		}
	})

	t.Run("round-trips through canonical form", func(t *testing.T) {
		minute, err := ParseClockTime("9:05")
		assert.NoError(t, err)
		assert.Equal(t, "09:05", FormatClockTime(minute))

		minute, err = ParseClockTime("23:59")
		assert.NoError(t, err)
		assert.Equal(t, "23:59", FormatClockTime(minute))
	})
}

func TestClockRangesOverlap(t *testing.T) {
	parse := func(s string) int {
		minute, err := ParseClockTime(s)
		assert.NoError(t, err)
		return minute
	}

	cases := []struct {
		name                       string
		startA, endA, startB, endB string
		want                       bool
	}{
		{"touching endpoints are not a conflict", "08:00", "09:00", "09:00", "10:00", false},
		{"touching endpoints reversed", "09:00", "10:00", "08:00", "09:00", false},
		{"one minute overlap", "08:00", "09:01", "09:00", "10:00", true},
		{"identical intervals", "08:00", "09:00", "08:00", "09:00", true},
		{"containment", "08:00", "12:00", "09:00", "10:00", true},
		{"disjoint", "08:00", "09:00", "10:00", "11:00", false},
		{"non-padded hour compares numerically", "9:00", "10:30", "10:00", "11:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClockRangesOverlap(parse(tc.startA), parse(tc.endA), parse(tc.startB), parse(tc.endB))
			assert.Equal(t, tc.want, got)
		})
	}
}
