package activity

import (
	"errors"
	"fmt"
)

// ErrInvalidTimeFormat is returned for times that are not zero-padded 24h "HH:MM".
var ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")

// MinutesPerDay is the length of the modelled clock.
const MinutesPerDay = 24 * 60

// ParseTime converts "HH:MM" to minutes since midnight, rejecting
// malformed input. HH must be in [0,23] and MM in [0,59].
func ParseTime(t string) (int, error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, ErrInvalidTimeFormat
	}
	for _, i := range []int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return 0, ErrInvalidTimeFormat
		}
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	if hours > 23 || mins > 59 {
		return 0, ErrInvalidTimeFormat
	}
	return hours*60 + mins, nil
}

// ValidateTime returns ErrInvalidTimeFormat if t is not a valid "HH:MM".
func ValidateTime(t string) error {
	_, err := ParseTime(t)
	return err
}

// ToMinutes converts "HH:MM" to minutes since midnight.
// Input is assumed well-formed; callers validate at the boundary with
// ParseTime. Malformed input returns 0.
func ToMinutes(t string) int {
	if len(t) < 5 {
		return 0
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// ToTimeString converts minutes since midnight to zero-padded "HH:MM".
// There is no day overflow handling: 1470 formats as "24:30". Callers
// clamp before formatting when they need a value on the clock.
func ToTimeString(m int) string {
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddDuration returns the time that is durationMinutes after start.
func AddDuration(start string, durationMinutes int) string {
	return ToTimeString(ToMinutes(start) + durationMinutes)
}

// TimesOverlap returns true if two time ranges overlap.
// Two time ranges overlap if: start1 < end2 AND start2 < end1
func TimesOverlap(start1, end1, start2, end2 string) bool {
	return start1 < end2 && start2 < end1
}
