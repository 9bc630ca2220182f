package ros

import (
	gotime "time"
)

// Time struct contains a temporal value {sec,nsec}
type Time struct {
	temporal
}

// TimeType is the type name of the Time primitive
const TimeType = "time"

// NewTime creates a Time object of given integers {sec,nsec}
func NewTime(sec int32, nsec uint32) Time {
	s, ns := normalizeTemporal(int64(sec), int64(nsec))
	return Time{temporal{s, ns}}
}

// TimeFromSec creates a Time object from seconds and partial seconds
func TimeFromSec(sec float64) Time {
	var t Time
	t.FromSec(sec)
	return t
}

// TimeFromNSec creates a Time object from a nanosecond count
func TimeFromNSec(nsec int64) Time {
	var t Time
	t.FromNSec(nsec)
	return t
}

// TimeFromGoTime converts a calendar time into a Time object
func TimeFromGoTime(t gotime.Time) Time {
	return TimeFromNSec(t.UnixNano())
}

// Now creates a Time object of value Now
func Now() Time {
	return TimeFromGoTime(gotime.Now())
}

// SleepUntil pauses the calling goroutine until the given time has passed
func SleepUntil(t Time) {
	d := t.Diff(Now())
	if d.ToNSec() > 0 {
		d.Sleep()
	}
}

// IsValid reports whether the time is non-zero
func (t Time) IsValid() bool {
	return !t.IsZero()
}

// ToGoTime converts the Time object into a calendar time
func (t Time) ToGoTime() gotime.Time {
	return gotime.Unix(int64(t.Sec), int64(t.NSec))
}

// Diff returns difference of two Time objects as a Duration
func (t Time) Diff(from Time) Duration {
	sec, nsec := normalizeTemporal(int64(t.Sec)-int64(from.Sec),
		int64(t.NSec)-int64(from.NSec))
	return Duration{temporal{sec, nsec}}
}

// Add returns sum of Time and Duration given
func (t Time) Add(d Duration) Time {
	sec, nsec := normalizeTemporal(int64(t.Sec)+int64(d.Sec),
		int64(t.NSec)+int64(d.NSec))
	return Time{temporal{sec, nsec}}
}

// Sub returns subtraction of Time and Duration given
func (t Time) Sub(d Duration) Time {
	sec, nsec := normalizeTemporal(int64(t.Sec)-int64(d.Sec),
		int64(t.NSec)-int64(d.NSec))
	return Time{temporal{sec, nsec}}
}

// Cmp returns int comparison of two Time objects
func (t Time) Cmp(other Time) int {
	return cmpInt64(t.ToNSec(), other.ToNSec())
}

// Clone returns a copy of the Time object
func (t Time) Clone() Time {
	return t
}

// MarshalJSON writes the Time as {"sec": ..., "nanosec": ...}
func (t Time) MarshalJSON() ([]byte, error) {
	return t.marshalJSON()
}

// UnmarshalJSON reads a Time, substituting zero for missing keys
func (t *Time) UnmarshalJSON(data []byte) error {
	return t.unmarshalJSON(TimeType, data)
}

// TimeFromJSON parses a Time from a JSON object
func TimeFromJSON(data []byte) (Time, error) {
	var t Time
	err := t.UnmarshalJSON(data)
	return t, err
}

// TimeFromJSONString parses a Time from a JSON string
func TimeFromJSONString(s string) (Time, error) {
	return TimeFromJSON([]byte(s))
}
