package ros

import (
	"time"
)

// Duration type which is a wrapper for a temporal value of {sec,nsec}
type Duration struct {
	temporal
}

// DurationType is the type name of the Duration primitive
const DurationType = "duration"

// NewDuration instantiates a new Duration item with given sec and nsec integers
func NewDuration(sec int32, nsec uint32) Duration {
	s, ns := normalizeTemporal(int64(sec), int64(nsec))
	return Duration{temporal{s, ns}}
}

// DurationFromSec creates a Duration from seconds and partial seconds
func DurationFromSec(sec float64) Duration {
	var d Duration
	d.FromSec(sec)
	return d
}

// DurationFromNSec creates a Duration from a nanosecond count
func DurationFromNSec(nsec int64) Duration {
	var d Duration
	d.FromNSec(nsec)
	return d
}

// DurationFromGoDuration converts a time.Duration
func DurationFromGoDuration(d time.Duration) Duration {
	return DurationFromNSec(d.Nanoseconds())
}

// ToGoDuration converts the Duration into a time.Duration
func (d Duration) ToGoDuration() time.Duration {
	return time.Duration(d.ToNSec()) * time.Nanosecond
}

// Add function for adding two durations together
func (d Duration) Add(other Duration) Duration {
	sec, nsec := normalizeTemporal(int64(d.Sec)+int64(other.Sec),
		int64(d.NSec)+int64(other.NSec))
	return Duration{temporal{sec, nsec}}
}

// Sub function for subtracting a duration from another
func (d Duration) Sub(other Duration) Duration {
	sec, nsec := normalizeTemporal(int64(d.Sec)-int64(other.Sec),
		int64(d.NSec)-int64(other.NSec))
	return Duration{temporal{sec, nsec}}
}

// Cmp function to compare two durations
func (d Duration) Cmp(other Duration) int {
	return cmpInt64(d.ToNSec(), other.ToNSec())
}

// Clone returns a copy of the Duration
func (d Duration) Clone() Duration {
	return d
}

// Sleep function pauses go routine for duration d
func (d Duration) Sleep() error {
	if d.ToNSec() > 0 {
		time.Sleep(d.ToGoDuration())
	}
	return nil
}

// MarshalJSON writes the Duration as {"sec": ..., "nanosec": ...}
func (d Duration) MarshalJSON() ([]byte, error) {
	return d.marshalJSON()
}

// UnmarshalJSON reads a Duration, substituting zero for missing keys
func (d *Duration) UnmarshalJSON(data []byte) error {
	return d.unmarshalJSON(DurationType, data)
}

// DurationFromJSON parses a Duration from a JSON object
func DurationFromJSON(data []byte) (Duration, error) {
	var d Duration
	err := d.UnmarshalJSON(data)
	return d, err
}

// DurationFromJSONString parses a Duration from a JSON string
func DurationFromJSONString(s string) (Duration, error) {
	return DurationFromJSON([]byte(s))
}
