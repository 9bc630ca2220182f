package ros

import (
	"encoding/json"
	"math"

	"github.com/pkg/errors"
)

const (
	secondInNanosecond = 1000000000
	// JSON keys of builtin_interfaces/Time and builtin_interfaces/Duration.
	fieldSec     = "sec"
	fieldNanoSec = "nanosec"
)

var errTemporalRange = errors.New("Time is out of range")

func tryNormalizeTemporal(sec int64, nsec int64) (int32, uint32, error) {
	sec += nsec / secondInNanosecond
	nsec = nsec % secondInNanosecond
	if nsec < 0 {
		sec--
		nsec += secondInNanosecond
	}

	if sec < math.MinInt32 || sec > math.MaxInt32 {
		return 0, 0, errTemporalRange
	}

	return int32(sec), uint32(nsec), nil
}

func normalizeTemporal(sec int64, nsec int64) (int32, uint32) {
	s, ns, err := tryNormalizeTemporal(sec, nsec)
	if err != nil {
		panic(err.Error())
	}
	return s, ns
}

func cmpInt64(lhs, rhs int64) int {
	var result int
	if lhs > rhs {
		result = 1
	} else if lhs < rhs {
		result = -1
	} else {
		result = 0
	}
	return result
}

// secToNSec rounds to the nearest nanosecond so that FromSec(x).ToSec()
// recovers x within floating point tolerance.
func secToNSec(sec float64) int64 {
	return int64(math.Round(sec * secondInNanosecond))
}

type temporal struct {
	Sec  int32
	NSec uint32
}

func (t temporal) IsZero() bool {
	return t.Sec == 0 && t.NSec == 0
}

func (t temporal) ToSec() float64 {
	return float64(t.Sec) + float64(t.NSec)*1e-9
}

func (t temporal) ToNSec() int64 {
	return int64(t.Sec)*secondInNanosecond + int64(t.NSec)
}

func (t *temporal) FromSec(sec float64) {
	t.FromNSec(secToNSec(sec))
}

func (t *temporal) FromNSec(nsec int64) {
	t.Sec, t.NSec = normalizeTemporal(0, nsec)
}

func (t *temporal) Normalize() {
	t.Sec, t.NSec = normalizeTemporal(int64(t.Sec), int64(t.NSec))
}

func (t temporal) marshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Sec     int32  `json:"sec"`
		NanoSec uint32 `json:"nanosec"`
	}{t.Sec, t.NSec})
}

// unmarshalJSON reads {sec, nanosec}; absent keys stay zero and the result is
// normalized so that an oversized nanosec carries into sec.
func (t *temporal) unmarshalJSON(typeName string, data []byte) error {
	obj, err := NewObject(typeName, data)
	if err != nil {
		return err
	}
	sec, err := obj.Int64(fieldSec, 0)
	if err != nil {
		return err
	}
	nsec, err := obj.Int64(fieldNanoSec, 0)
	if err != nil {
		return err
	}
	if t.Sec, t.NSec, err = tryNormalizeTemporal(sec, nsec); err != nil {
		return errors.Wrapf(err, "%s: sec=%d nanosec=%d", typeName, sec, nsec)
	}
	return nil
}
