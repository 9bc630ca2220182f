package ros

// IMPORT REQUIRED PACKAGES.

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// DEFINE PUBLIC STRUCTURES.

// JsonFloat32 is a float32 whose JSON form survives NaN and infinities.
type JsonFloat32 struct {
	F float32
}

// JsonFloat64 is a float64 whose JSON form survives NaN and infinities.
type JsonFloat64 struct {
	F float64
}

// DEFINE PRIVATE GLOBALS.

var nonFiniteStrings = map[string]float64{
	"nan":       math.NaN(),
	"inf":       math.Inf(1),
	"+inf":      math.Inf(1),
	"-inf":      math.Inf(-1),
	"infinity":  math.Inf(1),
	"+infinity": math.Inf(1),
	"-infinity": math.Inf(-1),
}

// DEFINE PUBLIC STATIC FUNCTIONS.

// JsonFloat32Slice wraps a float32 slice for encoding; nil encodes as [].
func JsonFloat32Slice(values []float32) []JsonFloat32 {
	out := make([]JsonFloat32, len(values))
	for i, v := range values {
		out[i] = JsonFloat32{v}
	}
	return out
}

// DEFINE PRIVATE STATIC FUNCTIONS.

// parseFloatValue converts a single jsonparser value into a float. Numbers
// parse directly, the rosbridge spellings of non-finite values are accepted as
// strings, and null is read as NaN.
func parseFloatValue(value []byte, dataType jsonparser.ValueType) (float64, error) {
	switch dataType {
	case jsonparser.Number:
		return jsonparser.ParseFloat(value)
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return 0, err
		}
		if f, ok := nonFiniteStrings[strings.ToLower(s)]; ok {
			return f, nil
		}
		return 0, errors.Errorf("%q is not a number", s)
	case jsonparser.Null:
		return math.NaN(), nil
	}
	return 0, errors.Errorf("expected number, got %s", dataType)
}

// toFloat32 narrows v, rejecting finite values that would overflow to an
// infinity.
func toFloat32(v float64) (float32, error) {
	if !math.IsInf(v, 0) && !math.IsNaN(v) && math.Abs(v) > math.MaxFloat32 {
		return 0, errors.Errorf("%g overflows float32", v)
	}
	return float32(v), nil
}

// DEFINE PUBLIC RECEIVER FUNCTIONS.

func (f JsonFloat32) String() string {
	return strconv.FormatFloat(float64(f.F), 'f', 5, 32)
}

func (f JsonFloat32) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f.F)) {
		return json.Marshal("nan")
	} else if math.IsInf(float64(f.F), 1) {
		return json.Marshal("+inf")
	} else if math.IsInf(float64(f.F), -1) {
		return json.Marshal("-inf")
	}
	return json.Marshal(f.F)
}

func (f *JsonFloat32) UnmarshalJSON(data []byte) error {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return err
	}
	v, err := parseFloatValue(value, dataType)
	if err != nil {
		return err
	}
	f.F, err = toFloat32(v)
	return err
}

func (f JsonFloat64) String() string {
	return strconv.FormatFloat(f.F, 'f', 5, 64)
}

func (f JsonFloat64) MarshalJSON() ([]byte, error) {
	if math.IsNaN(f.F) {
		return json.Marshal("nan")
	} else if math.IsInf(f.F, 1) {
		return json.Marshal("+inf")
	} else if math.IsInf(f.F, -1) {
		return json.Marshal("-inf")
	}
	return json.Marshal(f.F)
}

func (f *JsonFloat64) UnmarshalJSON(data []byte) error {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return err
	}
	v, err := parseFloatValue(value, dataType)
	if err != nil {
		return err
	}
	f.F = v
	return nil
}

// ALL DONE.
