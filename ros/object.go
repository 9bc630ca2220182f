package ros

import (
	"encoding/json"
	"math"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// Object reads the fields of one JSON object. Every accessor takes the value
// to use when the key is absent (or null); a present value of the wrong type
// is an error wrapped with the message type and key.
type Object struct {
	typeName string
	data     []byte
}

// NewObject checks that data holds a JSON object and wraps it for reading.
func NewObject(typeName string, data []byte) (Object, error) {
	// jsonparser scans leniently, so syntax is checked up front.
	if !json.Valid(data) {
		return Object{}, errors.Errorf("%s: malformed JSON", typeName)
	}
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return Object{}, errors.Wrapf(err, "%s: malformed JSON", typeName)
	}
	if dataType != jsonparser.Object {
		return Object{}, errors.Errorf("%s: expected JSON object, got %s", typeName, dataType)
	}
	return Object{typeName: typeName, data: value}, nil
}

// TypeName is the message type the object is being read as.
func (o Object) TypeName() string {
	return o.typeName
}

// Has reports whether key is present with a non-null value.
func (o Object) Has(key string) bool {
	_, dataType, _, err := jsonparser.Get(o.data, key)
	return err == nil && dataType != jsonparser.Null
}

// lookup returns the raw value of key, or ok == false when the key is absent
// or null.
func (o Object) lookup(key string) (value []byte, dataType jsonparser.ValueType, ok bool, err error) {
	value, dataType, _, err = jsonparser.Get(o.data, key)
	if err == jsonparser.KeyPathNotFoundError || (err == nil && dataType == jsonparser.Null) {
		logger.Debugf("%s: field %q missing, using default", o.typeName, key)
		return nil, jsonparser.NotExist, false, nil
	}
	if err != nil {
		return nil, dataType, false, o.wrap(err, key)
	}
	return value, dataType, true, nil
}

func (o Object) wrap(err error, key string) error {
	return errors.Wrapf(err, "%s: field %q", o.typeName, key)
}

func (o Object) mismatch(key string, want string, got jsonparser.ValueType) error {
	return errors.Errorf("%s: field %q: expected %s, got %s", o.typeName, key, want, got)
}

// Int64 reads an integer field.
func (o Object) Int64(key string, def int64) (int64, error) {
	value, dataType, ok, err := o.lookup(key)
	if err != nil || !ok {
		return def, err
	}
	if dataType != jsonparser.Number {
		return def, o.mismatch(key, "integer", dataType)
	}
	v, err := jsonparser.ParseInt(value)
	if err != nil {
		return def, o.wrap(err, key)
	}
	return v, nil
}

// Int32 reads an integer field that must fit in 32 bits.
func (o Object) Int32(key string, def int32) (int32, error) {
	v, err := o.Int64(key, int64(def))
	if err != nil {
		return def, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return def, errors.Errorf("%s: field %q: %d overflows int32", o.typeName, key, v)
	}
	return int32(v), nil
}

// Float64 reads a floating point field. Non-finite spellings are accepted.
func (o Object) Float64(key string, def float64) (float64, error) {
	value, dataType, ok, err := o.lookup(key)
	if err != nil || !ok {
		return def, err
	}
	v, err := parseFloatValue(value, dataType)
	if err != nil {
		return def, o.wrap(err, key)
	}
	return v, nil
}

// Float32 reads a floating point field as float32. Finite values beyond the
// float32 range are an error.
func (o Object) Float32(key string, def float32) (float32, error) {
	v, err := o.Float64(key, float64(def))
	if err != nil {
		return def, err
	}
	f, err := toFloat32(v)
	if err != nil {
		return def, o.wrap(err, key)
	}
	return f, nil
}

// String reads a string field.
func (o Object) String(key string, def string) (string, error) {
	value, dataType, ok, err := o.lookup(key)
	if err != nil || !ok {
		return def, err
	}
	if dataType != jsonparser.String {
		return def, o.mismatch(key, "string", dataType)
	}
	s, err := jsonparser.ParseString(value)
	if err != nil {
		return def, o.wrap(err, key)
	}
	return s, nil
}

// Decode hands a nested object to parse. When the key is absent parse is not
// called and the caller keeps its default.
func (o Object) Decode(key string, parse func([]byte) error) error {
	value, dataType, ok, err := o.lookup(key)
	if err != nil || !ok {
		return err
	}
	if dataType != jsonparser.Object {
		return o.mismatch(key, "object", dataType)
	}
	if err := parse(value); err != nil {
		return o.wrap(err, key)
	}
	return nil
}

// Float32Array reads a numeric array. An absent key yields an empty slice.
func (o Object) Float32Array(key string) ([]float32, error) {
	out := []float32{}
	value, dataType, ok, err := o.lookup(key)
	if err != nil || !ok {
		return out, err
	}
	if dataType != jsonparser.Array {
		return out, o.mismatch(key, "array", dataType)
	}
	var elemErr error
	_, err = jsonparser.ArrayEach(value, func(elem []byte, elemType jsonparser.ValueType, _ int, err error) {
		if elemErr != nil {
			return
		}
		if err != nil {
			elemErr = err
			return
		}
		f, err := parseFloatValue(elem, elemType)
		if err == nil {
			var f32 float32
			if f32, err = toFloat32(f); err == nil {
				out = append(out, f32)
				return
			}
		}
		elemErr = errors.Wrapf(err, "element %d", len(out))
	})
	if err == nil {
		err = elemErr
	}
	if err != nil {
		return []float32{}, o.wrap(err, key)
	}
	return out, nil
}
