package ros

import (
	"bytes"
	"encoding/json"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// Keys written by the upstream rosbridge client for time primitives and
// headers.
const (
	legacyFieldSecs  = "secs"
	legacyFieldNSecs = "nsecs"
	legacyFieldSeq   = "seq"
	fieldStamp       = "stamp"
)

// UpgradeLegacyJSON rewrites a message encoded by the upstream client into the
// corrected key set: "secs"/"nsecs" become "sec"/"nanosec" and the header
// "seq" counter is dropped. Key order is preserved.
func UpgradeLegacyJSON(data []byte) ([]byte, error) {
	if !json.Valid(data) {
		return nil, errors.New("malformed JSON")
	}
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(err, "malformed JSON")
	}
	var buf bytes.Buffer
	if err := upgradeValue(&buf, value, dataType); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func upgradeValue(buf *bytes.Buffer, value []byte, dataType jsonparser.ValueType) error {
	switch dataType {
	case jsonparser.Object:
		return upgradeObject(buf, value)
	case jsonparser.Array:
		return upgradeArray(buf, value)
	case jsonparser.String:
		// jsonparser hands strings back unquoted but still escaped.
		buf.WriteByte('"')
		buf.Write(value)
		buf.WriteByte('"')
	default:
		buf.Write(value)
	}
	return nil
}

func upgradeObject(buf *bytes.Buffer, value []byte) error {
	_, _, _, stampErr := jsonparser.Get(value, fieldStamp)
	isHeader := stampErr == nil

	buf.WriteByte('{')
	first := true
	err := jsonparser.ObjectEach(value, func(key []byte, v []byte, dt jsonparser.ValueType, _ int) error {
		name := string(key)
		switch name {
		case legacyFieldSecs:
			name = fieldSec
		case legacyFieldNSecs:
			name = fieldNanoSec
		case legacyFieldSeq:
			if isHeader {
				return nil
			}
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		// ObjectEach hands keys back unescaped.
		quoted, err := json.Marshal(name)
		if err != nil {
			return err
		}
		buf.Write(quoted)
		buf.WriteByte(':')
		return upgradeValue(buf, v, dt)
	})
	if err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

func upgradeArray(buf *bytes.Buffer, value []byte) error {
	buf.WriteByte('[')
	var elemErr error
	i := 0
	_, err := jsonparser.ArrayEach(value, func(v []byte, dt jsonparser.ValueType, _ int, err error) {
		if elemErr != nil {
			return
		}
		if err != nil {
			elemErr = err
			return
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		elemErr = upgradeValue(buf, v, dt)
	})
	if err == nil {
		err = elemErr
	}
	if err != nil {
		return err
	}
	buf.WriteByte(']')
	return nil
}
