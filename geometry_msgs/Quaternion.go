package geometry_msgs

import (
	"encoding/json"

	"gonum.org/v1/gonum/num/quat"

	"github.com/edwinhayes/correctedros/ros"
)

var (
	MsgQuaternion = ros.NewGenericMessageType(
		"geometry_msgs/Quaternion",
		`# This represents an orientation in free space in quaternion form.
float64 x
float64 y
float64 z
float64 w
`,
		func() ros.Message { return new(Quaternion) },
	)
)

// Quaternion defaults to all zeros when parsed from an empty object, like
// every other field of the corrected messages.
type Quaternion struct {
	X float64 `rosmsg:"x:float64"`
	Y float64 `rosmsg:"y:float64"`
	Z float64 `rosmsg:"z:float64"`
	W float64 `rosmsg:"w:float64"`
}

func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

func QuaternionFromNumber(q quat.Number) Quaternion {
	return Quaternion{X: q.Imag, Y: q.Jmag, Z: q.Kmag, W: q.Real}
}

func (m Quaternion) Number() quat.Number {
	return quat.Number{Real: m.W, Imag: m.X, Jmag: m.Y, Kmag: m.Z}
}

func (m Quaternion) Type() ros.MessageType {
	return MsgQuaternion
}

func (m Quaternion) Clone() Quaternion {
	return m
}

func (m Quaternion) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X ros.JsonFloat64 `json:"x"`
		Y ros.JsonFloat64 `json:"y"`
		Z ros.JsonFloat64 `json:"z"`
		W ros.JsonFloat64 `json:"w"`
	}{ros.JsonFloat64{F: m.X}, ros.JsonFloat64{F: m.Y}, ros.JsonFloat64{F: m.Z}, ros.JsonFloat64{F: m.W}})
}

func (m *Quaternion) UnmarshalJSON(data []byte) error {
	obj, err := ros.NewObject(MsgQuaternion.Name(), data)
	if err != nil {
		return err
	}
	var q Quaternion
	if q.X, err = obj.Float64("x", 0); err != nil {
		return err
	}
	if q.Y, err = obj.Float64("y", 0); err != nil {
		return err
	}
	if q.Z, err = obj.Float64("z", 0); err != nil {
		return err
	}
	if q.W, err = obj.Float64("w", 0); err != nil {
		return err
	}
	*m = q
	return nil
}

func QuaternionFromJSON(data []byte) (Quaternion, error) {
	var m Quaternion
	err := m.UnmarshalJSON(data)
	return m, err
}

func QuaternionFromJSONString(s string) (Quaternion, error) {
	return QuaternionFromJSON([]byte(s))
}
