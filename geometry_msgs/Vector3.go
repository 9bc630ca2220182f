package geometry_msgs

import (
	"github.com/golang/geo/r3"

	"github.com/edwinhayes/correctedros/ros"
)

var (
	MsgVector3 = ros.NewGenericMessageType(
		"geometry_msgs/Vector3",
		`# This represents a vector in free space.
float64 x
float64 y
float64 z
`,
		func() ros.Message { return new(Vector3) },
	)
)

type Vector3 struct {
	X float64 `rosmsg:"x:float64"`
	Y float64 `rosmsg:"y:float64"`
	Z float64 `rosmsg:"z:float64"`
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func Vector3FromVector(v r3.Vector) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func (m Vector3) Vector() r3.Vector {
	return r3.Vector{X: m.X, Y: m.Y, Z: m.Z}
}

func (m Vector3) Type() ros.MessageType {
	return MsgVector3
}

func (m Vector3) Clone() Vector3 {
	return m
}

func (m Vector3) MarshalJSON() ([]byte, error) {
	return marshalXYZ(m.X, m.Y, m.Z)
}

func (m *Vector3) UnmarshalJSON(data []byte) error {
	x, y, z, err := unmarshalXYZ(MsgVector3.Name(), data)
	if err != nil {
		return err
	}
	*m = Vector3{X: x, Y: y, Z: z}
	return nil
}

func Vector3FromJSON(data []byte) (Vector3, error) {
	var m Vector3
	err := m.UnmarshalJSON(data)
	return m, err
}

func Vector3FromJSONString(s string) (Vector3, error) {
	return Vector3FromJSON([]byte(s))
}
