package geometry_msgs

import (
	"encoding/json"

	"github.com/golang/geo/r3"

	"github.com/edwinhayes/correctedros/ros"
)

var (
	MsgPoint = ros.NewGenericMessageType(
		"geometry_msgs/Point",
		`# This contains the position of a point in free space
float64 x
float64 y
float64 z
`,
		func() ros.Message { return new(Point) },
	)
)

type Point struct {
	X float64 `rosmsg:"x:float64"`
	Y float64 `rosmsg:"y:float64"`
	Z float64 `rosmsg:"z:float64"`
}

func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func PointFromVector(v r3.Vector) Point {
	return Point{X: v.X, Y: v.Y, Z: v.Z}
}

func (m Point) Vector() r3.Vector {
	return r3.Vector{X: m.X, Y: m.Y, Z: m.Z}
}

func (m Point) Type() ros.MessageType {
	return MsgPoint
}

func (m Point) Clone() Point {
	return m
}

func (m Point) MarshalJSON() ([]byte, error) {
	return marshalXYZ(m.X, m.Y, m.Z)
}

func (m *Point) UnmarshalJSON(data []byte) error {
	x, y, z, err := unmarshalXYZ(MsgPoint.Name(), data)
	if err != nil {
		return err
	}
	*m = Point{X: x, Y: y, Z: z}
	return nil
}

func PointFromJSON(data []byte) (Point, error) {
	var m Point
	err := m.UnmarshalJSON(data)
	return m, err
}

func PointFromJSONString(s string) (Point, error) {
	return PointFromJSON([]byte(s))
}

// marshalXYZ and unmarshalXYZ are shared by Point and Vector3, which have the
// same wire layout.
func marshalXYZ(x, y, z float64) ([]byte, error) {
	return json.Marshal(struct {
		X ros.JsonFloat64 `json:"x"`
		Y ros.JsonFloat64 `json:"y"`
		Z ros.JsonFloat64 `json:"z"`
	}{ros.JsonFloat64{F: x}, ros.JsonFloat64{F: y}, ros.JsonFloat64{F: z}})
}

func unmarshalXYZ(typeName string, data []byte) (x, y, z float64, err error) {
	obj, err := ros.NewObject(typeName, data)
	if err != nil {
		return 0, 0, 0, err
	}
	if x, err = obj.Float64("x", 0); err != nil {
		return 0, 0, 0, err
	}
	if y, err = obj.Float64("y", 0); err != nil {
		return 0, 0, 0, err
	}
	if z, err = obj.Float64("z", 0); err != nil {
		return 0, 0, 0, err
	}
	return x, y, z, nil
}
