package geometry_msgs

import (
	"encoding/json"

	"github.com/edwinhayes/correctedros/ros"
	"github.com/edwinhayes/correctedros/std_msgs"
)

const (
	FieldHeader = "header"
	FieldPoint  = "point"
)

var (
	MsgPointStamped = ros.NewGenericMessageType(
		"geometry_msgs/PointStamped",
		`# This represents a Point with reference coordinate frame and timestamp
std_msgs/Header header
Point point
`,
		func() ros.Message { return new(PointStamped) },
	)
)

type PointStamped struct {
	Header std_msgs.Header `rosmsg:"header:Header"`
	Point  Point           `rosmsg:"point:Point"`
}

func NewPointStamped(header std_msgs.Header, point Point) PointStamped {
	return PointStamped{Header: header, Point: point}
}

func (m PointStamped) Type() ros.MessageType {
	return MsgPointStamped
}

func (m PointStamped) Clone() PointStamped {
	return PointStamped{Header: m.Header.Clone(), Point: m.Point.Clone()}
}

func (m PointStamped) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Header std_msgs.Header `json:"header"`
		Point  Point           `json:"point"`
	}{m.Header, m.Point})
}

func (m *PointStamped) UnmarshalJSON(data []byte) error {
	obj, err := ros.NewObject(MsgPointStamped.Name(), data)
	if err != nil {
		return err
	}
	var s PointStamped
	if err = obj.Decode(FieldHeader, s.Header.UnmarshalJSON); err != nil {
		return err
	}
	if err = obj.Decode(FieldPoint, s.Point.UnmarshalJSON); err != nil {
		return err
	}
	*m = s
	return nil
}

func PointStampedFromJSON(data []byte) (PointStamped, error) {
	var m PointStamped
	err := m.UnmarshalJSON(data)
	return m, err
}

func PointStampedFromJSONString(s string) (PointStamped, error) {
	return PointStampedFromJSON([]byte(s))
}
