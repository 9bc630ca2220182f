package geometry_msgs

import (
	"encoding/json"

	"github.com/edwinhayes/correctedros/ros"
)

const (
	FieldPosition    = "position"
	FieldOrientation = "orientation"
)

var (
	MsgPose = ros.NewGenericMessageType(
		"geometry_msgs/Pose",
		`# A representation of pose in free space, composed of position and orientation.
Point position
Quaternion orientation
`,
		func() ros.Message { return new(Pose) },
	)
)

type Pose struct {
	Position    Point      `rosmsg:"position:Point"`
	Orientation Quaternion `rosmsg:"orientation:Quaternion"`
}

func NewPose(position Point, orientation Quaternion) Pose {
	return Pose{Position: position, Orientation: orientation}
}

func (m Pose) Type() ros.MessageType {
	return MsgPose
}

func (m Pose) Clone() Pose {
	return Pose{Position: m.Position.Clone(), Orientation: m.Orientation.Clone()}
}

func (m Pose) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Position    Point      `json:"position"`
		Orientation Quaternion `json:"orientation"`
	}{m.Position, m.Orientation})
}

func (m *Pose) UnmarshalJSON(data []byte) error {
	obj, err := ros.NewObject(MsgPose.Name(), data)
	if err != nil {
		return err
	}
	var p Pose
	if err = obj.Decode(FieldPosition, p.Position.UnmarshalJSON); err != nil {
		return err
	}
	if err = obj.Decode(FieldOrientation, p.Orientation.UnmarshalJSON); err != nil {
		return err
	}
	*m = p
	return nil
}

func PoseFromJSON(data []byte) (Pose, error) {
	var m Pose
	err := m.UnmarshalJSON(data)
	return m, err
}

func PoseFromJSONString(s string) (Pose, error) {
	return PoseFromJSON([]byte(s))
}
