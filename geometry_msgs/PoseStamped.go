package geometry_msgs

import (
	"encoding/json"

	"github.com/edwinhayes/correctedros/ros"
	"github.com/edwinhayes/correctedros/std_msgs"
)

const FieldPose = "pose"

var (
	MsgPoseStamped = ros.NewGenericMessageType(
		"geometry_msgs/PoseStamped",
		`# A Pose with reference coordinate frame and timestamp
std_msgs/Header header
Pose pose
`,
		func() ros.Message { return new(PoseStamped) },
	)
)

type PoseStamped struct {
	Header std_msgs.Header `rosmsg:"header:Header"`
	Pose   Pose            `rosmsg:"pose:Pose"`
}

func NewPoseStamped(header std_msgs.Header, pose Pose) PoseStamped {
	return PoseStamped{Header: header, Pose: pose}
}

func (m PoseStamped) Type() ros.MessageType {
	return MsgPoseStamped
}

func (m PoseStamped) Clone() PoseStamped {
	return PoseStamped{Header: m.Header.Clone(), Pose: m.Pose.Clone()}
}

func (m PoseStamped) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Header std_msgs.Header `json:"header"`
		Pose   Pose            `json:"pose"`
	}{m.Header, m.Pose})
}

func (m *PoseStamped) UnmarshalJSON(data []byte) error {
	obj, err := ros.NewObject(MsgPoseStamped.Name(), data)
	if err != nil {
		return err
	}
	var s PoseStamped
	if err = obj.Decode(FieldHeader, s.Header.UnmarshalJSON); err != nil {
		return err
	}
	if err = obj.Decode(FieldPose, s.Pose.UnmarshalJSON); err != nil {
		return err
	}
	*m = s
	return nil
}

func PoseStampedFromJSON(data []byte) (PoseStamped, error) {
	var m PoseStamped
	err := m.UnmarshalJSON(data)
	return m, err
}

func PoseStampedFromJSONString(s string) (PoseStamped, error) {
	return PoseStampedFromJSON([]byte(s))
}
