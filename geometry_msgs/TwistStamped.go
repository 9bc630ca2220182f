package geometry_msgs

import (
	"encoding/json"

	"github.com/edwinhayes/correctedros/ros"
	"github.com/edwinhayes/correctedros/std_msgs"
)

const FieldTwist = "twist"

var (
	MsgTwistStamped = ros.NewGenericMessageType(
		"geometry_msgs/TwistStamped",
		`# A twist with reference coordinate frame and timestamp
std_msgs/Header header
Twist twist
`,
		func() ros.Message { return new(TwistStamped) },
	)
)

type TwistStamped struct {
	Header std_msgs.Header `rosmsg:"header:Header"`
	Twist  Twist           `rosmsg:"twist:Twist"`
}

func NewTwistStamped(header std_msgs.Header, twist Twist) TwistStamped {
	return TwistStamped{Header: header, Twist: twist}
}

func (m TwistStamped) Type() ros.MessageType {
	return MsgTwistStamped
}

func (m TwistStamped) Clone() TwistStamped {
	return TwistStamped{Header: m.Header.Clone(), Twist: m.Twist.Clone()}
}

func (m TwistStamped) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Header std_msgs.Header `json:"header"`
		Twist  Twist           `json:"twist"`
	}{m.Header, m.Twist})
}

func (m *TwistStamped) UnmarshalJSON(data []byte) error {
	obj, err := ros.NewObject(MsgTwistStamped.Name(), data)
	if err != nil {
		return err
	}
	var s TwistStamped
	if err = obj.Decode(FieldHeader, s.Header.UnmarshalJSON); err != nil {
		return err
	}
	if err = obj.Decode(FieldTwist, s.Twist.UnmarshalJSON); err != nil {
		return err
	}
	*m = s
	return nil
}

func TwistStampedFromJSON(data []byte) (TwistStamped, error) {
	var m TwistStamped
	err := m.UnmarshalJSON(data)
	return m, err
}

func TwistStampedFromJSONString(s string) (TwistStamped, error) {
	return TwistStampedFromJSON([]byte(s))
}
