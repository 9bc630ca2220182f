package geometry_msgs

import (
	"encoding/json"

	"github.com/edwinhayes/correctedros/ros"
)

const (
	FieldLinear  = "linear"
	FieldAngular = "angular"
)

var (
	MsgTwist = ros.NewGenericMessageType(
		"geometry_msgs/Twist",
		`# This expresses velocity in free space broken into its linear and angular parts.
Vector3 linear
Vector3 angular
`,
		func() ros.Message { return new(Twist) },
	)
)

type Twist struct {
	Linear  Vector3 `rosmsg:"linear:Vector3"`
	Angular Vector3 `rosmsg:"angular:Vector3"`
}

func NewTwist(linear, angular Vector3) Twist {
	return Twist{Linear: linear, Angular: angular}
}

func (m Twist) Type() ros.MessageType {
	return MsgTwist
}

func (m Twist) Clone() Twist {
	return Twist{Linear: m.Linear.Clone(), Angular: m.Angular.Clone()}
}

func (m Twist) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Linear  Vector3 `json:"linear"`
		Angular Vector3 `json:"angular"`
	}{m.Linear, m.Angular})
}

func (m *Twist) UnmarshalJSON(data []byte) error {
	obj, err := ros.NewObject(MsgTwist.Name(), data)
	if err != nil {
		return err
	}
	var t Twist
	if err = obj.Decode(FieldLinear, t.Linear.UnmarshalJSON); err != nil {
		return err
	}
	if err = obj.Decode(FieldAngular, t.Angular.UnmarshalJSON); err != nil {
		return err
	}
	*m = t
	return nil
}

func TwistFromJSON(data []byte) (Twist, error) {
	var m Twist
	err := m.UnmarshalJSON(data)
	return m, err
}

func TwistFromJSONString(s string) (Twist, error) {
	return TwistFromJSON([]byte(s))
}
