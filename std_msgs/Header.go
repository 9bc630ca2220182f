// Package std_msgs holds the corrected std_msgs/Header message.
package std_msgs

import (
	"encoding/json"

	"github.com/edwinhayes/correctedros/ros"
)

const (
	FieldStamp   = "stamp"
	FieldFrameId = "frame_id"
)

var (
	MsgHeader = ros.NewGenericMessageType(
		"std_msgs/Header",
		`# Standard metadata for higher-level stamped data types.
# This is generally used to communicate timestamped data
# in a particular coordinate frame.

# Two-integer timestamp that is expressed as seconds and nanoseconds.
builtin_interfaces/Time stamp

# Transform frame with which this data is associated.
string frame_id
`,
		func() ros.Message { return new(Header) },
	)
)

// Header carries a timestamp and a coordinate frame. Unlike the upstream
// client it has no seq field and its stamp uses sec/nanosec keys.
type Header struct {
	Stamp   ros.Time `rosmsg:"stamp:time"`
	FrameId string   `rosmsg:"frame_id:string"`
}

func NewHeader(stamp ros.Time, frameId string) Header {
	return Header{Stamp: stamp, FrameId: frameId}
}

func (m Header) Type() ros.MessageType {
	return MsgHeader
}

func (m Header) Clone() Header {
	return Header{Stamp: m.Stamp.Clone(), FrameId: m.FrameId}
}

func (m Header) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Stamp   ros.Time `json:"stamp"`
		FrameId string   `json:"frame_id"`
	}{m.Stamp, m.FrameId})
}

func (m *Header) UnmarshalJSON(data []byte) error {
	obj, err := ros.NewObject(MsgHeader.Name(), data)
	if err != nil {
		return err
	}
	var h Header
	if err = obj.Decode(FieldStamp, h.Stamp.UnmarshalJSON); err != nil {
		return err
	}
	if h.FrameId, err = obj.String(FieldFrameId, ""); err != nil {
		return err
	}
	*m = h
	return nil
}

func HeaderFromJSON(data []byte) (Header, error) {
	var m Header
	err := m.UnmarshalJSON(data)
	return m, err
}

func HeaderFromJSONString(s string) (Header, error) {
	return HeaderFromJSON([]byte(s))
}
