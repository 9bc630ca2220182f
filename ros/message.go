package ros

import (
	"encoding/json"
)

// MessageType describes a message schema: its ROS type name and its
// definition text.
type MessageType interface {
	Text() string
	Name() string
	NewMessage() Message
}

// Message is a JSON-backed ROS message as carried by rosbridge.
type Message interface {
	Type() MessageType
	json.Marshaler
	json.Unmarshaler
}

// GenericMessageType is a MessageType built from a type name and definition
// text. The message packages declare one per message.
type GenericMessageType struct {
	rosType    string
	text       string
	newMessage func() Message
}

// NewGenericMessageType declares a message type.
func NewGenericMessageType(rosType string, text string, newMessage func() Message) *GenericMessageType {
	return &GenericMessageType{rosType: rosType, text: text, newMessage: newMessage}
}

func (m *GenericMessageType) Name() string {
	return m.rosType
}

func (m *GenericMessageType) Text() string {
	return m.text
}

func (m *GenericMessageType) NewMessage() Message {
	return m.newMessage()
}

// Fields parses the definition text.
func (m *GenericMessageType) Fields() ([]FieldSpec, error) {
	return ParseMsgSpec(m.text)
}

// MessageFromJSON parses data into a fresh message of the given type.
func MessageFromJSON(msgType MessageType, data []byte) (Message, error) {
	msg := msgType.NewMessage()
	if err := msg.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return msg, nil
}
