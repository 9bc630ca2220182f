// Package rosbridge builds and parses the rosbridge v2 JSON operations used to
// carry corrected messages. It does not open connections.
package rosbridge

import (
	"encoding/json"

	"github.com/buger/jsonparser"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/edwinhayes/correctedros/ros"
)

// Operation names understood by rosbridge_server.
const (
	OpAdvertise   = "advertise"
	OpUnadvertise = "unadvertise"
	OpPublish     = "publish"
	OpSubscribe   = "subscribe"
	OpUnsubscribe = "unsubscribe"
)

const (
	fieldOp    = "op"
	fieldID    = "id"
	fieldTopic = "topic"
	fieldType  = "type"
	fieldMsg   = "msg"
)

// Operation is one parsed rosbridge operation. Msg holds the raw payload of a
// publish and is nil for the other operations.
type Operation struct {
	Op    string
	ID    string
	Topic string
	Type  string
	Msg   []byte
}

type envelope struct {
	Op    string      `json:"op"`
	ID    string      `json:"id,omitempty"`
	Topic string      `json:"topic"`
	Type  string      `json:"type,omitempty"`
	Msg   ros.Message `json:"msg,omitempty"`
}

func newID(op string, topic string) string {
	return op + ":" + topic + ":" + uuid.New().String()
}

// encode fills in the id and the global form of the topic. Relative topic
// names are resolved against the root namespace.
func encode(e envelope) ([]byte, error) {
	topic, err := ros.ResolveTopic(e.Topic, ros.GlobalNS)
	if err != nil {
		return nil, errors.Wrap(err, e.Op)
	}
	e.Topic = topic
	e.ID = newID(e.Op, e.Topic)
	data, err := json.Marshal(e)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", e.Op, e.Topic)
	}
	logger.Debugf("rosbridge %s on %s", e.Op, e.Topic)
	return data, nil
}

// Advertise announces that msgType will be published on topic.
func Advertise(topic string, msgType ros.MessageType) ([]byte, error) {
	if msgType == nil {
		return nil, errors.Errorf("%s: nil message type", OpAdvertise)
	}
	return encode(envelope{Op: OpAdvertise, Topic: topic, Type: msgType.Name()})
}

func Unadvertise(topic string) ([]byte, error) {
	return encode(envelope{Op: OpUnadvertise, Topic: topic})
}

// Publish wraps msg for sending on topic.
func Publish(topic string, msg ros.Message) ([]byte, error) {
	if msg == nil {
		return nil, errors.Errorf("%s: nil message", OpPublish)
	}
	return encode(envelope{Op: OpPublish, Topic: topic, Msg: msg})
}

func Subscribe(topic string, msgType ros.MessageType) ([]byte, error) {
	if msgType == nil {
		return nil, errors.Errorf("%s: nil message type", OpSubscribe)
	}
	return encode(envelope{Op: OpSubscribe, Topic: topic, Type: msgType.Name()})
}

func Unsubscribe(topic string) ([]byte, error) {
	return encode(envelope{Op: OpUnsubscribe, Topic: topic})
}

// ParseOperation reads an incoming operation. Only "op" is required; the
// remaining keys default to empty.
func ParseOperation(data []byte) (Operation, error) {
	obj, err := ros.NewObject("rosbridge operation", data)
	if err != nil {
		return Operation{}, err
	}
	var o Operation
	if o.Op, err = obj.String(fieldOp, ""); err != nil {
		return Operation{}, err
	}
	if o.Op == "" {
		return Operation{}, errors.New("rosbridge operation: missing op")
	}
	for _, f := range []struct {
		key   string
		value *string
	}{
		{fieldID, &o.ID},
		{fieldTopic, &o.Topic},
		{fieldType, &o.Type},
	} {
		if *f.value, err = obj.String(f.key, ""); err != nil {
			return Operation{}, err
		}
	}
	if obj.Has(fieldMsg) {
		value, dataType, _, err := jsonparser.Get(data, fieldMsg)
		if err != nil {
			return Operation{}, errors.Wrap(err, "rosbridge operation: msg")
		}
		if dataType != jsonparser.Object {
			return Operation{}, errors.Errorf("rosbridge operation: msg: expected object, got %s", dataType)
		}
		o.Msg = value
	}
	return o, nil
}

// Decode parses the payload of a publish into msg. Missing fields take their
// defaults.
func (o Operation) Decode(msg ros.Message) error {
	if o.Msg == nil {
		return errors.Errorf("%s %s: no msg payload", o.Op, o.Topic)
	}
	if err := msg.UnmarshalJSON(o.Msg); err != nil {
		return errors.Wrapf(err, "%s %s", o.Op, o.Topic)
	}
	return nil
}
