package main

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/edwinhayes/correctedros/geometry_msgs"
	"github.com/edwinhayes/correctedros/ros"
	"github.com/edwinhayes/correctedros/sensor_msgs"
	"github.com/edwinhayes/correctedros/std_msgs"
)

var registry = map[string]*ros.GenericMessageType{}

func register(types ...*ros.GenericMessageType) {
	for _, t := range types {
		registry[t.Name()] = t
	}
}

func init() {
	register(
		std_msgs.MsgHeader,
		geometry_msgs.MsgPoint,
		geometry_msgs.MsgVector3,
		geometry_msgs.MsgQuaternion,
		geometry_msgs.MsgPose,
		geometry_msgs.MsgTwist,
		geometry_msgs.MsgPointStamped,
		geometry_msgs.MsgPoseStamped,
		geometry_msgs.MsgTwistStamped,
		sensor_msgs.MsgLaserScan,
	)
}

// lookupType accepts both "pkg/Name" and the ROS 2 "pkg/msg/Name" spelling.
func lookupType(name string) (*ros.GenericMessageType, error) {
	name = strings.Replace(name, "/msg/", "/", 1)
	t, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown message type %q", name)
	}
	return t, nil
}

func typeNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
