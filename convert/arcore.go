// Package convert turns device readings (phone pose, lidar sweeps, wheel
// speed) into corrected ROS messages, and tracks incoming control commands.
package convert

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/edwinhayes/correctedros/geometry_msgs"
	"github.com/edwinhayes/correctedros/ros"
	"github.com/edwinhayes/correctedros/std_msgs"
)

// Frame ids stamped on converted messages.
const (
	FramePhone     = "phone_frame"
	FrameLaser     = "laser_frame"
	FrameWheel     = "wheel_frame"
	FrameHeartbeat = "heartbeat"
)

// ARCoreToROS maps a vector from the ARCore axes (x right, y up, z towards
// the viewer) to the ROS body axes (x forward out of the back of the phone,
// y left, z up).
func ARCoreToROS(v r3.Vector) r3.Vector {
	return r3.Vector{X: -v.Z, Y: -v.X, Z: v.Y}
}

// ARCoreQuaternionToROS applies the same axis change to the vector part of
// q. The real part is unchanged.
func ARCoreQuaternionToROS(q quat.Number) quat.Number {
	return quat.Number{Real: q.Real, Imag: -q.Kmag, Jmag: -q.Imag, Kmag: q.Jmag}
}

// PoseFromARCore builds the phone pose message from an ARCore translation and
// rotation, both still in ARCore axes.
func PoseFromARCore(translation r3.Vector, rotation quat.Number, stampNs int64) geometry_msgs.PoseStamped {
	header := std_msgs.NewHeader(ros.TimeFromNSec(stampNs), FramePhone)
	pose := geometry_msgs.NewPose(
		geometry_msgs.PointFromVector(ARCoreToROS(translation)),
		geometry_msgs.QuaternionFromNumber(ARCoreQuaternionToROS(rotation)),
	)
	return geometry_msgs.NewPoseStamped(header, pose)
}

// HeartbeatHeader is the liveness message published while connected.
func HeartbeatHeader(stampNs int64) std_msgs.Header {
	return std_msgs.NewHeader(ros.TimeFromNSec(stampNs), FrameHeartbeat)
}

// CommandFeedbackHeader acknowledges a command. The command name travels in
// frame_id.
func CommandFeedbackHeader(command string, stampNs int64) std_msgs.Header {
	return std_msgs.NewHeader(ros.TimeFromNSec(stampNs), command)
}
