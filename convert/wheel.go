package convert

import (
	"github.com/edwinhayes/correctedros/geometry_msgs"
	"github.com/edwinhayes/correctedros/std_msgs"
)

const kmhPerMetrePerSecond = 3.6

// TwistFromWheelSpeed reports the wheelchair speed as a forward velocity in
// m/s. Steering is not measured, so angular velocity stays zero.
func TwistFromWheelSpeed(speedKmh float64, timeMs, offsetMs int64) geometry_msgs.TwistStamped {
	header := std_msgs.NewHeader(msToStamp(timeMs, offsetMs), FrameWheel)
	linear := geometry_msgs.NewVector3(speedKmh/kmhPerMetrePerSecond, 0, 0)
	return geometry_msgs.NewTwistStamped(header, geometry_msgs.NewTwist(linear, geometry_msgs.Vector3{}))
}
