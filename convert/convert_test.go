package convert

import (
	"math"
	"testing"
	"time"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"

	"github.com/edwinhayes/correctedros/geometry_msgs"
	"github.com/edwinhayes/correctedros/ros"
	"github.com/edwinhayes/correctedros/std_msgs"
)

func TestARCoreToROS(t *testing.T) {
	assert.Equal(t, r3.Vector{X: -3, Y: -1, Z: 2}, ARCoreToROS(r3.Vector{X: 1, Y: 2, Z: 3}))

	// Camera looking forward (ARCore -z) is ROS +x.
	assert.Equal(t, r3.Vector{X: 1, Y: 0, Z: 0}, ARCoreToROS(r3.Vector{X: 0, Y: 0, Z: -1}))

	q := ARCoreQuaternionToROS(quat.Number{Real: 0.5, Imag: 0.1, Jmag: 0.2, Kmag: 0.3})
	assert.Equal(t, quat.Number{Real: 0.5, Imag: -0.3, Jmag: -0.1, Kmag: 0.2}, q)
}

func TestPoseFromARCore(t *testing.T) {
	msg := PoseFromARCore(r3.Vector{X: 1, Y: 2, Z: 3}, quat.Number{Real: 1}, 1500000000)
	assert.Equal(t, FramePhone, msg.Header.FrameId)
	assert.Equal(t, ros.NewTime(1, 500000000), msg.Header.Stamp)
	assert.Equal(t, geometry_msgs.NewPoint(-3, -1, 2), msg.Pose.Position)
	assert.Equal(t, 1.0, msg.Pose.Orientation.W)
}

func TestHeaders(t *testing.T) {
	h := HeartbeatHeader(2000000001)
	assert.Equal(t, std_msgs.NewHeader(ros.NewTime(2, 1), "heartbeat"), h)

	h = CommandFeedbackHeader("STOP", 5)
	assert.Equal(t, "STOP", h.FrameId)
	assert.Equal(t, int64(5), h.Stamp.ToNSec())
}

func TestLaserScanFromLidar(t *testing.T) {
	packet := LidarPacket{
		Time:       1000,
		StartAngle: 0,
		EndAngle:   180,
		Points: []LidarPoint{
			{Angle: 0, Distance: 1500, Intensity: 10},
			{Angle: 1, Distance: 250, Intensity: 0},
		},
	}
	scan := LaserScanFromLidar(packet, 500)

	assert.Equal(t, FrameLaser, scan.Header.FrameId)
	assert.Equal(t, ros.TimeFromNSec(1500*int64(time.Millisecond)), scan.Header.Stamp)
	assert.Equal(t, float32(0), scan.AngleMin)
	assert.InDelta(t, math.Pi, scan.AngleMax, 1e-6)
	assert.InDelta(t, math.Pi/180, scan.AngleIncrement, 1e-7)
	assert.Equal(t, float32(0.0002), scan.TimeIncrement)
	assert.Equal(t, float32(0.2), scan.ScanTime)
	assert.Equal(t, float32(0.1), scan.RangeMin)
	assert.Equal(t, float32(12), scan.RangeMax)
	assert.Equal(t, []float32{1.5, 0.25}, scan.Ranges)
	assert.Equal(t, []float32{10, 0}, scan.Intensities)
}

func TestLaserScanFromEmptySweep(t *testing.T) {
	scan := LaserScanFromLidar(LidarPacket{}, 0)
	require.NotNil(t, scan.Ranges)
	require.NotNil(t, scan.Intensities)
	assert.Empty(t, scan.Ranges)
	assert.False(t, scan.Header.Stamp.IsValid())
}

func TestTwistFromWheelSpeed(t *testing.T) {
	msg := TwistFromWheelSpeed(7.2, 250, 750)
	assert.Equal(t, FrameWheel, msg.Header.FrameId)
	assert.Equal(t, ros.NewTime(1, 0), msg.Header.Stamp)
	assert.InDelta(t, 2.0, msg.Twist.Linear.X, 1e-12)
	assert.Equal(t, geometry_msgs.Vector3{}, msg.Twist.Angular)
}

func command(linear, angular float64, sec int32, nsec uint32) geometry_msgs.TwistStamped {
	return geometry_msgs.NewTwistStamped(
		std_msgs.NewHeader(ros.NewTime(sec, nsec), ""),
		geometry_msgs.NewTwist(geometry_msgs.NewVector3(linear, 0, 0), geometry_msgs.NewVector3(0, 0, angular)),
	)
}

func TestControlTracker(t *testing.T) {
	var tracker ControlTracker

	_, ok := tracker.Update(command(1, 0.5, 10, 0))
	assert.False(t, ok, "first command only primes the tracker")

	cmd, ok := tracker.Update(command(0.8, -0.2, 10, 100000000))
	require.True(t, ok)
	assert.Equal(t, 0.8, cmd.Linear)
	assert.Equal(t, -0.2, cmd.Angular)
	assert.Equal(t, 100*time.Millisecond, cmd.Period.ToGoDuration())

	cmd, ok = tracker.Update(command(0, 0, 11, 0))
	require.True(t, ok)
	assert.Equal(t, ros.NewDuration(0, 900000000), cmd.Period)

	tracker.Reset()
	_, ok = tracker.Update(command(0, 0, 12, 0))
	assert.False(t, ok)
}

func TestControlTrackerIgnoresZeroStamp(t *testing.T) {
	var tracker ControlTracker
	_, ok := tracker.Update(command(1, 0, 0, 0))
	assert.False(t, ok)
	_, ok = tracker.Update(command(1, 0, 1, 0))
	assert.False(t, ok)
	_, ok = tracker.Update(command(1, 0, 2, 0))
	assert.True(t, ok)
}
