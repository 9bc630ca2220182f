package convert

import (
	"math"

	"github.com/edwinhayes/correctedros/ros"
	"github.com/edwinhayes/correctedros/sensor_msgs"
	"github.com/edwinhayes/correctedros/std_msgs"
)

// Scanner characteristics of the wheelchair lidar.
const (
	LidarAngleIncrementDeg = 1.0
	LidarTimeIncrement     = 0.0002
	LidarScanTime          = 0.2
	LidarRangeMin          = 0.1
	LidarRangeMax          = 12.0
)

// LidarPoint is one reading of a sweep. Distance is in millimetres.
type LidarPoint struct {
	Angle     int
	Distance  float32
	Intensity int
}

// LidarPacket is a full sweep as received from the device. Time is the
// device clock in milliseconds, angles are in degrees.
type LidarPacket struct {
	Time       int64
	StartAngle float64
	EndAngle   float64
	Points     []LidarPoint
}

func degToRad(deg float64) float32 {
	return float32(deg * math.Pi / 180)
}

// msToStamp converts a device time plus clock offset, both in milliseconds.
func msToStamp(timeMs, offsetMs int64) ros.Time {
	return ros.TimeFromNSec((timeMs + offsetMs) * 1000000)
}

// LaserScanFromLidar converts a sweep. offsetMs aligns the device clock with
// the ROS clock.
func LaserScanFromLidar(packet LidarPacket, offsetMs int64) sensor_msgs.LaserScan {
	ranges := make([]float32, len(packet.Points))
	intensities := make([]float32, len(packet.Points))
	for i, p := range packet.Points {
		ranges[i] = p.Distance / 1000
		intensities[i] = float32(p.Intensity)
	}
	logger.Debugf("lidar sweep at %d ms: %d points", packet.Time, len(packet.Points))
	scan := sensor_msgs.LaserScan{
		Header:         std_msgs.NewHeader(msToStamp(packet.Time, offsetMs), FrameLaser),
		AngleMin:       degToRad(packet.StartAngle),
		AngleMax:       degToRad(packet.EndAngle),
		AngleIncrement: degToRad(LidarAngleIncrementDeg),
		TimeIncrement:  LidarTimeIncrement,
		ScanTime:       LidarScanTime,
		RangeMin:       LidarRangeMin,
		RangeMax:       LidarRangeMax,
		Ranges:         ranges,
		Intensities:    intensities,
	}
	return scan
}
