// Package sensor_msgs holds the corrected sensor_msgs/LaserScan message.
package sensor_msgs

import (
	"encoding/json"

	"github.com/edwinhayes/correctedros/ros"
	"github.com/edwinhayes/correctedros/std_msgs"
)

const (
	FieldHeader         = "header"
	FieldAngleMin       = "angle_min"
	FieldAngleMax       = "angle_max"
	FieldAngleIncrement = "angle_increment"
	FieldTimeIncrement  = "time_increment"
	FieldScanTime       = "scan_time"
	FieldRangeMin       = "range_min"
	FieldRangeMax       = "range_max"
	FieldRanges         = "ranges"
	FieldIntensities    = "intensities"
)

var (
	MsgLaserScan = ros.NewGenericMessageType(
		"sensor_msgs/LaserScan",
		`# Single scan from a planar laser range-finder
#
# If you have another ranging device with different behavior (e.g. a sonar
# array), please find or create a different message, since applications
# will make fairly laser-specific assumptions about this data

std_msgs/Header header   # timestamp in the header is the acquisition time of
                         # the first ray in the scan.
                         #
                         # in frame frame_id, angles are measured around
                         # the positive Z axis (counterclockwise, if Z is up)
                         # with zero angle being forward along the x axis

float32 angle_min        # start angle of the scan [rad]
float32 angle_max        # end angle of the scan [rad]
float32 angle_increment  # angular distance between measurements [rad]

float32 time_increment   # time between measurements [seconds] - if your scanner
                         # is moving, this will be used in interpolating position
                         # of 3d points
float32 scan_time        # time between scans [seconds]

float32 range_min        # minimum range value [m]
float32 range_max        # maximum range value [m]

float32[] ranges         # range data [m]
                         # (Note: values < range_min or > range_max should be discarded)
float32[] intensities    # intensity data [device-specific units].  If your
                         # device does not provide intensities, please leave
                         # the array empty.
`,
		func() ros.Message { return new(LaserScan) },
	)
)

// LaserScan is a single planar range-finder sweep. Ranges and Intensities are
// owned by the value: the constructor and Clone copy them.
type LaserScan struct {
	Header         std_msgs.Header `rosmsg:"header:Header"`
	AngleMin       float32         `rosmsg:"angle_min:float32"`
	AngleMax       float32         `rosmsg:"angle_max:float32"`
	AngleIncrement float32         `rosmsg:"angle_increment:float32"`
	TimeIncrement  float32         `rosmsg:"time_increment:float32"`
	ScanTime       float32         `rosmsg:"scan_time:float32"`
	RangeMin       float32         `rosmsg:"range_min:float32"`
	RangeMax       float32         `rosmsg:"range_max:float32"`
	Ranges         []float32       `rosmsg:"ranges:float32[]"`
	Intensities    []float32       `rosmsg:"intensities:float32[]"`
}

func NewLaserScan(header std_msgs.Header, angleMin, angleMax, angleIncrement, timeIncrement, scanTime, rangeMin, rangeMax float32, ranges, intensities []float32) LaserScan {
	return LaserScan{
		Header:         header,
		AngleMin:       angleMin,
		AngleMax:       angleMax,
		AngleIncrement: angleIncrement,
		TimeIncrement:  timeIncrement,
		ScanTime:       scanTime,
		RangeMin:       rangeMin,
		RangeMax:       rangeMax,
		Ranges:         copyFloat32s(ranges),
		Intensities:    copyFloat32s(intensities),
	}
}

func copyFloat32s(values []float32) []float32 {
	out := make([]float32, len(values))
	copy(out, values)
	return out
}

func (m LaserScan) Type() ros.MessageType {
	return MsgLaserScan
}

func (m LaserScan) Clone() LaserScan {
	c := m
	c.Header = m.Header.Clone()
	c.Ranges = copyFloat32s(m.Ranges)
	c.Intensities = copyFloat32s(m.Intensities)
	return c
}

func (m LaserScan) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Header         std_msgs.Header   `json:"header"`
		AngleMin       ros.JsonFloat32   `json:"angle_min"`
		AngleMax       ros.JsonFloat32   `json:"angle_max"`
		AngleIncrement ros.JsonFloat32   `json:"angle_increment"`
		TimeIncrement  ros.JsonFloat32   `json:"time_increment"`
		ScanTime       ros.JsonFloat32   `json:"scan_time"`
		RangeMin       ros.JsonFloat32   `json:"range_min"`
		RangeMax       ros.JsonFloat32   `json:"range_max"`
		Ranges         []ros.JsonFloat32 `json:"ranges"`
		Intensities    []ros.JsonFloat32 `json:"intensities"`
	}{
		Header:         m.Header,
		AngleMin:       ros.JsonFloat32{F: m.AngleMin},
		AngleMax:       ros.JsonFloat32{F: m.AngleMax},
		AngleIncrement: ros.JsonFloat32{F: m.AngleIncrement},
		TimeIncrement:  ros.JsonFloat32{F: m.TimeIncrement},
		ScanTime:       ros.JsonFloat32{F: m.ScanTime},
		RangeMin:       ros.JsonFloat32{F: m.RangeMin},
		RangeMax:       ros.JsonFloat32{F: m.RangeMax},
		Ranges:         ros.JsonFloat32Slice(m.Ranges),
		Intensities:    ros.JsonFloat32Slice(m.Intensities),
	})
}

func (m *LaserScan) UnmarshalJSON(data []byte) error {
	obj, err := ros.NewObject(MsgLaserScan.Name(), data)
	if err != nil {
		return err
	}
	var s LaserScan
	if err = obj.Decode(FieldHeader, s.Header.UnmarshalJSON); err != nil {
		return err
	}
	scalars := []struct {
		key   string
		value *float32
	}{
		{FieldAngleMin, &s.AngleMin},
		{FieldAngleMax, &s.AngleMax},
		{FieldAngleIncrement, &s.AngleIncrement},
		{FieldTimeIncrement, &s.TimeIncrement},
		{FieldScanTime, &s.ScanTime},
		{FieldRangeMin, &s.RangeMin},
		{FieldRangeMax, &s.RangeMax},
	}
	for _, f := range scalars {
		if *f.value, err = obj.Float32(f.key, 0); err != nil {
			return err
		}
	}
	if s.Ranges, err = obj.Float32Array(FieldRanges); err != nil {
		return err
	}
	if s.Intensities, err = obj.Float32Array(FieldIntensities); err != nil {
		return err
	}
	*m = s
	return nil
}

func LaserScanFromJSON(data []byte) (LaserScan, error) {
	var m LaserScan
	err := m.UnmarshalJSON(data)
	return m, err
}

func LaserScanFromJSONString(s string) (LaserScan, error) {
	return LaserScanFromJSON([]byte(s))
}
