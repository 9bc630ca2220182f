package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinhayes/correctedros/geometry_msgs"
	"github.com/edwinhayes/correctedros/ros"
	"github.com/edwinhayes/correctedros/rosbridge"
	"github.com/edwinhayes/correctedros/std_msgs"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestTypes(t *testing.T) {
	out, err := run(t, "", "types")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 10)
	assert.Equal(t, "geometry_msgs/Point", lines[0])
	assert.Contains(t, lines, "sensor_msgs/LaserScan")
	assert.Contains(t, lines, "std_msgs/Header")
}

func TestShow(t *testing.T) {
	out, err := run(t, "", "show", "geometry_msgs/msg/TwistStamped")
	require.NoError(t, err)
	assert.Equal(t, "# geometry_msgs/TwistStamped\nstd_msgs/Header header\nTwist twist\n", out)

	_, err = run(t, "", "show", "nav_msgs/Odometry")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	out, err := run(t, `{"point":{"x":1}}`, "normalize", "geometry_msgs/PointStamped")
	require.NoError(t, err)
	assert.Equal(t,
		`{"header":{"stamp":{"sec":0,"nanosec":0},"frame_id":""},"point":{"x":1,"y":0,"z":0}}`+"\n", out)
}

func TestNormalizeLegacy(t *testing.T) {
	in := `{"seq":4,"stamp":{"secs":3,"nsecs":7},"frame_id":"heartbeat"}`
	out, err := run(t, in, "normalize", "std_msgs/Header", "--legacy")
	require.NoError(t, err)
	assert.Equal(t, `{"stamp":{"sec":3,"nanosec":7},"frame_id":"heartbeat"}`+"\n", out)

	// Without --legacy the old keys are unknown and the stamp defaults.
	out, err = run(t, in, "normalize", "std_msgs/Header")
	require.NoError(t, err)
	assert.Equal(t, `{"stamp":{"sec":0,"nanosec":0},"frame_id":"heartbeat"}`+"\n", out)
}

func TestNormalizeYAML(t *testing.T) {
	in := `{"header":{"frame_id":"laser_frame"},"range_max":12,"ranges":[1,"inf"]}`
	out, err := run(t, in, "normalize", "sensor_msgs/LaserScan", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "header:\n  stamp:\n    sec: 0\n")
	assert.Contains(t, out, "  frame_id: laser_frame\n")
	assert.Contains(t, out, "range_max: 12\n")
	assert.Contains(t, out, `ranges: [1, "+inf"]`)
	assert.Contains(t, out, "intensities: []\n")
}

func TestNormalizeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"w":1}`), 0o644))
	out, err := run(t, "", "normalize", "geometry_msgs/Quaternion", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, `{"x":0,"y":0,"z":0,"w":1}`+"\n", out)

	_, err = run(t, "", "normalize", "geometry_msgs/Quaternion", "-f", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestNormalizeRejectsBadInput(t *testing.T) {
	_, err := run(t, `{"x":"far"}`, "normalize", "geometry_msgs/Point")
	assert.Error(t, err)
}

func TestWrapUnwrap(t *testing.T) {
	out, err := run(t, `{"twist":{"angular":{"z":0.5}}}`, "wrap", "geometry_msgs/TwistStamped", "--topic", "/wheelchair_control")
	require.NoError(t, err)

	op, err := rosbridge.ParseOperation([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, rosbridge.OpPublish, op.Op)
	assert.Equal(t, "/wheelchair_control", op.Topic)
	var twist geometry_msgs.TwistStamped
	require.NoError(t, op.Decode(&twist))
	assert.Equal(t, 0.5, twist.Twist.Angular.Z)

	out, err = run(t, out, "unwrap", "geometry_msgs/TwistStamped")
	require.NoError(t, err)
	assert.Equal(t,
		`{"header":{"stamp":{"sec":0,"nanosec":0},"frame_id":""},"twist":{"linear":{"x":0,"y":0,"z":0},"angular":{"x":0,"y":0,"z":0.5}}}`+"\n", out)
}

func TestWrapRequiresTopic(t *testing.T) {
	_, err := run(t, `{}`, "wrap", "std_msgs/Header")
	assert.Error(t, err)
}

func TestUnwrapRejectsOtherOperations(t *testing.T) {
	_, err := run(t, `{"op":"subscribe","topic":"/a"}`, "unwrap", "std_msgs/Header")
	assert.Error(t, err)
}

func TestHeartbeat(t *testing.T) {
	out, err := run(t, "", "heartbeat", "--rate", "200", "--count", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)

	op, err := rosbridge.ParseOperation([]byte(lines[0]))
	require.NoError(t, err)
	assert.Equal(t, rosbridge.OpAdvertise, op.Op)
	assert.Equal(t, "std_msgs/Header", op.Type)

	for _, line := range lines[1:] {
		op, err := rosbridge.ParseOperation([]byte(line))
		require.NoError(t, err)
		assert.Equal(t, "/heartbeat", op.Topic)
		var header std_msgs.Header
		require.NoError(t, op.Decode(&header))
		assert.Equal(t, "heartbeat", header.FrameId)
		assert.True(t, header.Stamp.IsValid())
	}
}

func TestHeartbeatRejectsBadRate(t *testing.T) {
	_, err := run(t, "", "heartbeat", "--rate", "0", "--count", "1")
	assert.Error(t, err)
}

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	logger := ros.DefaultLogger()
	out := logger.Out
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetOutput(out)
		ros.SetLogLevel(logrus.InfoLevel)
	})
	return &buf
}

func TestDebugFlagShowsDefaults(t *testing.T) {
	buf := captureLog(t)

	_, err := run(t, `{}`, "wrap", "std_msgs/Header", "--topic", "/heartbeat")
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	_, err = run(t, `{}`, "wrap", "std_msgs/Header", "--topic", "/heartbeat", "--debug")
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "using default")
	assert.Contains(t, out, "module=ros")
	assert.Contains(t, out, "module=rosbridge")
}
