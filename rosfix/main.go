// Command rosfix inspects and normalizes corrected ROS messages.
//
//	rosfix types
//	rosfix show geometry_msgs/PoseStamped
//	rosfix normalize sensor_msgs/LaserScan --legacy --yaml < scan.json
//	rosfix wrap std_msgs/Header --topic /heartbeat < header.json
//	rosfix unwrap geometry_msgs/TwistStamped < publish.json
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
