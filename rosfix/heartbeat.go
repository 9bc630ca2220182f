package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/edwinhayes/correctedros/convert"
	"github.com/edwinhayes/correctedros/ros"
	"github.com/edwinhayes/correctedros/rosbridge"
	"github.com/edwinhayes/correctedros/std_msgs"
)

// newHeartbeatCmd prints an advertise operation followed by stamped heartbeat
// publish operations, one line each, ready to be piped to a rosbridge socket.
func newHeartbeatCmd() *cobra.Command {
	var topic string
	var frequency float64
	var count int

	cmd := &cobra.Command{
		Use:   "heartbeat",
		Short: "Emit rosbridge heartbeat operations at a fixed rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if frequency <= 0 {
				return errors.Errorf("rate must be positive, got %v", frequency)
			}
			out := cmd.OutOrStdout()
			op, err := rosbridge.Advertise(topic, std_msgs.MsgHeader)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(op))

			rate := ros.NewRate(frequency)
			for i := 0; count <= 0 || i < count; i++ {
				header := convert.HeartbeatHeader(ros.Now().ToNSec())
				if op, err = rosbridge.Publish(topic, &header); err != nil {
					return err
				}
				fmt.Fprintln(out, string(op))
				if count > 0 && i == count-1 {
					break
				}
				if err := rate.Sleep(cmd.Context()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&topic, "topic", convert.TopicHeartbeat, "topic to publish on")
	cmd.Flags().Float64Var(&frequency, "rate", 1, "heartbeats per second")
	cmd.Flags().IntVar(&count, "count", 0, "stop after this many heartbeats (0 runs until interrupted)")
	return cmd
}
