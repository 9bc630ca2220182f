package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/edwinhayes/correctedros/ros"
)

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "rosfix",
		Short:        "Inspect and normalize corrected ROS messages",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := logrus.InfoLevel
			if debug {
				level = logrus.DebugLevel
			}
			ros.SetLogLevel(level)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log default substitutions and rosbridge operations")
	cmd.AddCommand(
		newTypesCmd(),
		newShowCmd(),
		newNormalizeCmd(),
		newWrapCmd(),
		newUnwrapCmd(),
		newHeartbeatCmd(),
	)
	return cmd
}
