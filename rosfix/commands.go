package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/edwinhayes/correctedros/ros"
	"github.com/edwinhayes/correctedros/rosbridge"
)

// inputOptions selects where a message is read from and how it is upgraded.
type inputOptions struct {
	file   string
	legacy bool
}

func (o *inputOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "read the message from a file instead of stdin")
	cmd.Flags().BoolVar(&o.legacy, "legacy", false, "accept secs/nsecs time keys and header seq")
}

func (o *inputOptions) read(cmd *cobra.Command) ([]byte, error) {
	var r io.Reader = cmd.InOrStdin()
	if o.file != "" {
		f, err := os.Open(o.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if o.legacy {
		return ros.UpgradeLegacyJSON(data)
	}
	return data, nil
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported message types",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range typeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show TYPE",
		Short: "Print a message definition and its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgType, err := lookupType(args[0])
			if err != nil {
				return err
			}
			fields, err := msgType.Fields()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", msgType.Name())
			for _, f := range fields {
				fmt.Fprintln(out, f.String())
			}
			return nil
		},
	}
}

func newNormalizeCmd() *cobra.Command {
	var in inputOptions
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "normalize TYPE",
		Short: "Parse a message, fill in defaults and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgType, err := lookupType(args[0])
			if err != nil {
				return err
			}
			data, err := in.read(cmd)
			if err != nil {
				return err
			}
			msg, err := ros.MessageFromJSON(msgType, data)
			if err != nil {
				return err
			}
			return writeMessage(cmd.OutOrStdout(), msg, asYAML)
		},
	}
	in.bind(cmd)
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print YAML instead of JSON")
	return cmd
}

func newWrapCmd() *cobra.Command {
	var in inputOptions
	var topic string

	cmd := &cobra.Command{
		Use:   "wrap TYPE",
		Short: "Wrap a message into a rosbridge publish operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgType, err := lookupType(args[0])
			if err != nil {
				return err
			}
			data, err := in.read(cmd)
			if err != nil {
				return err
			}
			msg, err := ros.MessageFromJSON(msgType, data)
			if err != nil {
				return err
			}
			op, err := rosbridge.Publish(topic, msg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(op))
			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVar(&topic, "topic", "", "topic to publish on")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

func newUnwrapCmd() *cobra.Command {
	var in inputOptions
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "unwrap TYPE",
		Short: "Extract and normalize the msg of a rosbridge publish operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgType, err := lookupType(args[0])
			if err != nil {
				return err
			}
			data, err := in.read(cmd)
			if err != nil {
				return err
			}
			op, err := rosbridge.ParseOperation(data)
			if err != nil {
				return err
			}
			if op.Op != rosbridge.OpPublish {
				return errors.Errorf("expected a %s operation, got %s", rosbridge.OpPublish, op.Op)
			}
			msg := msgType.NewMessage()
			if err := op.Decode(msg); err != nil {
				return err
			}
			return writeMessage(cmd.OutOrStdout(), msg, asYAML)
		},
	}
	in.bind(cmd)
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print YAML instead of JSON")
	return cmd
}

func writeMessage(w io.Writer, msg ros.Message, asYAML bool) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if asYAML {
		if data, err = jsonToYAML(data); err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
