package main

import (
	"os"

	"github.com/spf13/cobra"

	cfb "github.com/jeongukjae/go-cfb"
)

func newCatCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "cat <file> <path>",
		Short: "Extract a stream from a container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var file cfb.CompoundFile
			if err := file.Read(image); err != nil {
				return err
			}

			entry, err := file.EntryByPath(args[1])
			if err != nil {
				return err
			}

			data, err := file.ReadStream(entry)
			if err != nil {
				return err
			}

			if output != "" {
				return os.WriteFile(output, data, 0o644)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the stream to a file instead of stdout")
	return cmd
}
