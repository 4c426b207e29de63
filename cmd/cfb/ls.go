package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	cfb "github.com/jeongukjae/go-cfb"
)

func newLsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls <file>",
		Short: "List the directory tree of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var file cfb.CompoundFile
			if err := file.Read(image); err != nil {
				return err
			}

			return file.IterateAll(func(entry *cfb.DirEntry, depth int) {
				cmd.Printf("%s%s\t%s\t%d\n",
					strings.Repeat("  ", depth), entry.Name(), entry.ObjectType(), entry.StreamSize())
			})
		},
	}
}
