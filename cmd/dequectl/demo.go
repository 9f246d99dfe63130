package main

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/liuys-dase/deque/deque"
	"github.com/liuys-dase/deque/workload"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in example and print what is left in the deque",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := deque.New[string]()
			if _, err := workload.NewRunner(nil).Run(d, workload.Demo()); err != nil {
				return errors.Trace(err)
			}
			it := d.Iterator()
			for it.HasNext() {
				s, err := it.Next()
				if err != nil {
					return errors.Trace(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}
