package main

import (
	"fmt"
	"log"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/liuys-dase/deque/config"
	"github.com/liuys-dase/deque/context"
	"github.com/liuys-dase/deque/deque"
	"github.com/liuys-dase/deque/workload"
)

func newRunCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay the workload described by an ini file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.LoadServerConfig(configPath)
			if err != nil {
				return errors.Trace(err)
			}
			if err := conf.WorkloadConfig.Validate(); err != nil {
				return errors.Annotatef(err, "config %q", configPath)
			}
			return runWorkload(cmd, context.NewContextWithConfig(conf))
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "deque.ini", "Path to the workload ini file")
	return cmd
}

func runWorkload(cmd *cobra.Command, ctx *context.Context) error {
	wc := ctx.Config.WorkloadConfig
	var ops []workload.Op
	if wc.RandomOps > 0 {
		ops = workload.RandomScript(wc.Seed, wc.RandomOps)
	} else {
		var err error
		if ops, err = workload.ParseScript(wc.Script); err != nil {
			return errors.Trace(err)
		}
	}

	d := deque.New[string]()
	res, err := workload.NewRunner(ctx.Counter).Run(d, ops)
	if err != nil {
		return errors.Trace(err)
	}
	log.Printf("applied %v ops, %v removals on empty deque, size %v", res.Applied, res.EmptyRemovals, d.Size())
	if wc.LogSnapshot {
		log.Printf("contents: %v", d)
	}
	ctx.Counter.Print()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "size: %d\n", d.Size())
	fmt.Fprintf(out, "fingerprint: %016x\n", res.Fingerprint)
	return nil
}
