package main

import (
	"fmt"

	"github.com/dosco/resload/core"
	"github.com/spf13/cobra"
)

func loadCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "load [name...]",
		Short: "Print a resource, creating it if missing",
		Long: `Print the content of each named resource. A resource that does
not exist is created with the default payload first. Without a name the
resource set in the config is loaded.`,
		RunE: cmdLoad,
	}
	return c
}

func cmdLoad(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	rl := core.New(conf, log)

	if len(args) == 0 {
		args = []string{conf.Resource}
	}

	for _, name := range args {
		msg, err := rl.Load(name)
		if err != nil {
			return fmt.Errorf("could not read file: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), msg)
	}
	return nil
}
