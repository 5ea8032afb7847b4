package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func confCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "conf",
		Short: "Print the effective config",
		Long:  "Print the config after defaults, the config file and env overrides are applied",
		RunE:  cmdConf,
	}
	return c
}

func cmdConf(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close() //nolint:errcheck

	return enc.Encode(conf)
}
