package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/xmatrix/config"
	"github.com/teranos/xmatrix/display"
	"github.com/teranos/xmatrix/errors"
)

// ConfigCmd groups configuration subcommands
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage xmatrix configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}

		redacted := cfg.Redacted()

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return display.OutputJSON(redacted)
		}

		out, err := config.MarshalTOML(redacted)
		if err != nil {
			return errors.Wrap(err, "failed to render config")
		}
		fmt.Print(out)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.WriteDefault()
		if err != nil {
			return errors.Wrap(err, "failed to write config")
		}
		pterm.Success.Printfln("Wrote default config to %s", path)
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}
