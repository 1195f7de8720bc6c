// Command dispatchd runs the HPC dispatch service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/hpc-dispatch/internal/app"
	"github.com/heartmarshall/hpc-dispatch/internal/config"
)

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "dispatchd",
		Short:         "HPC dispatch service",
		Long:          "dispatchd serves the dispatch lifecycle, shelf and statistics API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config (default $CONFIG_PATH or ./config.yaml)")

	load := func() (*config.Config, error) {
		if configPath == "" {
			return config.Load()
		}
		return config.LoadFrom(configPath)
	}

	cmd.AddCommand(newServeCmd(load))
	cmd.AddCommand(newMigrateCmd(load))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dispatchd %s\n", app.BuildVersion())
		},
	}
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
