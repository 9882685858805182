// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

// Package main is the CLI entry point for browse.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/browsekit/browse-core/logutil"
	"github.com/browsekit/browse-core/registry"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		debug      bool
	)

	rootCmd := &cobra.Command{
		Use:   "browse [urls...]",
		Short: "Open URLs and files in a browser",
		Long: `browse opens URLs and local files in the system default browser, a named
browser (firefox, chrome, lynx, ...) or a launcher registered in a config
file. GUI browsers are spawned detached; text-mode browsers take over the
terminal until they exit.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runOpen,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(debug || logutil.IsDebugEnabled(), false)
			if configPath != "" {
				if err := registry.Default().LoadFile(configPath); err != nil {
					return err
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a launcher config file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.Flags().StringP("browser", "b", "", "browser to use (default: system default)")
	rootCmd.Flags().String("hint", "", "target hint for browsers that support one (default \"_blank\")")
	rootCmd.Flags().BoolP("dry-run", "n", false, "resolve the launcher without opening anything")
	rootCmd.Flags().Bool("suppress-output", true, "attach launcher stdout/stderr to the null device")
	rootCmd.Flags().Bool("wait", false, "wait for the browser to exit instead of detaching")
	rootCmd.Flags().Bool("notify", false, "send a desktop notification with the outcome")
	rootCmd.Flags().Int("rate", 0, "max opens per second when passing multiple urls (0 = unlimited)")

	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.AddCommand(newDoctorCmd(), newListCmd())
	return rootCmd
}
