// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/browsekit/browse-core/browser"
	"github.com/browsekit/browse-core/registry"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in browsers and registered launchers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "built-in:")
			for _, b := range browser.ValidBrowsers() {
				mode := ""
				if b.IsTextMode() {
					mode = " (text-mode)"
				}
				fmt.Fprintf(out, "  %-18s %s%s\n", string(b), b.DisplayName(), mode)
			}

			names := registry.Default().Names()
			if len(names) == 0 {
				return nil
			}

			fmt.Fprintln(out, "\nregistered:")
			for _, name := range names {
				entry, ok := registry.Lookup(name)
				if !ok {
					continue
				}
				mode := ""
				if entry.Console {
					mode = " (text-mode)"
				}
				fmt.Fprintf(out, "  %-18s %s%s\n", name, entry.Command, mode)
			}
			return nil
		},
	}
}
