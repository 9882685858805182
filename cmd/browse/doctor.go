// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/browsekit/browse-core/probe"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Report which browsers and launcher tools are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			rateLimit, _ := cmd.Flags().GetInt("rate")

			report := probe.New(probe.Config{RateLimit: rateLimit}).Run(cmd.Context())

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				printReport(cmd, report)
			}

			if report.Summary.Overall != probe.StatusAvailable {
				return fmt.Errorf("no usable browser launcher found")
			}
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "output the report as JSON")
	cmd.Flags().Int("rate", 0, "max probes per second (0 = unlimited)")
	return cmd
}

func printReport(cmd *cobra.Command, report *probe.Report) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "platform:  %s\n", report.Platform)
	fmt.Fprintf(out, "desktop:   %s\n", report.Desktop)
	fmt.Fprintf(out, "graphical: %v\n", report.GraphicalSession)
	if report.WSL {
		fmt.Fprintln(out, "wsl:       true")
	}
	if report.Flatpak {
		fmt.Fprintln(out, "flatpak:   true")
	}
	fmt.Fprintln(out)

	for _, result := range report.Results {
		marker := "ok  "
		if result.Status != probe.StatusAvailable {
			marker = "miss"
		}
		fmt.Fprintf(out, "  [%s] %-7s %s\n", marker, result.Kind, result.Name)
	}

	fmt.Fprintf(out, "\n%d of %d available\n", report.Summary.Available, report.Summary.Total)
}
