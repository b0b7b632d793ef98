package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keywarden/keywarden/pkg/standard"
)

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "List the available standards",
	RunE: func(cmd *cobra.Command, args []string) error {
		descriptions := map[string]string{
			"bsi":     "BSI TR-02102-1",
			"cnsa":    "NSA Commercial National Security Algorithm Suite",
			"ecrypt":  "ECRYPT-CSA Algorithms, Key Size and Protocols Report",
			"lenstra": "Lenstra and Verheul key length equations",
			"nist":    "NIST SP 800-57 Part 1",
		}
		out := cmd.OutOrStdout()
		for _, name := range standard.Names() {
			fmt.Fprintf(out, "  %-8s %s\n", name, descriptions[name])
		}
		return nil
	},
}
