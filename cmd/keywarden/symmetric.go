package main

import (
	"github.com/spf13/cobra"

	"github.com/keywarden/keywarden/internal/audit"
	"github.com/keywarden/keywarden/internal/report"
	"github.com/keywarden/keywarden/pkg/primitive"
)

var symmetricCmd = &cobra.Command{
	Use:   "symmetric <name>",
	Short: "Assess a symmetric cipher",
	Long: `Assess a symmetric cipher against a standard.

Examples:
  keywarden symmetric aes-128
  keywarden symmetric 3tdea --against nist --year 2024`,
	Args: cobra.ExactArgs(1),
	RunE: runSymmetric,
}

func init() {
	addAssessFlags(symmetricCmd)
	addSaveFlag(symmetricCmd)
}

func runSymmetric(cmd *cobra.Command, args []string) error {
	std, ctx, err := resolveStandard()
	if err != nil {
		return err
	}

	p := primitive.SymmetricByName(args[0])
	rec, ok := std.ValidateSymmetric(ctx, p)

	rep := report.New(std.Name(), ctx.Security(), ctx.Year())
	rep.Add(report.Finding{
		Aspect:      "symmetric",
		Family:      "symmetric",
		Primitive:   primitive.SymmetricName(p),
		Compliant:   ok,
		Recommended: primitive.SymmetricName(rec),
	})

	if err := audit.RecordPrimitive(auditWriter, "symmetric", primitive.SymmetricName(p), rep); err != nil {
		return err
	}
	if err := saveAssessment("symmetric", primitive.SymmetricName(p), rep); err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), rep)
}
