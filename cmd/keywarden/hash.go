package main

import (
	"github.com/spf13/cobra"

	"github.com/keywarden/keywarden/internal/audit"
	"github.com/keywarden/keywarden/internal/report"
	"github.com/keywarden/keywarden/pkg/primitive"
)

var hashBased bool

var hashCmd = &cobra.Command{
	Use:   "hash <name>",
	Short: "Assess a hash function",
	Long: `Assess a hash function against a standard.

By default the assessment requires collision resistance. Pass
--hash-based for constructions such as HMAC that only rely on second
pre-image resistance, which many standards accept at shorter output
lengths.

Examples:
  keywarden hash sha256
  keywarden hash sha1 --against ecrypt --year 2029
  keywarden hash sha1 --hash-based`,
	Args: cobra.ExactArgs(1),
	RunE: runHash,
}

func init() {
	addAssessFlags(hashCmd)
	hashCmd.Flags().BoolVar(&hashBased, "hash-based", false,
		"Assess second pre-image resistance only")
	addSaveFlag(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	std, ctx, err := resolveStandard()
	if err != nil {
		return err
	}

	p := primitive.HashByName(args[0])
	aspect := "hash"
	var rec primitive.Hash
	var ok bool
	if hashBased {
		aspect = "hash-based"
		rec, ok = std.ValidateHashBased(ctx, p)
	} else {
		rec, ok = std.ValidateHash(ctx, p)
	}

	rep := report.New(std.Name(), ctx.Security(), ctx.Year())
	rep.Add(report.Finding{
		Aspect:      aspect,
		Family:      "hash",
		Primitive:   primitive.HashName(p),
		Compliant:   ok,
		Recommended: primitive.HashName(rec),
	})

	if err := audit.RecordPrimitive(auditWriter, "hash", primitive.HashName(p), rep); err != nil {
		return err
	}
	if err := saveAssessment("hash", primitive.HashName(p), rep); err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), rep)
}
