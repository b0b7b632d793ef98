package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/keywarden/keywarden/internal/audit"
	"github.com/keywarden/keywarden/internal/report"
	"github.com/keywarden/keywarden/pkg/primitive"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Assess asymmetric key parameters",
	Long: `Assess asymmetric key parameters against a standard.

Examples:
  # Elliptic curve by name
  keywarden key ecc secp384r1

  # RSA modulus bit length
  keywarden key ifc 3072

  # DSA/DH field and subgroup bit lengths
  keywarden key ffc 2048 224`,
}

var keyEccCmd = &cobra.Command{
	Use:   "ecc <curve>",
	Short: "Assess an elliptic curve",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeyEcc,
}

var keyIfcCmd = &cobra.Command{
	Use:   "ifc <modulus-bits>",
	Short: "Assess an integer factorisation modulus (RSA)",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeyIfc,
}

var keyFfcCmd = &cobra.Command{
	Use:   "ffc <field-bits> <subgroup-bits>",
	Short: "Assess finite field parameters (DSA, DH)",
	Args:  cobra.ExactArgs(2),
	RunE:  runKeyFfc,
}

func init() {
	for _, cmd := range []*cobra.Command{keyEccCmd, keyIfcCmd, keyFfcCmd} {
		addAssessFlags(cmd)
		addSaveFlag(cmd)
		keyCmd.AddCommand(cmd)
	}
}

func runKeyEcc(cmd *cobra.Command, args []string) error {
	std, ctx, err := resolveStandard()
	if err != nil {
		return err
	}

	p := primitive.EccByName(args[0])
	rec, ok := std.ValidateEcc(ctx, p)

	rep := report.New(std.Name(), ctx.Security(), ctx.Year())
	rep.Add(report.Finding{
		Aspect:      "ecc",
		Family:      "ecc",
		Primitive:   primitive.EccName(p),
		Compliant:   ok,
		Recommended: primitive.EccName(rec),
	})
	return finishKey(cmd, "ecc", primitive.EccName(p), rep)
}

func runKeyIfc(cmd *cobra.Command, args []string) error {
	std, ctx, err := resolveStandard()
	if err != nil {
		return err
	}

	bits, err := parseBits(args[0])
	if err != nil {
		return err
	}
	p := primitive.Ifc{K: bits}
	rec, ok := std.ValidateIfc(ctx, p)

	rep := report.New(std.Name(), ctx.Security(), ctx.Year())
	rep.Add(report.Finding{
		Aspect:      "ifc",
		Family:      "ifc",
		Primitive:   fmt.Sprintf("ifc-%d", p.K),
		Compliant:   ok,
		Recommended: fmt.Sprintf("ifc-%d", rec.K),
	})
	return finishKey(cmd, "ifc", fmt.Sprintf("ifc-%d", p.K), rep)
}

func runKeyFfc(cmd *cobra.Command, args []string) error {
	std, ctx, err := resolveStandard()
	if err != nil {
		return err
	}

	l, err := parseBits(args[0])
	if err != nil {
		return err
	}
	n, err := parseBits(args[1])
	if err != nil {
		return err
	}
	p := primitive.Ffc{L: l, N: n}
	rec, ok := std.ValidateFfc(ctx, p)

	rep := report.New(std.Name(), ctx.Security(), ctx.Year())
	rep.Add(report.Finding{
		Aspect:      "ffc",
		Family:      "ffc",
		Primitive:   fmt.Sprintf("ffc-%d-%d", p.L, p.N),
		Compliant:   ok,
		Recommended: fmt.Sprintf("ffc-%d-%d", rec.L, rec.N),
	})
	return finishKey(cmd, "ffc", fmt.Sprintf("ffc-%d-%d", p.L, p.N), rep)
}

func finishKey(cmd *cobra.Command, family, name string, rep *report.Report) error {
	if err := audit.RecordPrimitive(auditWriter, family, name, rep); err != nil {
		return err
	}
	if err := saveAssessment(family, name, rep); err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), rep)
}

func parseBits(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid bit length %q: %w", s, err)
	}
	return uint16(n), nil
}
