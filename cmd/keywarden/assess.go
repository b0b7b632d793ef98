package main

import (
	"github.com/spf13/cobra"

	"github.com/keywarden/keywarden/internal/audit"
	"github.com/keywarden/keywarden/internal/certutil"
	"github.com/keywarden/keywarden/internal/store"
)

var assessCmd = &cobra.Command{
	Use:   "assess <certificate>",
	Short: "Assess an X.509 certificate",
	Long: `Assess an X.509 certificate's public key and signature hash
against a standard.

The certificate may be PEM or DER encoded. A key or signature
algorithm outside the catalog is reported as a non-compliant finding
rather than an error.

Examples:
  keywarden assess server.crt
  keywarden assess server.crt --against bsi --year 2030
  keywarden assess server.crt --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runAssess,
}

func init() {
	addAssessFlags(assessCmd)
	addSaveFlag(assessCmd)
}

func runAssess(cmd *cobra.Command, args []string) error {
	std, ctx, err := resolveStandard()
	if err != nil {
		return err
	}

	cert, err := certutil.Load(args[0])
	if err != nil {
		return err
	}
	rep, err := certutil.Assess(cert, std, ctx)
	if err != nil {
		return err
	}

	if err := audit.RecordCertificate(auditWriter, args[0], rep); err != nil {
		return err
	}
	if saveHistory {
		if err := saveRecord(store.NewRecord("certificate", "", "", rep)); err != nil {
			return err
		}
	}
	return writeReport(cmd.OutOrStdout(), rep)
}
