// Command keywarden assesses cryptographic primitives and certificates
// against published key length recommendations.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keywarden/keywarden/internal/audit"
	"github.com/keywarden/keywarden/internal/config"
)

// Build-time variables (injected by GoReleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags
var (
	configPath   string
	auditLogPath string
)

// cfg is the active configuration, loaded before every command runs.
var cfg *config.Config

// auditWriter receives one event per assessment. It stays a NopWriter
// unless an audit log is configured.
var auditWriter audit.Writer = audit.NopWriter{}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "keywarden",
	Short: "Keywarden - cryptographic key length assessment",
	Long: `Keywarden assesses cryptographic primitives against published
recommendations on key lengths and algorithm lifetimes.

Supported standards:
  bsi      BSI TR-02102-1
  cnsa     NSA Commercial National Security Algorithm Suite
  ecrypt   ECRYPT-CSA Algorithms, Key Size and Protocols Report
  lenstra  Lenstra and Verheul key length equations
  nist     NIST SP 800-57 Part 1

Examples:
  # Assess a hash function against the default standard
  keywarden hash sha256

  # Assess a symmetric cipher against BSI for a future year
  keywarden symmetric aes-128 --against bsi --year 2030

  # Assess an elliptic curve key
  keywarden key ecc secp384r1 --against cnsa

  # Assess an RSA modulus size
  keywarden key ifc 2048 --year 2035

  # Assess an X.509 certificate
  keywarden assess server.crt --against nist --format json

  # Start the REST API server
  keywarden serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.Load(configPath)
		} else {
			cfg, err = config.LoadFromEnv()
		}
		if err != nil {
			return err
		}

		if auditLogPath == "" {
			auditLogPath = cfg.Audit.Path
		}
		if auditLogPath != "" {
			w, err := audit.NewFileWriter(auditLogPath)
			if err != nil {
				return fmt.Errorf("failed to open audit log: %w", err)
			}
			auditWriter = w
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		err := auditWriter.Close()
		auditWriter = audit.NopWriter{}
		return err
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (or set KEYWARDEN_CONFIG env var)")
	rootCmd.PersistentFlags().StringVar(&auditLogPath, "audit-log", "",
		"Path to audit log file")

	// Assessment commands
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(symmetricCmd)
	rootCmd.AddCommand(keyCmd) // keywarden key ...

	// Utilities
	rootCmd.AddCommand(standardsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(auditCmd)
}
