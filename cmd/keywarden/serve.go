package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/keywarden/keywarden/internal/api/dto"
	"github.com/keywarden/keywarden/internal/api/server"
	"github.com/keywarden/keywarden/internal/audit"
)

// Serve command flags
var (
	servePort      int
	serveHost      string
	serveStorePath string
	serveTLSCert   string
	serveTLSKey    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the REST API server.

The server exposes the assessment engine over HTTP:
  - GET  /api/v1/standards
  - POST /api/v1/assess/{hash,symmetric,ecc,ffc,ifc}
  - POST /api/v1/assess/certificate
  - GET  /api/v1/assessments

Environment variables:
  KEYWARDEN_PORT      Port to listen on
  KEYWARDEN_HOST      Host to bind to
  KEYWARDEN_STORE     Path to the assessment history database
  KEYWARDEN_TLS_CERT  TLS certificate file
  KEYWARDEN_TLS_KEY   TLS private key file

Examples:
  # Start on the configured port
  keywarden serve

  # Start with history persistence and auditing
  keywarden serve --port 8080 --store assessments.db --audit-log audit.jsonl

  # Start with TLS
  keywarden serve --port 8443 --tls-cert server.crt --tls-key server.key`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default: all interfaces)")
	serveCmd.Flags().StringVar(&serveStorePath, "store", "", "Path to the assessment history database")
	serveCmd.Flags().StringVar(&serveTLSCert, "tls-cert", "", "TLS certificate file")
	serveCmd.Flags().StringVar(&serveTLSKey, "tls-key", "", "TLS private key file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	applyServeEnvVars()

	srvCfg := server.DefaultConfig()
	srvCfg.Host = cfg.Server.Host
	if cfg.Server.Port != 0 {
		srvCfg.Port = cfg.Server.Port
	}
	srvCfg.Defaults = dto.AssessOptions{
		Standard: cfg.Defaults.Standard,
		Security: cfg.Defaults.Security,
		Year:     cfg.Defaults.Year,
	}
	srvCfg.StorePath = cfg.Store.Path
	srvCfg.AuditPath = auditLogPath

	// Flags override the configuration file
	if serveHost != "" {
		srvCfg.Host = serveHost
	}
	if servePort != 0 {
		srvCfg.Port = servePort
	}
	if serveStorePath != "" {
		srvCfg.StorePath = serveStorePath
	}
	srvCfg.TLSCert = serveTLSCert
	srvCfg.TLSKey = serveTLSKey

	// The server manages its own audit writer lifecycle.
	if err := auditWriter.Close(); err != nil {
		return err
	}
	auditWriter = audit.NopWriter{}

	srv := server.New(srvCfg, version)
	return srv.Start()
}

// applyServeEnvVars applies environment variable fallbacks for unset
// serve flags.
func applyServeEnvVars() {
	if servePort == 0 {
		if v := os.Getenv("KEYWARDEN_PORT"); v != "" {
			if p, err := strconv.Atoi(v); err == nil {
				servePort = p
			}
		}
	}
	if serveHost == "" {
		serveHost = os.Getenv("KEYWARDEN_HOST")
	}
	if serveStorePath == "" {
		serveStorePath = os.Getenv("KEYWARDEN_STORE")
	}
	if serveTLSCert == "" {
		serveTLSCert = os.Getenv("KEYWARDEN_TLS_CERT")
	}
	if serveTLSKey == "" {
		serveTLSKey = os.Getenv("KEYWARDEN_TLS_KEY")
	}
}
