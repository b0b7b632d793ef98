package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/keywarden/keywarden/internal/api/router"
	"github.com/keywarden/keywarden/internal/audit"
	"github.com/keywarden/keywarden/internal/store"
)

// Server represents the HTTP server.
type Server struct {
	cfg     *Config
	version string
	store   store.Store
	audit   audit.Writer
}

// New creates a new Server.
func New(cfg *Config, version string) *Server {
	return &Server{
		cfg:     cfg,
		version: version,
	}
}

// Start opens the store and audit log, starts the HTTP server and
// blocks until shutdown.
func (s *Server) Start() error {
	if err := s.openBackends(); err != nil {
		return err
	}
	defer s.closeBackends()

	routerCfg := &router.Config{
		Version:  s.version,
		Defaults: s.cfg.Defaults,
		Store:    s.store,
		Audit:    s.audit,
	}

	srv := &http.Server{
		Addr:         s.cfg.Address(),
		Handler:      router.New(routerCfg),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	s.printStartupInfo()

	return s.run(srv)
}

// openBackends opens the assessment store and audit log per the
// configuration.
func (s *Server) openBackends() error {
	s.audit = audit.NopWriter{}
	if s.cfg.AuditPath != "" {
		w, err := audit.NewFileWriter(s.cfg.AuditPath)
		if err != nil {
			return fmt.Errorf("failed to open audit log: %w", err)
		}
		s.audit = w
	}

	if s.cfg.StorePath != "" {
		st, err := store.NewSQLiteStore(s.cfg.StorePath)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		s.store = st
	}
	return nil
}

// closeBackends releases the store and audit log.
func (s *Server) closeBackends() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("store close: %v", err)
		}
	}
	if err := s.audit.Close(); err != nil {
		log.Printf("audit close: %v", err)
	}
}

// run starts the server and handles graceful shutdown.
func (s *Server) run(srv *http.Server) error {
	errChan := make(chan error, 1)

	go func() {
		if s.cfg.TLSCert != "" && s.cfg.TLSKey != "" {
			errChan <- srv.ListenAndServeTLS(s.cfg.TLSCert, s.cfg.TLSKey)
		} else {
			errChan <- srv.ListenAndServe()
		}
	}()

	ev := audit.NewEvent(audit.EventServerStarted, audit.ResultSuccess).
		WithObject(audit.Object{Type: "server", Name: s.cfg.Address()})
	if err := s.audit.Write(ev); err != nil {
		log.Printf("audit write: %v", err)
	}

	// Wait for shutdown signal or error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down...", sig)
		return s.shutdown(srv)
	}

	return nil
}

// shutdown gracefully shuts down the server.
func (s *Server) shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	ev := audit.NewEvent(audit.EventServerStopped, audit.ResultSuccess).
		WithObject(audit.Object{Type: "server", Name: s.cfg.Address()})
	if err := s.audit.Write(ev); err != nil {
		log.Printf("audit write: %v", err)
	}

	log.Println("Server stopped gracefully")
	return nil
}

// printStartupInfo prints server startup information.
func (s *Server) printStartupInfo() {
	fmt.Println()
	fmt.Println("Keywarden API Server")
	fmt.Println("====================")
	fmt.Printf("  Version:  %s\n", s.version)
	fmt.Printf("  Address:  http://%s\n", s.cfg.Address())
	if s.cfg.TLSCert != "" {
		fmt.Println("  TLS:      enabled")
	}
	fmt.Printf("  Standard: %s\n", s.cfg.Defaults.Standard)
	if s.cfg.StorePath != "" {
		fmt.Printf("  Store:    %s\n", s.cfg.StorePath)
	}
	if s.cfg.AuditPath != "" {
		fmt.Printf("  Audit:    %s\n", s.cfg.AuditPath)
	}
	fmt.Println()
	s.printEndpoints()
	fmt.Println()
	fmt.Println("Use Ctrl+C to stop")
	fmt.Println()
}

// printEndpoints prints available endpoints.
func (s *Server) printEndpoints() {
	fmt.Println("Endpoints:")
	fmt.Println("  GET  /health                    - Health check")
	fmt.Println("  GET  /ready                     - Readiness check")
	fmt.Println("  GET  /api/v1/standards          - List standards")
	fmt.Println("  POST /api/v1/assess/{family}    - Assess a primitive")
	fmt.Println("  POST /api/v1/assess/certificate - Assess a certificate")
	fmt.Println("  GET  /api/v1/assessments        - Assessment history")
}
