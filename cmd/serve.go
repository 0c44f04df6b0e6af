package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/pokerhand/network"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the evaluator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			certOut, _ := cmd.Flags().GetString("cert-out")
			return a.serve(cmd.Context(), certOut)
		},
	}
	cmd.Flags().String("address", "", "Address to listen on (overrides server.address)")
	cmd.Flags().Bool("tls", false, "Serve HTTPS with a self-signed certificate (overrides server.tls)")
	cmd.Flags().String("cert-out", "", "Write the PEM certificate of a TLS server to this file")
	bindFlag(a.v, "server.address", cmd.Flags().Lookup("address"))
	bindFlag(a.v, "server.tls", cmd.Flags().Lookup("tls"))
	return cmd
}

func (a *app) serve(ctx context.Context, certOut string) error {
	cfg := a.cfg.Server
	l, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Address, err)
	}

	opts := []network.ServerOption{network.WithLogger(a.logger)}
	scheme := "http"
	if cfg.TLS {
		cert, pem, err := network.GenerateSelfSignedCert(l.Addr().String())
		if err != nil {
			l.Close()
			return fmt.Errorf("generating certificate: %w", err)
		}
		if certOut != "" {
			if err := os.WriteFile(certOut, pem, 0o644); err != nil {
				l.Close()
				return fmt.Errorf("writing certificate: %w", err)
			}
			a.logger.Info("certificate written", "path", certOut)
		}
		opts = append(opts, network.WithCertificate(cert))
		scheme = "https"
	}

	s := network.NewServer(opts...)
	s.Start(l)
	pterm.Info.Printfln("Serving on %s://%s", scheme, l.Addr().String())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	select {
	case <-ctx.Done():
		a.logger.Info("shutting down")
	case err := <-s.Errors():
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := s.Close(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-s.Errors()
}
