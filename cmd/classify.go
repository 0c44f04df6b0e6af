package main

import (
	"context"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/pokerhand/network"
)

// evaluator classifies one hand, locally or against a server.
type evaluator func(ctx context.Context, cards string) (network.HandResponse, error)

func localEvaluator(_ context.Context, cards string) (network.HandResponse, error) {
	return network.Evaluate(cards), nil
}

func newClassifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [hand...]",
		Short: "Classify hands given as arguments, or prompt for them",
		Example: `  pokerhand classify "2H 3H 4H 5H 6H" "AH AC 3D 3C 3S"
  pokerhand classify --server https://localhost:8080 --ca cert.pem "AD 3D QD 5D 9D"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eval, closeEval, err := a.evaluator(cmd)
			if err != nil {
				return err
			}
			defer closeEval()
			p := printer{w: cmd.OutOrStdout(), format: a.cfg.Output.Format}
			if len(args) == 0 {
				return a.prompt(cmd.Context(), eval, p)
			}
			return a.classify(cmd.Context(), eval, p, args)
		},
	}
	cmd.Flags().String("server", "", "Evaluate on a remote pokerhand server instead of locally")
	cmd.Flags().String("ca", "", "PEM certificate to trust when the server uses TLS")
	return cmd
}

func (a *app) evaluator(cmd *cobra.Command) (evaluator, func(), error) {
	server, _ := cmd.Flags().GetString("server")
	if server == "" {
		return localEvaluator, func() {}, nil
	}
	var opts []network.ClientOption
	if caPath, _ := cmd.Flags().GetString("ca"); caPath != "" {
		pem, err := os.ReadFile(caPath)
		if err != nil {
			return nil, nil, fmt.Errorf("reading CA certificate: %w", err)
		}
		certPool := x509.NewCertPool()
		if !certPool.AppendCertsFromPEM(pem) {
			return nil, nil, fmt.Errorf("no certificate found in %s", caPath)
		}
		opts = append(opts, network.WithRootCAs(certPool))
	}
	a.logger.Debug("evaluating remotely", "server", server)
	client := network.NewClient(server, opts...)
	return client.Evaluate, client.Close, nil
}

// classify evaluates every input and fails if any of them is invalid.
func (a *app) classify(ctx context.Context, eval evaluator, p printer, inputs []string) error {
	invalid := 0
	for _, input := range inputs {
		resp, err := eval(ctx, input)
		if err != nil {
			return fmt.Errorf("evaluating %q: %w", input, err)
		}
		if !resp.Valid {
			invalid++
		}
		if err := p.hand(resp); err != nil {
			return err
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d hands are invalid", invalid, len(inputs))
	}
	return nil
}

func (a *app) prompt(ctx context.Context, eval evaluator, p printer) error {
	for {
		input, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Enter a hand such as 2H 3H 4H 5H 6H. When done, type done").
			Show()
		if err != nil {
			return err
		}
		pterm.Println()
		if input == "done" {
			return nil
		}
		resp, err := eval(ctx, input)
		if err != nil {
			a.logger.Error("evaluation failed", "cards", input, "error", err)
			continue
		}
		if err := p.hand(resp); err != nil {
			return err
		}
	}
}
