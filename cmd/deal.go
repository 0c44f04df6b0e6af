package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luca-patrignani/pokerhand/domain/deck"
	"github.com/luca-patrignani/pokerhand/domain/hand"
	"github.com/luca-patrignani/pokerhand/network"
)

const maxHands = deck.DeckSize / hand.Size

func newDealCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Shuffle a deck, deal hands and classify them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("hands")
			if n < 1 || n > maxHands {
				return fmt.Errorf("can deal between 1 and %d hands, got %d", maxHands, n)
			}
			d := deck.New()
			d.Shuffle()
			p := printer{w: cmd.OutOrStdout(), format: a.cfg.Output.Format}
			for i := 0; i < n; i++ {
				h, err := d.Deal()
				if err != nil {
					return err
				}
				a.logger.Debug("dealt", "hand", h.String(), "remaining", d.Remaining())
				if err := p.hand(network.Evaluate(h.String())); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Int("hands", 1, fmt.Sprintf("Number of hands to deal (1-%d)", maxHands))
	return cmd
}
