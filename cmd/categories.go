package main

import (
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/pokerhand/domain/hand"
)

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the hand categories, strongest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printer{w: cmd.OutOrStdout(), format: a.cfg.Output.Format}.categories(hand.Categories())
		},
	}
}
