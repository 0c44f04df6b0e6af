package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/pokerhand/domain/hand"
	"github.com/luca-patrignani/pokerhand/network"
)

// printer writes evaluation results in the configured format.
type printer struct {
	w      io.Writer
	format string
}

func (p printer) hand(resp network.HandResponse) error {
	if p.format == "json" {
		return json.NewEncoder(p.w).Encode(resp)
	}
	_, err := fmt.Fprintln(p.w, getHandPanel(resp))
	return err
}

func (p printer) categories(cs []hand.Category) error {
	if p.format == "json" {
		return json.NewEncoder(p.w).Encode(cs)
	}
	var items []pterm.BulletListItem
	for i, c := range cs {
		items = append(items, pterm.BulletListItem{
			Level:  0,
			Text:   c.String(),
			Bullet: fmt.Sprintf("%d.", i+1),
		})
	}
	s, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(p.w, s)
	return err
}

func getHandPanel(resp network.HandResponse) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	if !resp.Valid {
		var lines []string
		for _, e := range resp.Errors {
			lines = append(lines, pterm.LightRed("✗ "+e))
		}
		return pbox.WithTitle(pterm.LightRed("|INVALID|")).WithTitleTopCenter().
			Sprintf("%s\n%s", resp.Cards, strings.Join(lines, "\n"))
	}
	body := pterm.Sprintfln("%s\n%s", printCards(hand.New(resp.Cards).Cards()), pterm.LightGreen(resp.Category.String()))
	if resp.Description != "" {
		body += pterm.FgDarkGray.Sprint(resp.Description)
	}
	return pbox.WithTitle(pterm.LightCyan("|HAND|")).WithTitleTopCenter().Sprint(body)
}

func printCards(cards []hand.Card) string {
	glyphs := make([]string, len(cards))
	for i, c := range cards {
		glyphs[i] = c.Glyph()
	}
	return pterm.BgGreen.Sprint(" " + strings.Join(glyphs, " - ") + " ")
}
