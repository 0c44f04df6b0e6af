package hand

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Describe returns a detailed description of a valid hand, such as the
// high card of a straight.
func (h Hand) Describe() (string, error) {
	if err := h.Err(); err != nil {
		return "", err
	}
	var cards [Size]poker.Card
	for i, c := range h.cards {
		card, err := poker.MakeCard(poker.Suit(c.suit), poker.Rank(c.face))
		if err != nil {
			return "", fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		cards[i] = card
	}
	return poker.Describe(cards[:])
}
