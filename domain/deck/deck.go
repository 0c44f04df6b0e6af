package deck

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"

	"github.com/luca-patrignani/pokerhand/domain/hand"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

var ErrEmpty = errors.New("no cards left in the deck")

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is a standard 52-card deck dealt from the top.
// A Deck is not safe for concurrent use.
type Deck struct {
	cards         []hand.Card
	lastDrawnCard int
	stream        cipher.Stream
}

type option func(*Deck)

// WithStream sets the source of randomness used by Shuffle.
func WithStream(stream cipher.Stream) option {
	return func(d *Deck) {
		d.stream = stream
	}
}

// New returns a deck in card number order (see IntToCard). By default it is
// shuffled with the random stream of the Ed25519 suite.
func New(opts ...option) *Deck {
	d := &Deck{
		cards:  make([]hand.Card, DeckSize),
		stream: suite.RandomStream(),
	}
	for i := range d.cards {
		d.cards[i], _ = IntToCard(i + 1)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to
// suits in order (clubs, diamonds, hearts, spades) with faces Ace through
// King within each suit.
//
// Card numbering:
//   - 1-13: Clubs (Ace through King)
//   - 14-26: Diamonds (Ace through King)
//   - 27-39: Hearts (Ace through King)
//   - 40-52: Spades (Ace through King)
func IntToCard(rawCard int) (hand.Card, error) {
	if rawCard > DeckSize || rawCard < 1 {
		return hand.Card{}, fmt.Errorf("the card to convert has an invalid value %d", rawCard)
	}
	suit := hand.Suit((rawCard - 1) / 13)
	face := hand.Face(((rawCard - 1) % 13) + 1)
	return hand.NewCard(face, suit)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card hand.Card) int {
	return int(card.Suit())*13 + int(card.Face())
}

// Shuffle puts every card back in the deck and permutes it.
func (d *Deck) Shuffle() {
	d.lastDrawnCard = 0
	perm := permutation(len(d.cards), d.stream)
	tmp := make([]hand.Card, len(d.cards))
	for i := range tmp {
		tmp[i] = d.cards[perm[i]]
	}
	d.cards = tmp
}

// DrawCard removes the top card from the deck.
func (d *Deck) DrawCard() (hand.Card, error) {
	if d.lastDrawnCard >= len(d.cards) {
		return hand.Card{}, ErrEmpty
	}
	c := d.cards[d.lastDrawnCard]
	d.lastDrawnCard++
	return c, nil
}

// Deal draws five cards and returns them as a hand.
func (d *Deck) Deal() (hand.Hand, error) {
	if d.Remaining() < hand.Size {
		return hand.Hand{}, fmt.Errorf("dealing %d cards with %d left: %w", hand.Size, d.Remaining(), ErrEmpty)
	}
	cards := make([]hand.Card, hand.Size)
	for i := range cards {
		c, err := d.DrawCard()
		if err != nil {
			return hand.Hand{}, err
		}
		cards[i] = c
	}
	return hand.FromCards(cards...), nil
}

// Remaining returns the number of cards not drawn yet.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.lastDrawnCard
}

// Helper function to generate a random permutation of size permSize
// (Fisher-Yates over the given stream).
func permutation(permSize int, stream cipher.Stream) []int {
	perm := make([]int, permSize)
	for i := range perm {
		perm[i] = i
	}
	for i := permSize - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
