package hand

import "slices"

// Size is the number of cards in a hand.
const Size = 5

// Hand is a five-card poker hand built from its text form. A Hand is
// immutable; an invalid Hand keeps the reasons it was rejected.
type Hand struct {
	input string
	cards []Card
	err   *ValidationError
}

// New parses and validates input, e.g. "2H 3H 4H 5H 6H".
func New(input string) Hand {
	tokens := tokenize(input)
	h := Hand{input: input, cards: make([]Card, 0, len(tokens))}
	for _, t := range tokens {
		if t.valid() {
			h.cards = append(h.cards, t.card)
		}
	}
	if errs := validateTokens(input, tokens); len(errs) > 0 {
		h.err = &ValidationError{errs: errs}
	}
	return h
}

// FromCards builds a Hand from already parsed cards.
func FromCards(cards ...Card) Hand {
	return New(FormatCards(cards))
}

// validation treats the zero Hand as a blank input.
func (h Hand) validation() *ValidationError {
	if h.err == nil && h.cards == nil {
		return New("").err
	}
	return h.err
}

func (h Hand) Valid() bool {
	return h.validation() == nil
}

// Err returns a *ValidationError, or nil when the hand is well formed.
func (h Hand) Err() error {
	if v := h.validation(); v != nil {
		return v
	}
	return nil
}

// Errors returns the human-readable validation messages, empty for a valid
// hand.
func (h Hand) Errors() []string {
	if v := h.validation(); v != nil {
		return v.Messages()
	}
	return []string{}
}

// Cards returns the cards that could be parsed, in input order.
func (h Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

func (h Hand) Input() string {
	return h.input
}

func (h Hand) String() string {
	if !h.Valid() {
		return h.input
	}
	return FormatCards(h.cards)
}

// Evaluate parses input and classifies it.
func Evaluate(input string) (Category, error) {
	return New(input).Classify()
}
