package hand

import (
	"fmt"
	"slices"
)

// Category is the class of a hand. Lower values are stronger hands.
type Category uint8

const (
	StraightFlush Category = iota
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCard
)

var labels = [...]string{
	StraightFlush: "Straight flush",
	FourOfAKind:   "Four of a kind",
	FullHouse:     "Full house",
	Flush:         "Flush",
	Straight:      "Straight",
	ThreeOfAKind:  "Three of a kind",
	TwoPair:       "Two pair",
	OnePair:       "One pair",
	HighCard:      "High card",
}

// Categories returns every category, strongest first.
func Categories() []Category {
	cs := make([]Category, len(labels))
	for i := range labels {
		cs[i] = Category(i)
	}
	return cs
}

func (c Category) String() string {
	if int(c) < len(labels) {
		return labels[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Beats reports whether c ranks strictly above o.
func (c Category) Beats(o Category) bool {
	return c < o
}

func (c Category) MarshalText() ([]byte, error) {
	if int(c) >= len(labels) {
		return nil, fmt.Errorf("unknown category %d", uint8(c))
	}
	return []byte(labels[c]), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	i := slices.Index(labels[:], string(text))
	if i < 0 {
		return fmt.Errorf("unknown category %q", text)
	}
	*c = Category(i)
	return nil
}

// Rank projections of the faces used for straights. The Ace sits above the
// King in aceHigh and below the Two in aceLow; neither table wraps around.
var (
	aceHigh = [King + 1]int{Ace: 14, Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7,
		Eight: 8, Nine: 9, Ten: 10, Jack: 11, Queen: 12, King: 13}
	aceLow = [King + 1]int{Ace: 1, Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7,
		Eight: 8, Nine: 9, Ten: 10, Jack: 11, Queen: 12, King: 13}
)

// profile holds a valid hand with its face histogram.
type profile struct {
	cards    [Size]Card
	counts   [King + 1]uint8
	distinct int
}

func newProfile(cards []Card) profile {
	var p profile
	copy(p.cards[:], cards)
	for _, c := range p.cards {
		if p.counts[c.face] == 0 {
			p.distinct++
		}
		p.counts[c.face]++
	}
	return p
}

// groups counts the faces that appear exactly n times.
func (p *profile) groups(n uint8) int {
	g := 0
	for _, count := range p.counts {
		if count == n {
			g++
		}
	}
	return g
}

func (p *profile) flush() bool {
	for _, c := range p.cards[1:] {
		if c.suit != p.cards[0].suit {
			return false
		}
	}
	return true
}

func (p *profile) straight() bool {
	if p.consecutive(&aceHigh) {
		return true
	}
	return p.counts[Ace] > 0 && p.consecutive(&aceLow)
}

func (p *profile) consecutive(projection *[King + 1]int) bool {
	var ranks [Size]int
	for i, c := range p.cards {
		ranks[i] = projection[c.face]
	}
	slices.Sort(ranks[:])
	for i := 1; i < Size; i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false
		}
	}
	return true
}

// rules is evaluated top-down; the first category whose predicate holds
// wins, so the order must match the ranking of Category.
var rules = [...]struct {
	category Category
	holds    func(p *profile) bool
}{
	{StraightFlush, func(p *profile) bool { return p.flush() && p.straight() }},
	{FourOfAKind, func(p *profile) bool { return p.groups(4) > 0 }},
	{FullHouse, func(p *profile) bool { return p.distinct == 2 && p.groups(3) == 1 && p.groups(2) == 1 }},
	{Flush, (*profile).flush},
	{Straight, (*profile).straight},
	{ThreeOfAKind, func(p *profile) bool { return p.distinct == 3 && p.groups(3) > 0 }},
	{TwoPair, func(p *profile) bool { return p.groups(2) == 2 }},
	{OnePair, func(p *profile) bool { return p.groups(2) == 1 && p.distinct == 4 }},
	{HighCard, func(*profile) bool { return true }},
}

// Classify returns the strongest category of a valid hand. An invalid hand
// yields its *ValidationError.
func (h Hand) Classify() (Category, error) {
	if err := h.Err(); err != nil {
		return HighCard, err
	}
	p := newProfile(h.cards)
	for _, r := range rules {
		if r.holds(&p) {
			return r.category, nil
		}
	}
	return HighCard, nil
}

// Is reports whether the predicate of c holds for a valid hand, regardless
// of stronger categories. Every valid hand has a high card.
func (h Hand) Is(c Category) bool {
	if !h.Valid() || int(c) >= len(rules) {
		return false
	}
	p := newProfile(h.cards)
	return rules[c].holds(&p)
}
