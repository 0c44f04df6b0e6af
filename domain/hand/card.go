package hand

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Suit of a card (0-3).
type Suit uint8

// Card suit constants (0-3)
const (
	Club    Suit = 0 // ♣ (black)
	Diamond Suit = 1 // ♦ (red)
	Heart   Suit = 2 // ♥ (red)
	Spade   Suit = 3 // ♠ (black)
)

// Face of a card (1-13).
type Face uint8

// Card face constants. The Ace is stored as 1; straights project it to
// both ends of the run.
const (
	Ace   Face = 1
	Two   Face = 2
	Three Face = 3
	Four  Face = 4
	Five  Face = 5
	Six   Face = 6
	Seven Face = 7
	Eight Face = 8
	Nine  Face = 9
	Ten   Face = 10
	Jack  Face = 11
	Queen Face = 12
	King  Face = 13
)

var (
	ErrUnknownFace = errors.New("unknown face")
	ErrUnknownSuit = errors.New("unknown suit")
)

var faceCodes = map[string]Face{
	"A": Ace, "2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven,
	"8": Eight, "9": Nine, "10": Ten, "J": Jack, "Q": Queen, "K": King,
}

var suitCodes = map[string]Suit{
	"C": Club, "D": Diamond, "H": Heart, "S": Spade,
}

// Card represents a playing card with face and suit.
type Card struct {
	face Face
	suit Suit
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - face: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
func NewCard(face Face, suit Suit) (Card, error) {
	if face == 0 || face > King {
		return Card{}, fmt.Errorf("%w %d", ErrUnknownFace, face)
	}
	if suit > Spade {
		return Card{}, fmt.Errorf("%w %d", ErrUnknownSuit, suit)
	}
	return Card{face: face, suit: suit}, nil
}

// ParseCard parses a single `<face><suit>` token such as "10H" or "AS".
// Both errors are returned, joined, when neither part is recognized.
func ParseCard(token string) (Card, error) {
	faceCode, suitCode := splitToken(token)
	face, faceOK := faceCodes[faceCode]
	suit, suitOK := suitCodes[suitCode]
	var errs []error
	if !faceOK {
		errs = append(errs, fmt.Errorf("%w %q in %q", ErrUnknownFace, faceCode, token))
	}
	if !suitOK {
		errs = append(errs, fmt.Errorf("%w %q in %q", ErrUnknownSuit, suitCode, token))
	}
	if len(errs) > 0 {
		return Card{}, errors.Join(errs...)
	}
	return Card{face: face, suit: suit}, nil
}

// splitToken separates the trailing suit character from the face prefix.
func splitToken(token string) (face, suit string) {
	r := []rune(token)
	if len(r) == 0 {
		return "", ""
	}
	return string(r[:len(r)-1]), string(r[len(r)-1])
}

func (c Card) Face() Face {
	return c.face
}

func (c Card) Suit() Suit {
	return c.suit
}

// Code returns the wire letter of the suit.
func (s Suit) Code() string {
	switch s {
	case Club:
		return "C"
	case Diamond:
		return "D"
	case Heart:
		return "H"
	case Spade:
		return "S"
	default:
		return "?"
	}
}

func (s Suit) String() string {
	switch s {
	case Club:
		return "Clubs"
	case Diamond:
		return "Diamonds"
	case Heart:
		return "Hearts"
	case Spade:
		return "Spades"
	default:
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
}

// Code returns the wire prefix of the face.
func (f Face) Code() string {
	switch f {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", uint8(f))
	}
}

func (f Face) String() string {
	switch f {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return fmt.Sprintf("%d", uint8(f))
	}
}

// String returns the card in its input form, e.g. "10H".
func (c Card) String() string {
	return c.face.Code() + c.suit.Code()
}

// Glyph returns a human-readable representation of the Card using coloured
// suit symbols (♣, ♦, ♥, ♠).
func (c Card) Glyph() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}
	return c.face.Code() + suit
}

// FormatCards joins the wire form of cards with single spaces.
func FormatCards(cards []Card) string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.String()
	}
	return strings.Join(codes, " ")
}
