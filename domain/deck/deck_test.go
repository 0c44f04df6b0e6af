package deck

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"testing"

	"github.com/luca-patrignani/pokerhand/domain/hand"
)

// seededStream returns a deterministic keystream for repeatable shuffles.
func seededStream(t *testing.T, seed byte) cipher.Stream {
	t.Helper()
	key := make([]byte, 16)
	key[0] = seed
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	return cipher.NewCTR(block, make([]byte, aes.BlockSize))
}

func TestIntToCard(t *testing.T) {
	expectedCard, _ := hand.NewCard(2, hand.Heart)
	testCard, err := IntToCard(28)
	if err != nil {
		t.Fatal(err)
	}
	if testCard != expectedCard {
		t.Fatalf("expected %v, get %v", expectedCard, testCard)
	}
	if _, err := IntToCard(0); err == nil {
		t.Fatal("expected an error for card 0")
	}
	if _, err := IntToCard(53); err == nil {
		t.Fatal("expected an error for card 53")
	}
}

func TestAllCardConvert(t *testing.T) {
	for i := 1; i <= DeckSize; i++ {
		c, err := IntToCard(i)
		if err != nil {
			t.Fatal(err)
		}
		if CardToInt(c) != i {
			t.Fatalf("expected %d, got %d for %v", i, CardToInt(c), c)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	d := New()
	d.Shuffle()
	seen := make(map[hand.Card]bool)
	for d.Remaining() > 0 {
		c, err := d.DrawCard()
		if err != nil {
			t.Fatal(err)
		}
		if seen[c] {
			t.Fatalf("card %v drawn twice", c)
		}
		seen[c] = true
	}
	if len(seen) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(seen))
	}
	if _, err := d.DrawCard(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected %v, got %v", ErrEmpty, err)
	}
}

func TestShuffleWithSameStream(t *testing.T) {
	a := New(WithStream(seededStream(t, 7)))
	b := New(WithStream(seededStream(t, 7)))
	a.Shuffle()
	b.Shuffle()
	moved := false
	for i := 0; i < DeckSize; i++ {
		ca, _ := a.DrawCard()
		cb, _ := b.DrawCard()
		if ca != cb {
			t.Fatalf("position %d: %v != %v", i, ca, cb)
		}
		if CardToInt(ca) != i+1 {
			moved = true
		}
	}
	if !moved {
		t.Fatal("shuffle left the deck in order")
	}
}

func TestShuffleRefillsDeck(t *testing.T) {
	d := New()
	for i := 0; i < 10; i++ {
		if _, err := d.DrawCard(); err != nil {
			t.Fatal(err)
		}
	}
	d.Shuffle()
	if d.Remaining() != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, d.Remaining())
	}
}

func TestDeal(t *testing.T) {
	d := New()
	d.Shuffle()
	for i := 0; i < DeckSize/hand.Size; i++ {
		h, err := d.Deal()
		if err != nil {
			t.Fatal(err)
		}
		if !h.Valid() {
			t.Fatalf("dealt an invalid hand %s: %v", h, h.Errors())
		}
		if _, err := h.Classify(); err != nil {
			t.Fatal(err)
		}
	}
	if d.Remaining() != DeckSize%hand.Size {
		t.Fatalf("expected %d cards left, got %d", DeckSize%hand.Size, d.Remaining())
	}
	if _, err := d.Deal(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected %v, got %v", ErrEmpty, err)
	}
}
