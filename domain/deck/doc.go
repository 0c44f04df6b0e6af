// Package deck deals random five-card hands from a standard 52-card deck.
//
// Cards are numbered 1-52 (clubs, diamonds, hearts, spades; Ace through King
// within each suit). Shuffle draws its randomness from a cipher.Stream,
// by default the random stream of the kyber Ed25519 suite.
package deck
