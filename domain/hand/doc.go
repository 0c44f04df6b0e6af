// Package hand classifies five-card poker hands written as text.
//
// # Input
//
// A hand is five whitespace-separated tokens, each a face followed by a
// suit: faces 2-10, J, Q, K, A and suits H, D, S, C. For example
// "10H JH QH KH AH".
//
// # Validation
//
// New never fails. Every problem with the input (blank input, wrong count,
// unknown faces or suits, duplicate cards, five cards of one face) is
// collected on the Hand and reported together by Errors and Err.
//
// # Classification
//
// Classify walks the categories from Straight flush down to High card and
// returns the first one whose predicate holds. An Ace counts both high
// (10-J-Q-K-A) and low (A-2-3-4-5) in straights, but runs never wrap
// around the Ace.
//
// Hands hold no shared state, so any number of goroutines may evaluate
// hands concurrently.
package hand
