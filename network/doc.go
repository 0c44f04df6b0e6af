// Package network exposes the hand evaluator over HTTP.
//
// # Endpoints
//
// POST /api/hands: body {"cards": "2H 3H 4H 5H 6H"}. Answers 200 with the
// category of a valid hand, 422 with the validation messages of an invalid
// one, and 400 when the body cannot be decoded.
//
// GET /api/categories: the nine categories, strongest first.
//
// GET /health: liveness probe.
//
// # Components
//
// Server: wraps an http.Server serving on a caller-supplied listener,
// optionally over TLS with a certificate from GenerateSelfSignedCert.
//
// Client: calls a remote Server.
package network
