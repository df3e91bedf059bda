package acpc

import (
	"fmt"

	"acpc-thunderdome/server/engine"
)

// Card is a two character token, rank then suit ("As", "Td"). It is kept
// exactly as written on the wire.
type Card string

// Decode returns the rank/suit view of the token.
func (c Card) Decode() (engine.Card, error) { return engine.ParseCard(string(c)) }

// splitCards chunks a run of concatenated card tokens.
func splitCards(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd-length card string %q", ErrMalformedMessage, s)
	}
	out := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		tok := s[i : i+2]
		c, err := engine.ParseCard(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
		}
		if _, err := engine.ToPoker(c); err != nil {
			return nil, fmt.Errorf("%w: card %q: %v", ErrMalformedMessage, tok, err)
		}
		out = append(out, Card(tok))
	}
	return out, nil
}
