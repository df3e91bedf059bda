package engine

import (
	"fmt"
	"strings"
)

const (
	ranks = "  23456789TJQKA"
	suits = "cdhs"
)

// ParseCard decodes a two character token such as "As" or "Td".
func ParseCard(tok string) (Card, error) {
	if len(tok) != 2 {
		return Card{}, fmt.Errorf("card %q: want 2 characters", tok)
	}
	rnk := strings.IndexByte(ranks[2:], tok[0])
	if rnk < 0 {
		return Card{}, fmt.Errorf("card %q: bad rank %q", tok, tok[0])
	}
	if strings.IndexByte(suits, tok[1]) < 0 {
		return Card{}, fmt.Errorf("card %q: bad suit %q", tok, tok[1])
	}
	return Card{Rank: rnk + 2, Suit: tok[1]}, nil
}

func (c Card) String() string {
	return fmt.Sprintf("%c%c", ranks[c.Rank], c.Suit)
}
