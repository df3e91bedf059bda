package engine

import (
	"fmt"

	poker "github.com/paulhankin/poker"
)

// ToPoker converts to the paulhankin/poker card type. The library rejects
// ranks and suits it does not know.
func ToPoker(c Card) (poker.Card, error) {
	var s poker.Suit
	switch c.Suit {
	case 'c':
		s = poker.Club
	case 'd':
		s = poker.Diamond
	case 'h':
		s = poker.Heart
	case 's':
		s = poker.Spade
	default:
		var zero poker.Card
		return zero, fmt.Errorf("card %v: unknown suit", c)
	}
	// Our ranks: 2..14 (Ace=14). Library: 1..13 (Ace=1).
	r := poker.Rank(c.Rank)
	if c.Rank == 14 {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}
