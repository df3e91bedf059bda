package engine

type Card struct {
	Rank int
	Suit byte
} // e.g. "As" => rank 14, suit 's'
