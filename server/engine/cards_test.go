package engine

import "testing"

func TestParseCard(t *testing.T) {
	tests := []struct {
		tok  string
		want Card
	}{
		{tok: "2c", want: Card{Rank: 2, Suit: 'c'}},
		{tok: "Td", want: Card{Rank: 10, Suit: 'd'}},
		{tok: "Ah", want: Card{Rank: 14, Suit: 'h'}},
		{tok: "Ks", want: Card{Rank: 13, Suit: 's'}},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, err := ParseCard(tt.tok)
			if err != nil {
				t.Fatalf("ParseCard(%q) returned error: %v", tt.tok, err)
			}
			if got != tt.want {
				t.Fatalf("ParseCard(%q) = %+v, want %+v", tt.tok, got, tt.want)
			}
			if got.String() != tt.tok {
				t.Fatalf("String() = %q, want %q", got.String(), tt.tok)
			}
		})
	}
}

func TestParseCardRejects(t *testing.T) {
	for _, tok := range []string{"", "A", "Asd", "1c", "ac", "Ax", "  "} {
		if _, err := ParseCard(tok); err == nil {
			t.Fatalf("ParseCard(%q) succeeded, want error", tok)
		}
	}
}

func allTokens() []string {
	var out []string
	for _, s := range "cdhs" {
		for _, r := range "23456789TJQKA" {
			out = append(out, string(r)+string(s))
		}
	}
	return out
}

func TestParseCardFullDeck(t *testing.T) {
	toks := allTokens()
	if len(toks) != 52 {
		t.Fatalf("deck size = %d, want 52", len(toks))
	}
	for _, tok := range toks {
		c, err := ParseCard(tok)
		if err != nil {
			t.Fatalf("ParseCard(%q) returned error: %v", tok, err)
		}
		if c.String() != tok {
			t.Fatalf("String() = %q, want %q", c.String(), tok)
		}
	}
}

func TestToPoker(t *testing.T) {
	seen := make(map[any]string)
	for _, tok := range allTokens() {
		c, _ := ParseCard(tok)
		pc, err := ToPoker(c)
		if err != nil {
			t.Fatalf("ToPoker(%q) returned error: %v", tok, err)
		}
		if prev, ok := seen[pc]; ok {
			t.Fatalf("%q and %q converted to the same library card", prev, tok)
		}
		seen[pc] = tok
	}
	if _, err := ToPoker(Card{Rank: 14, Suit: 'x'}); err == nil {
		t.Fatalf("expected error for unknown suit")
	}
}
