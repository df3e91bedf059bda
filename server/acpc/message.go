// Package acpc parses ACPC match state lines of the form
//
//	MATCHSTATE:<position>:<hand>:<betting>:<cards>
//
// into immutable MatchState values.
package acpc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Tag is written by MatchState.String. Parse accepts any tag.
const Tag = "MATCHSTATE"

// MatchState is one parsed message. All accessors return copies, so a
// MatchState never changes after Parse returns it.
type MatchState struct {
	position   int
	handNumber int
	betting    [][]Action
	hole       [][]Card
	board      [][]Card

	flatBetting []Action
	flatHole    []Card
	flatBoard   []Card
}

// Parse decodes a single protocol line.
func Parse(message string) (*MatchState, error) {
	fields := strings.Split(message, ":")
	if len(fields) != 5 {
		return nil, fmt.Errorf("%w: want 5 fields, got %d", ErrMalformedMessage, len(fields))
	}
	position, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: position %q", ErrMalformedMessage, fields[1])
	}
	hand, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: hand number %q", ErrMalformedMessage, fields[2])
	}
	betting, err := parseBetting(fields[3])
	if err != nil {
		return nil, err
	}
	hole, board, err := parseCards(fields[4])
	if err != nil {
		return nil, err
	}
	return &MatchState{
		position:    position,
		handNumber:  hand,
		betting:     betting,
		hole:        hole,
		board:       board,
		flatBetting: flatten(betting),
		flatHole:    flatten(hole),
		flatBoard:   flatten(board),
	}, nil
}

func parseBetting(s string) ([][]Action, error) {
	rounds := strings.Split(s, "/")
	out := make([][]Action, len(rounds))
	for rd, r := range rounds {
		acts, err := scanRound(r)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", rd, err)
		}
		out[rd] = acts
	}
	return out, nil
}

// parseCards splits the cards field at its first '/'. The board part keeps
// that '/', so board round 0 is always the (empty) preflop round and board
// indexes line up with betting rounds. A field with no '/' has hole cards
// only and a single empty board round.
func parseCards(s string) (hole, board [][]Card, err error) {
	holeStr := s
	var rounds []string
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		holeStr, rounds = s[:idx], strings.Split(s[idx+1:], "/")
	}

	players := strings.Split(holeStr, "|")
	hole = make([][]Card, len(players))
	for p, str := range players {
		if hole[p], err = splitCards(str); err != nil {
			return nil, nil, fmt.Errorf("hole cards of player %d: %w", p, err)
		}
	}

	// round 0 is the empty string in front of the first '/'
	board = make([][]Card, 1, len(rounds)+1)
	board[0] = []Card{}
	for rd, str := range rounds {
		cards, err := splitCards(str)
		if err != nil {
			return nil, nil, fmt.Errorf("board round %d: %w", rd+1, err)
		}
		board = append(board, cards)
	}
	return hole, board, nil
}

func flatten[T any](nested [][]T) []T {
	n := 0
	for _, in := range nested {
		n += len(in)
	}
	out := make([]T, 0, n)
	for _, in := range nested {
		out = append(out, in...)
	}
	return out
}

func clone2[T any](nested [][]T) [][]T {
	out := make([][]T, len(nested))
	for i, in := range nested {
		out[i] = append(make([]T, 0, len(in)), in...)
	}
	return out
}

func index[T any](nested [][]T, i int, what string) ([]T, error) {
	if i < 0 || i >= len(nested) {
		return nil, fmt.Errorf("%w: %s %d (have %d)", ErrIndexOutOfRange, what, i, len(nested))
	}
	return append(make([]T, 0, len(nested[i])), nested[i]...), nil
}

func (m *MatchState) Position() int   { return m.position }
func (m *MatchState) HandNumber() int { return m.handNumber }

// Round is the index of the last betting round present.
func (m *MatchState) Round() int { return len(m.betting) - 1 }

// BettingActions returns every round's actions, outer index = round.
func (m *MatchState) BettingActions() [][]Action { return clone2(m.betting) }

// BettingAction returns the actions of one round.
func (m *MatchState) BettingAction(round int) ([]Action, error) {
	return index(m.betting, round, "betting round")
}

// HoleCards returns private cards, outer index = seat. Seats whose cards are
// hidden have an empty slice.
func (m *MatchState) HoleCards() [][]Card { return clone2(m.hole) }

func (m *MatchState) HoleCard(player int) ([]Card, error) {
	return index(m.hole, player, "player")
}

// BoardCards returns communal cards, outer index = round.
func (m *MatchState) BoardCards() [][]Card { return clone2(m.board) }

func (m *MatchState) BoardCard(round int) ([]Card, error) {
	return index(m.board, round, "board round")
}

func (m *MatchState) FlatBettingActions() []Action { return append([]Action(nil), m.flatBetting...) }
func (m *MatchState) FlatHoleCards() []Card        { return append([]Card(nil), m.flatHole...) }
func (m *MatchState) FlatBoardCards() []Card       { return append([]Card(nil), m.flatBoard...) }

// String re-encodes the state as a protocol line.
func (m *MatchState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d:", Tag, m.position, m.handNumber)
	for rd, acts := range m.betting {
		if rd > 0 {
			b.WriteByte('/')
		}
		for _, a := range acts {
			b.WriteString(a.String())
		}
	}
	b.WriteByte(':')
	for p, cards := range m.hole {
		if p > 0 {
			b.WriteByte('|')
		}
		writeCards(&b, cards)
	}
	for _, cards := range m.board[1:] {
		b.WriteByte('/')
		writeCards(&b, cards)
	}
	return b.String()
}

func writeCards(b *strings.Builder, cards []Card) {
	for _, c := range cards {
		b.WriteString(string(c))
	}
}

type matchStateJSON struct {
	Position       int        `json:"position"`
	HandNumber     int        `json:"hand_number"`
	BettingActions [][]Action `json:"betting_actions"`
	HoleCards      [][]Card   `json:"hole_cards"`
	BoardCards     [][]Card   `json:"board_cards"`
}

func (m *MatchState) MarshalJSON() ([]byte, error) {
	return json.Marshal(matchStateJSON{
		Position:       m.position,
		HandNumber:     m.handNumber,
		BettingActions: m.betting,
		HoleCards:      m.hole,
		BoardCards:     m.board,
	})
}
