package acpc

import (
	"fmt"
	"sync/atomic"
)

// Parser keeps the most recent successfully parsed state. A failed Parse
// leaves the previous state in place. Accessors fail with ErrUninitialized
// until the first successful Parse.
type Parser struct {
	cur atomic.Pointer[MatchState]
}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) Parse(message string) (*MatchState, error) {
	m, err := Parse(message)
	if err != nil {
		return nil, err
	}
	p.cur.Store(m)
	return m, nil
}

// State returns the stored state.
func (p *Parser) State() (*MatchState, error) {
	m := p.cur.Load()
	if m == nil {
		return nil, ErrUninitialized
	}
	return m, nil
}

func (p *Parser) Position() (int, error) {
	m, err := p.State()
	if err != nil {
		return 0, err
	}
	return m.Position(), nil
}

func (p *Parser) HandNumber() (int, error) {
	m, err := p.State()
	if err != nil {
		return 0, err
	}
	return m.HandNumber(), nil
}

func (p *Parser) BettingActions() ([][]Action, error) {
	m, err := p.State()
	if err != nil {
		return nil, err
	}
	return m.BettingActions(), nil
}

func (p *Parser) BettingAction(round int) ([]Action, error) {
	m, err := p.State()
	if err != nil {
		return nil, err
	}
	return m.BettingAction(round)
}

func (p *Parser) HoleCards() ([][]Card, error) {
	m, err := p.State()
	if err != nil {
		return nil, err
	}
	return m.HoleCards(), nil
}

func (p *Parser) HoleCard(player int) ([]Card, error) {
	m, err := p.State()
	if err != nil {
		return nil, err
	}
	return m.HoleCard(player)
}

func (p *Parser) BoardCards() ([][]Card, error) {
	m, err := p.State()
	if err != nil {
		return nil, err
	}
	return m.BoardCards(), nil
}

func (p *Parser) BoardCard(round int) ([]Card, error) {
	m, err := p.State()
	if err != nil {
		return nil, err
	}
	return m.BoardCard(round)
}

func (p *Parser) FlatBettingActions() ([]Action, error) {
	m, err := p.State()
	if err != nil {
		return nil, err
	}
	return m.FlatBettingActions(), nil
}

func (p *Parser) FlatHoleCards() ([]Card, error) {
	m, err := p.State()
	if err != nil {
		return nil, err
	}
	return m.FlatHoleCards(), nil
}

func (p *Parser) FlatBoardCards() ([]Card, error) {
	m, err := p.State()
	if err != nil {
		return nil, err
	}
	return m.FlatBoardCards(), nil
}

var streets = [...]string{"preflop", "flop", "turn", "river"}

// StreetName names a betting round the way hold'em does.
func StreetName(round int) string {
	if round >= 0 && round < len(streets) {
		return streets[round]
	}
	return fmt.Sprintf("round%d", round)
}
