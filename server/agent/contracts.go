package agent

import (
	"acpc-thunderdome/server/acpc"
)

// Observation is the per-seat JSON view of one match state.
type Observation struct {
	HandID      int            `json:"hand_id"`
	Seat        int            `json:"seat"`
	Street      string         `json:"street"`      // preflop|flop|turn|river
	HoleCards   []string       `json:"hole_cards"`  // viewer's cards, e.g. ["As","Kd"]
	Board       []string       `json:"board"`       // every board card dealt so far
	Opponents   [][]string     `json:"opponents"`   // other seats, empty when hidden
	History     [][]string     `json:"history"`     // per round, e.g. [["c","r100"],["c"]]
	ActionMix   map[string]int `json:"action_mix"`  // fold/call/raise counts
	HistoryLen  int            `json:"history_len"`
	LastAction  string         `json:"last_action,omitempty"`
	RaiseTotal  int            `json:"raise_total"` // sum of sized raises
	BoardRounds int            `json:"board_rounds"`
}

// BuildObservation converts a parsed state into the JSON we hand to a bot,
// seen from the state's own position.
func BuildObservation(m *acpc.MatchState) Observation {
	hole := m.HoleCards()
	o := Observation{
		HandID:      m.HandNumber(),
		Seat:        m.Position(),
		Street:      acpc.StreetName(m.Round()),
		HoleCards:   []string{},
		Board:       cardsToStr(m.FlatBoardCards()),
		Opponents:   [][]string{},
		ActionMix:   map[string]int{"fold": 0, "call": 0, "raise": 0},
		BoardRounds: len(m.BoardCards()),
	}
	for seat, cards := range hole {
		if seat == m.Position() {
			o.HoleCards = cardsToStr(cards)
			continue
		}
		o.Opponents = append(o.Opponents, cardsToStr(cards))
	}

	for _, round := range m.BettingActions() {
		strs := make([]string, len(round))
		for i, a := range round {
			strs[i] = a.String()
			o.ActionMix[a.Kind.String()]++
			if a.Kind == acpc.Raise && a.Sized {
				o.RaiseTotal += a.Amount
			}
		}
		o.History = append(o.History, strs)
	}
	flat := m.FlatBettingActions()
	o.HistoryLen = len(flat)
	if len(flat) > 0 {
		o.LastAction = flat[len(flat)-1].String()
	}
	return o
}

func cardsToStr(cs []acpc.Card) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}
