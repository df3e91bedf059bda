package agent

import (
	"encoding/json"
	"reflect"
	"testing"

	"acpc-thunderdome/server/acpc"
)

func TestBuildObservation(t *testing.T) {
	m, err := acpc.Parse("MATCHSTATE:1:37:cr100/cc/r200f:2c3d|4h5s/6c7d8h/9cTs")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	o := BuildObservation(m)

	if o.HandID != 37 || o.Seat != 1 || o.Street != "turn" {
		t.Fatalf("unexpected header: %+v", o)
	}
	if want := []string{"4h", "5s"}; !reflect.DeepEqual(o.HoleCards, want) {
		t.Fatalf("hole = %v, want %v", o.HoleCards, want)
	}
	if want := [][]string{{"2c", "3d"}}; !reflect.DeepEqual(o.Opponents, want) {
		t.Fatalf("opponents = %v, want %v", o.Opponents, want)
	}
	if want := []string{"6c", "7d", "8h", "9c", "Ts"}; !reflect.DeepEqual(o.Board, want) {
		t.Fatalf("board = %v, want %v", o.Board, want)
	}
	if want := [][]string{{"c", "r100"}, {"c", "c"}, {"r200", "f"}}; !reflect.DeepEqual(o.History, want) {
		t.Fatalf("history = %v, want %v", o.History, want)
	}
	if want := map[string]int{"fold": 1, "call": 3, "raise": 2}; !reflect.DeepEqual(o.ActionMix, want) {
		t.Fatalf("action mix = %v, want %v", o.ActionMix, want)
	}
	if o.HistoryLen != 6 || o.LastAction != "f" || o.RaiseTotal != 300 || o.BoardRounds != 3 {
		t.Fatalf("unexpected summary: %+v", o)
	}
	if _, err := json.Marshal(o); err != nil {
		t.Fatalf("observation should marshal: %v", err)
	}
}

func TestBuildObservationHiddenCards(t *testing.T) {
	m, err := acpc.Parse("MATCHSTATE:0:0::TdAs|")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	o := BuildObservation(m)
	if o.Street != "preflop" || o.HistoryLen != 0 || o.LastAction != "" {
		t.Fatalf("unexpected observation: %+v", o)
	}
	if len(o.Board) != 0 || len(o.Opponents) != 1 || len(o.Opponents[0]) != 0 {
		t.Fatalf("unexpected cards: %+v", o)
	}
}
