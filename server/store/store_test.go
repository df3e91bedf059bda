package store

import (
	"context"
	"os"
	"reflect"
	"testing"

	"acpc-thunderdome/server/acpc"
)

func TestRowFor(t *testing.T) {
	m, err := acpc.Parse("MATCHSTATE:0:37:cr100/cc/r200f:2c3d|4h5s/6c7d8h/9cTs")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := RowFor(m)
	if r.HandNumber != 37 || r.Position != 0 || r.Street != "turn" {
		t.Fatalf("unexpected row header: %+v", r)
	}
	if r.Raw != "MATCHSTATE:0:37:cr100/cc/r200f:2c3d|4h5s/6c7d8h/9cTs" {
		t.Fatalf("raw = %q", r.Raw)
	}
	if want := []string{"cr100", "cc", "r200f"}; !reflect.DeepEqual(r.Betting, want) {
		t.Fatalf("betting = %v, want %v", r.Betting, want)
	}
	if want := []string{"2c3d", "4h5s"}; !reflect.DeepEqual(r.Hole, want) {
		t.Fatalf("hole = %v, want %v", r.Hole, want)
	}
	if want := []string{"", "6c7d8h", "9cTs"}; !reflect.DeepEqual(r.Board, want) {
		t.Fatalf("board = %v, want %v", r.Board, want)
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close(ctx)
	if err := db.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	const hand = 8589934592 // past int32
	if _, err := db.Exec(ctx, `DELETE FROM match_states WHERE hand_number = $1`, hand); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	first, _ := acpc.Parse("MATCHSTATE:1:8589934592::|TdAs")
	second, _ := acpc.Parse("MATCHSTATE:1:8589934592:cr300c/:|TdAs/2c3c4c")
	if _, err := db.InsertState(ctx, first); err != nil {
		t.Fatalf("InsertState: %v", err)
	}
	if err := db.InsertStates(ctx, []*acpc.MatchState{second}); err != nil {
		t.Fatalf("InsertStates: %v", err)
	}

	rows, err := db.HandStates(ctx, hand)
	if err != nil {
		t.Fatalf("HandStates: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Raw != first.String() || rows[1].Raw != second.String() {
		t.Fatalf("unexpected raw lines: %q, %q", rows[0].Raw, rows[1].Raw)
	}
	if rows[0].HandNumber != hand {
		t.Fatalf("hand number = %d, want %d", rows[0].HandNumber, hand)
	}
	if rows[1].Street != "flop" {
		t.Fatalf("street = %q, want flop", rows[1].Street)
	}
}
