package store

import (
	"context"
	"embed"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"acpc-thunderdome/server/acpc"
)

//go:embed schema.sql
var schema embed.FS

type DB struct{ *pgxpool.Pool }

func Open(dsn string) (*DB, error) {
	p, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &DB{p}, nil
}

func (db *DB) Close(ctx context.Context)      { db.Pool.Close() }
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func Migrate(ctx context.Context, db *DB) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}

// Row is one archived state. Betting, Hole and Board hold one string per
// round (or per seat for Hole), written in wire form.
type Row struct {
	ID         int64     `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	HandNumber int       `json:"hand_number"`
	Position   int       `json:"position"`
	Street     string    `json:"street"`
	Raw        string    `json:"raw"`
	Betting    []string  `json:"betting"`
	Hole       []string  `json:"hole"`
	Board      []string  `json:"board"`
}

// RowFor flattens a parsed state into archive columns.
func RowFor(m *acpc.MatchState) Row {
	r := Row{
		HandNumber: m.HandNumber(),
		Position:   m.Position(),
		Street:     acpc.StreetName(m.Round()),
		Raw:        m.String(),
	}
	for _, round := range m.BettingActions() {
		var b strings.Builder
		for _, a := range round {
			b.WriteString(a.String())
		}
		r.Betting = append(r.Betting, b.String())
	}
	r.Hole = joinCards(m.HoleCards())
	r.Board = joinCards(m.BoardCards())
	return r
}

func joinCards(nested [][]acpc.Card) []string {
	out := make([]string, len(nested))
	for i, cards := range nested {
		var b strings.Builder
		for _, c := range cards {
			b.WriteString(string(c))
		}
		out[i] = b.String()
	}
	return out
}

// InsertState archives one parsed state and returns its id.
func (db *DB) InsertState(ctx context.Context, m *acpc.MatchState) (int64, error) {
	r := RowFor(m)
	var id int64
	err := db.QueryRow(ctx, `
        INSERT INTO match_states(hand_number, position, street, raw, betting, hole, board)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id
    `, r.HandNumber, r.Position, r.Street, r.Raw, r.Betting, r.Hole, r.Board).Scan(&id)
	return id, err
}

// InsertStates archives a batch in one transaction.
func (db *DB) InsertStates(ctx context.Context, states []*acpc.MatchState) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, m := range states {
		r := RowFor(m)
		batch.Queue(`
            INSERT INTO match_states(hand_number, position, street, raw, betting, hole, board)
            VALUES ($1,$2,$3,$4,$5,$6,$7)
        `, r.HandNumber, r.Position, r.Street, r.Raw, r.Betting, r.Hole, r.Board)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// HandStates lists archived states of one hand in insertion order.
func (db *DB) HandStates(ctx context.Context, hand int) ([]Row, error) {
	rows, err := db.Query(ctx, `
        SELECT id, created_at, hand_number, position, street, raw, betting, hole, board
          FROM match_states
         WHERE hand_number = $1
         ORDER BY id
    `, hand)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.HandNumber, &r.Position, &r.Street,
			&r.Raw, &r.Betting, &r.Hole, &r.Board); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
