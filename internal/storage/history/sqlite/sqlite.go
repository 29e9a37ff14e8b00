// Package sqlite implements the history.Store interface on modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/openfrac/gofracd/internal/storage/history"
)

const schema = `
CREATE TABLE IF NOT EXISTS bids (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	bidder      TEXT    NOT NULL,
	price       INTEGER NOT NULL,
	auction_end INTEGER NOT NULL,
	opening     INTEGER NOT NULL,
	at          INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS settlements (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	kind    TEXT    NOT NULL,
	account TEXT    NOT NULL,
	amount  INTEGER NOT NULL,
	at      INTEGER NOT NULL
);
`

// Store is the sqlite-backed history store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at the given path.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db at %s: %w", path, err)
	}

	// One writer at a time keeps modernc's locking happy
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveBid appends a bid row.
func (s *Store) SaveBid(ctx context.Context, rec history.BidRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bids (bidder, price, auction_end, opening, at) VALUES (?, ?, ?, ?, ?)`,
		rec.Bidder, rec.Price, rec.AuctionEnd, boolToInt(rec.Opening), rec.At)
	return err
}

// SaveSettlement appends a settlement row.
func (s *Store) SaveSettlement(ctx context.Context, rec history.SettlementRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settlements (kind, account, amount, at) VALUES (?, ?, ?, ?)`,
		rec.Kind, rec.Account, rec.Amount, rec.At)
	return err
}

// Bids returns the most recent bids, newest first.
func (s *Store) Bids(ctx context.Context, limit int) ([]history.BidRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT bidder, price, auction_end, opening, at FROM bids ORDER BY id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []history.BidRecord
	for rows.Next() {
		var rec history.BidRecord
		var opening int
		if err := rows.Scan(&rec.Bidder, &rec.Price, &rec.AuctionEnd, &opening, &rec.At); err != nil {
			return nil, err
		}
		rec.Opening = opening != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Settlements returns the most recent settlements, newest first.
func (s *Store) Settlements(ctx context.Context, limit int) ([]history.SettlementRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, account, amount, at FROM settlements ORDER BY id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []history.SettlementRecord
	for rows.Next() {
		var rec history.SettlementRecord
		if err := rows.Scan(&rec.Kind, &rec.Account, &rec.Amount, &rec.At); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
