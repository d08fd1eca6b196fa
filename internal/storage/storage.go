package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/Ammulu15/transport-food-data-collection/internal/models"
)

// ErrDuplicateEmail is returned by RegisterUser when the email is already
// taken. Every other error from this package is a storage failure.
var ErrDuplicateEmail = errors.New("email already registered")

func NewSQLite(filepath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", filepath)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS users (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL
        );
        CREATE TABLE IF NOT EXISTS transport_data (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            owner_ref TEXT NOT NULL,
            transport_mode TEXT NOT NULL,
            distance REAL NOT NULL,
            emissions REAL NOT NULL,
            created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
        );
        CREATE TABLE IF NOT EXISTS food_choices (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            owner_ref TEXT NOT NULL,
            dietary_pattern TEXT NOT NULL,
            food_item TEXT NOT NULL,
            created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
        );
        CREATE TABLE IF NOT EXISTS contact_messages (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL,
            message TEXT NOT NULL,
            timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
        );
    `)
	return err
}

// Store wraps a shared *sql.DB pool. Records are append-only; nothing here
// updates or deletes submitted rows.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) RegisterUser(ctx context.Context, name, email, passwordHash string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash) VALUES (?, ?, ?)",
		name, email, passwordHash,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash FROM users WHERE email = ?", email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

// ResetPassword returns true iff a user row was updated.
func (s *Store) ResetPassword(ctx context.Context, email, passwordHash string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET password_hash = ? WHERE email = ?", passwordHash, email,
	)
	if err != nil {
		return false, fmt.Errorf("update password: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) InsertTransportEntry(ctx context.Context, ownerRef, mode string, distance, emissions float64) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO transport_data (owner_ref, transport_mode, distance, emissions) VALUES (?, ?, ?, ?)",
		ownerRef, mode, distance, emissions,
	)
	if err != nil {
		return 0, fmt.Errorf("insert transport entry: %w", err)
	}
	return res.LastInsertId()
}

// InsertFoodEntries stores one row per item inside a single transaction, so a
// failed submission never leaves a partial item list behind. Zero items is a
// no-op.
func (s *Store) InsertFoodEntries(ctx context.Context, ownerRef, patternLabel string, items []string) error {
	if len(items) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin food tx: %w", err)
	}
	for _, item := range items {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO food_choices (owner_ref, dietary_pattern, food_item) VALUES (?, ?, ?)",
			ownerRef, patternLabel, item,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert food entry: %w", err)
		}
	}
	return tx.Commit()
}

func (s *Store) TransportEntriesByOwner(ctx context.Context, ownerRef string) ([]models.TransportEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, owner_ref, transport_mode, distance, emissions, created_at FROM transport_data WHERE owner_ref = ? ORDER BY id",
		ownerRef,
	)
	if err != nil {
		return nil, fmt.Errorf("query transport entries: %w", err)
	}
	defer rows.Close()

	var entries []models.TransportEntry
	for rows.Next() {
		var e models.TransportEntry
		if err := rows.Scan(&e.ID, &e.OwnerRef, &e.TransportMode, &e.Distance, &e.Emissions, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transport entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) FoodEntriesByOwner(ctx context.Context, ownerRef string) ([]models.FoodEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, owner_ref, dietary_pattern, food_item, created_at FROM food_choices WHERE owner_ref = ? ORDER BY id",
		ownerRef,
	)
	if err != nil {
		return nil, fmt.Errorf("query food entries: %w", err)
	}
	defer rows.Close()

	var entries []models.FoodEntry
	for rows.Next() {
		var e models.FoodEntry
		if err := rows.Scan(&e.ID, &e.OwnerRef, &e.DietaryPattern, &e.FoodItem, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan food entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) InsertContactMessage(ctx context.Context, name, message string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO contact_messages (name, message) VALUES (?, ?)",
		name, message,
	)
	if err != nil {
		return 0, fmt.Errorf("insert contact message: %w", err)
	}
	return res.LastInsertId()
}
