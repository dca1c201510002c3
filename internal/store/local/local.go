// Package local implements the fallback store used when no remote backend
// is configured. Three independent record partitions (events, profiles,
// registrations) are persisted as JSON snapshots in an embedded sqlite
// database, one row per partition key. Every higher-level operation is a
// read-modify-write cycle over whole-partition readAll/writeAll primitives;
// a mutex per partition keeps concurrent cycles in this process from losing
// updates. This models a single interactive client, not a multi-writer
// server.
package local

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/campusconnect-dev/campusconnect/internal/models"
	"github.com/campusconnect-dev/campusconnect/internal/store"
)

const (
	partitionEvents        = "events"
	partitionProfiles      = "profiles"
	partitionRegistrations = "registrations"
)

type Store struct {
	db *sql.DB

	// Lock ordering: events before registrations when both are held.
	eventsMu   sync.Mutex
	profilesMu sync.Mutex
	regsMu     sync.Mutex
}

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	// A single connection avoids "database is locked" errors when
	// overlapping requests write snapshots.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping local store: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		key TEXT PRIMARY KEY,
		data TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init local store schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// readAll returns the full contents of a partition. A missing partition is
// not an error: the zero-length default is returned instead. A snapshot
// that no longer parses fails with store.ParseError.
func readAll[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read partition %q: %w", key, err)
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, &store.ParseError{Key: key, Err: err}
	}
	return records, nil
}

// writeAll overwrites a partition with the given records. The write is
// total, not incremental: the previous snapshot is discarded.
func writeAll[T any](ctx context.Context, s *Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode partition %q: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data
	`, key, string(raw))
	if err != nil {
		return fmt.Errorf("failed to write partition %q: %w", key, err)
	}
	return nil
}

func (s *Store) GetEvents(ctx context.Context) ([]models.Event, error) {
	return readAll[models.Event](ctx, s, partitionEvents)
}

func (s *Store) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	events, err := s.GetEvents(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) SaveEvent(ctx context.Context, event *models.Event) error {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()

	events, err := s.GetEvents(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range events {
		if events[i].ID == event.ID {
			events[i] = *event
			replaced = true
			break
		}
	}
	if !replaced {
		events = append(events, *event)
	}
	return writeAll(ctx, s, partitionEvents, events)
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	s.regsMu.Lock()
	defer s.regsMu.Unlock()

	events, err := s.GetEvents(ctx)
	if err != nil {
		return err
	}
	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}

	regs, err := s.GetRegistrations(ctx)
	if err != nil {
		return err
	}
	keptRegs := regs[:0]
	for _, r := range regs {
		if r.EventID != id {
			keptRegs = append(keptRegs, r)
		}
	}

	if err := writeAll(ctx, s, partitionEvents, kept); err != nil {
		return err
	}
	return writeAll(ctx, s, partitionRegistrations, keptRegs)
}

// ReplaceEvents overwrites the whole events partition. Used by the backend
// selector to seed the built-in catalog on first start.
func (s *Store) ReplaceEvents(ctx context.Context, events []models.Event) error {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	return writeAll(ctx, s, partitionEvents, events)
}

func (s *Store) GetUsers(ctx context.Context) ([]models.User, error) {
	return readAll[models.User](ctx, s, partitionProfiles)
}

func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	s.profilesMu.Lock()
	defer s.profilesMu.Unlock()

	users, err := s.GetUsers(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range users {
		if users[i].ID == user.ID || users[i].Email == user.Email {
			users[i] = *user
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, *user)
	}
	return writeAll(ctx, s, partitionProfiles, users)
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := s.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (s *Store) GetRegistrations(ctx context.Context) ([]models.Registration, error) {
	return readAll[models.Registration](ctx, s, partitionRegistrations)
}

func (s *Store) RegistrationsForUser(ctx context.Context, userID string) ([]models.Registration, error) {
	regs, err := s.GetRegistrations(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Registration
	for _, r := range regs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) RegistrationsForEvent(ctx context.Context, eventID string) ([]models.Registration, error) {
	regs, err := s.GetRegistrations(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Registration
	for _, r := range regs {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) InsertRegistration(ctx context.Context, userID, eventID string) (*models.Registration, error) {
	s.regsMu.Lock()
	defer s.regsMu.Unlock()

	regs, err := s.GetRegistrations(ctx)
	if err != nil {
		return nil, err
	}

	reg := models.Registration{
		ID:               uuid.NewString(),
		UserID:           userID,
		EventID:          eventID,
		RegistrationDate: time.Now().UTC(),
	}
	regs = append(regs, reg)

	if err := writeAll(ctx, s, partitionRegistrations, regs); err != nil {
		return nil, err
	}
	return &reg, nil
}

func (s *Store) DeleteRegistration(ctx context.Context, userID, eventID string) (bool, error) {
	s.regsMu.Lock()
	defer s.regsMu.Unlock()

	regs, err := s.GetRegistrations(ctx)
	if err != nil {
		return false, err
	}

	kept := regs[:0]
	removed := false
	for _, r := range regs {
		if r.UserID == userID && r.EventID == eventID {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if !removed {
		return false, nil
	}

	if err := writeAll(ctx, s, partitionRegistrations, kept); err != nil {
		return false, err
	}
	return true, nil
}
