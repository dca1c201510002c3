// Package remote adapts the store contract onto the hosted relational
// backend. Column names follow the wire schema (the events table stores the
// image reference as image_url); the gorm tags on the models translate at
// the boundary in both directions.
package remote

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/campusconnect-dev/campusconnect/internal/models"
	"github.com/campusconnect-dev/campusconnect/internal/store"
)

type Store struct {
	db *gorm.DB
}

func Connect(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, &store.RemoteError{Op: "connect", Err: err}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	tables := []interface{}{
		&models.User{},
		&models.Event{},
		&models.Registration{},
	}

	migrator := s.db.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := s.db.AutoMigrate(table); err != nil {
				return &store.RemoteError{Op: "migrate", Err: err}
			}
		}
	}

	return nil
}

func (s *Store) GetEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, &store.RemoteError{Op: "list events", Err: err}
	}
	return events, nil
}

// GetEventByID collapses every lookup failure into ErrNotFound. Callers
// treat a missing event as a normal outcome, so a transient query error
// surfaces the same way.
func (s *Store) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := s.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, store.ErrNotFound
	}
	return &event, nil
}

func (s *Store) SaveEvent(ctx context.Context, event *models.Event) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(event).Error
	if err != nil {
		return &store.RemoteError{Op: "upsert event", Err: err}
	}
	return nil
}

// DeleteEvent removes dependent registrations before the event row so a
// failure between the two statements can never strand registrations
// pointing at a missing event.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.Registration{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Event{}).Error
	})
	if err != nil {
		return &store.RemoteError{Op: "delete event", Err: err}
	}
	return nil
}

func (s *Store) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, &store.RemoteError{Op: "list users", Err: err}
	}
	return users, nil
}

func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(user).Error
	if err != nil {
		return &store.RemoteError{Op: "upsert user", Err: err}
	}
	return nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &store.RemoteError{Op: "find user by email", Err: err}
	}
	return &user, nil
}

func (s *Store) GetRegistrations(ctx context.Context) ([]models.Registration, error) {
	var regs []models.Registration
	if err := s.db.WithContext(ctx).Find(&regs).Error; err != nil {
		return nil, &store.RemoteError{Op: "list registrations", Err: err}
	}
	return regs, nil
}

func (s *Store) RegistrationsForUser(ctx context.Context, userID string) ([]models.Registration, error) {
	var regs []models.Registration
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&regs).Error; err != nil {
		return nil, &store.RemoteError{Op: "list registrations for user", Err: err}
	}
	return regs, nil
}

func (s *Store) RegistrationsForEvent(ctx context.Context, eventID string) ([]models.Registration, error) {
	var regs []models.Registration
	if err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&regs).Error; err != nil {
		return nil, &store.RemoteError{Op: "list registrations for event", Err: err}
	}
	return regs, nil
}

// InsertRegistration performs the capacity check and the insert as one
// serialized operation: the event row is locked for the duration of the
// transaction, so two processes contending for the last slot cannot both
// observe it free. The duplicate check is repeated under the same lock and
// the unique (user_id, event_id) index backs it up.
func (s *Store) InsertRegistration(ctx context.Context, userID, eventID string) (*models.Registration, error) {
	reg := &models.Registration{
		ID:               uuid.NewString(),
		UserID:           userID,
		EventID:          eventID,
		RegistrationDate: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event models.Event
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&event, "id = ?", eventID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return store.ErrNotFound
		}
		if err != nil {
			return &store.RemoteError{Op: "lock event", Err: err}
		}

		var duplicates int64
		if err := tx.Model(&models.Registration{}).
			Where("user_id = ? AND event_id = ?", userID, eventID).
			Count(&duplicates).Error; err != nil {
			return &store.RemoteError{Op: "check registration", Err: err}
		}
		if duplicates > 0 {
			return store.ErrAlreadyRegistered
		}

		var occupancy int64
		if err := tx.Model(&models.Registration{}).
			Where("event_id = ?", eventID).
			Count(&occupancy).Error; err != nil {
			return &store.RemoteError{Op: "count occupancy", Err: err}
		}
		if occupancy >= int64(event.Capacity) {
			return store.ErrCapacityExceeded
		}

		if err := tx.Create(reg).Error; err != nil {
			return &store.RemoteError{Op: "insert registration", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *Store) DeleteRegistration(ctx context.Context, userID, eventID string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&models.Registration{})
	if res.Error != nil {
		return false, &store.RemoteError{Op: "delete registration", Err: res.Error}
	}
	return res.RowsAffected > 0, nil
}
