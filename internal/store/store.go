package store

import (
	"context"

	"github.com/campusconnect-dev/campusconnect/internal/models"
)

// Store is the backend-agnostic data-access contract. Two implementations
// exist: the remote relational adapter and the local snapshot store. The
// rest of the system depends only on this interface; which variant is
// active is decided once at process start.
type Store interface {
	GetEvents(ctx context.Context) ([]models.Event, error)
	// GetEventByID returns ErrNotFound when no event has the given id.
	GetEventByID(ctx context.Context, id string) (*models.Event, error)
	// SaveEvent inserts or replaces the event by identifier.
	SaveEvent(ctx context.Context, event *models.Event) error
	// DeleteEvent removes the event and all of its registrations.
	DeleteEvent(ctx context.Context, id string) error

	GetUsers(ctx context.Context) ([]models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	// FindUserByEmail matches exactly (case-sensitive). A missing user is a
	// normal outcome and returns (nil, nil), not an error.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	GetRegistrations(ctx context.Context) ([]models.Registration, error)
	RegistrationsForUser(ctx context.Context, userID string) ([]models.Registration, error)
	RegistrationsForEvent(ctx context.Context, eventID string) ([]models.Registration, error)
	// InsertRegistration persists a new registration with a fresh identifier
	// and the current timestamp. The remote implementation performs the
	// capacity and duplicate checks inside a single serialized transaction;
	// the local implementation relies on the registry's per-event lock.
	InsertRegistration(ctx context.Context, userID, eventID string) (*models.Registration, error)
	// DeleteRegistration reports whether a registration existed and was
	// removed. Deleting a non-existent registration is a no-op success.
	DeleteRegistration(ctx context.Context, userID, eventID string) (bool, error)
}
