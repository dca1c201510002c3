// Package registry enforces the two registration invariants: a user holds
// at most one registration per event, and an event never exceeds its
// declared capacity, even when register calls for the same event overlap.
package registry

import (
	"context"
	"sync"

	"github.com/campusconnect-dev/campusconnect/internal/models"
	"github.com/campusconnect-dev/campusconnect/internal/store"
)

// Manager serializes registration decisions per event: the existence,
// duplicate and capacity checks run under a per-event mutex held until the
// insert commits, so overlapping calls in this process cannot both observe
// the last slot free. Against the remote backend the adapter additionally
// locks the event row, which extends the guarantee across processes.
type Manager struct {
	store store.Store
	locks sync.Map // eventID -> *sync.Mutex
}

func NewManager(s store.Store) *Manager {
	return &Manager{store: s}
}

// Default is the process-wide manager bound to the active backend.
var Default *Manager

func Init(s store.Store) {
	Default = NewManager(s)
}

func (m *Manager) lockEvent(eventID string) func() {
	v, _ := m.locks.LoadOrStore(eventID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Occupancy counts live registrations for the event. It always re-reads
// the store; there is no caching layer.
func (m *Manager) Occupancy(ctx context.Context, eventID string) (int, error) {
	regs, err := m.store.RegistrationsForEvent(ctx, eventID)
	if err != nil {
		return 0, err
	}
	return len(regs), nil
}

func (m *Manager) IsRegistered(ctx context.Context, userID, eventID string) (bool, error) {
	regs, err := m.store.RegistrationsForUser(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, r := range regs {
		if r.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}

// Register creates a registration for the pair, checking in order: the
// event exists (ErrNotFound), the user is not already registered
// (ErrAlreadyRegistered), and occupancy is below capacity
// (ErrCapacityExceeded). Payment confirmation is the caller's concern;
// by the time Register is called it is treated as settled.
func (m *Manager) Register(ctx context.Context, userID, eventID string) (*models.Registration, error) {
	unlock := m.lockEvent(eventID)
	defer unlock()

	event, err := m.store.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	registered, err := m.IsRegistered(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, store.ErrAlreadyRegistered
	}

	occupancy, err := m.Occupancy(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if occupancy >= event.Capacity {
		return nil, store.ErrCapacityExceeded
	}

	return m.store.InsertRegistration(ctx, userID, eventID)
}

// Cancel removes the pair's registration if one exists. Cancelling a
// non-existent registration is a no-op success and returns false.
func (m *Manager) Cancel(ctx context.Context, userID, eventID string) (bool, error) {
	unlock := m.lockEvent(eventID)
	defer unlock()

	return m.store.DeleteRegistration(ctx, userID, eventID)
}

func (m *Manager) RegistrationsForUser(ctx context.Context, userID string) ([]models.Registration, error) {
	return m.store.RegistrationsForUser(ctx, userID)
}

func (m *Manager) RegistrationsForEvent(ctx context.Context, eventID string) ([]models.Registration, error) {
	return m.store.RegistrationsForEvent(ctx, eventID)
}
