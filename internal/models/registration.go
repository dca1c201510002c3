package models

import "time"

// Registration links a user to an event. The (user_id, event_id) pair is
// unique across live registrations; the composite index backs that up on
// the remote store.
type Registration struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	UserID           string    `json:"userId" gorm:"column:user_id;not null;uniqueIndex:idx_user_event"`
	EventID          string    `json:"eventId" gorm:"column:event_id;not null;uniqueIndex:idx_user_event"`
	RegistrationDate time.Time `json:"registrationDate" gorm:"column:registration_date;not null"`
}

func (Registration) TableName() string {
	return "registrations"
}
