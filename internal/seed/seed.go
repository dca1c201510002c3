// Package seed holds the built-in event catalog and the administrator
// bootstrap. Both are idempotent: seeding an already-populated store is a
// no-op.
package seed

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/campusconnect-dev/campusconnect/internal/models"
	"github.com/campusconnect-dev/campusconnect/internal/store"
)

const (
	AdminEmail = "admin@college.edu"
	AdminName  = "University Administrator"

	// Default credential for the bootstrapped admin account. Meant to be
	// changed after first login.
	defaultAdminPassword = "password123"

	adminID = "admin-id"
)

// Catalog returns the fixture events the local store is seeded with on
// first start.
func Catalog() []models.Event {
	return []models.Event{
		{
			ID:          "1",
			Title:       "Aurora Grand Fest 2024",
			Description: "The biggest annual cultural carnival! Three days of non-stop energy, fashion shows, and star-studded events.",
			Date:        "2024-11-20",
			Time:        "10:00",
			Venue:       "University Central Grounds",
			Organizer:   "Student Council",
			Category:    models.CategoryFest,
			ImageURL:    "https://images.unsplash.com/photo-1533174072545-7a4b6ad7a6c3?q=80&w=1000&auto=format&fit=crop",
			Capacity:    2000,
			Price:       1500,
		},
		{
			ID:          "2",
			Title:       "Neon Nights: Bass Drop",
			Description: "A pulsating DJ Night featuring top-tier electronic music, laser shows, and neon face painting.",
			Date:        "2024-10-15",
			Time:        "20:00",
			Venue:       "Indoor Arena",
			Organizer:   "Music Club",
			Category:    models.CategoryDJNight,
			ImageURL:    "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?q=80&w=1000&auto=format&fit=crop",
			Capacity:    800,
			Price:       600,
		},
		{
			ID:          "3",
			Title:       "The Hamlet Interpretation",
			Description: "A contemporary take on Shakespeare classic \"Hamlet\" by our award-winning Theatrix society.",
			Date:        "2024-09-05",
			Time:        "18:30",
			Venue:       "Old Auditorium",
			Organizer:   "Drama Society",
			Category:    models.CategoryTheatrix,
			ImageURL:    "https://images.unsplash.com/photo-1507676184212-d03ab07a01bf?q=80&w=1000&auto=format&fit=crop",
			Capacity:    300,
			Price:       250,
		},
		{
			ID:          "4",
			Title:       "Inter-College Cricket Cup",
			Description: "The ultimate T20 showdown. Watch the best 11 fight for the prestigious diamond trophy.",
			Date:        "2024-08-12",
			Time:        "09:00",
			Venue:       "College Stadium",
			Organizer:   "Sports Association",
			Category:    models.CategorySports,
			ImageURL:    "https://images.unsplash.com/photo-1531415074968-036ba1b575da?q=80&w=1000&auto=format&fit=crop",
			Capacity:    500,
			Price:       0,
		},
		{
			ID:          "5",
			Title:       "Web3.0 & Metaverse Workshop",
			Description: "Hands-on session on building decentralized apps and exploring the future of spatial computing.",
			Date:        "2024-07-25",
			Time:        "11:00",
			Venue:       "Lab Complex 4",
			Organizer:   "Tech Innovators",
			Category:    models.CategoryTechnical,
			ImageURL:    "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?q=80&w=1000&auto=format&fit=crop",
			Capacity:    100,
			Price:       450,
		},
	}
}

// Admin creates the reserved administrator account if no user with the
// admin email exists yet. Check-then-create, safe to run on every startup.
func Admin(ctx context.Context, s store.Store) error {
	existing, err := s.FindUserByEmail(ctx, AdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.SaveUser(ctx, &models.User{
		ID:       adminID,
		Name:     AdminName,
		Email:    AdminEmail,
		Password: string(hash),
		Role:     models.RoleAdmin,
	})
}
