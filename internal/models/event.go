package models

import "fmt"

type Category string

const (
	CategoryFest      Category = "Fest"
	CategoryDJNight   Category = "DJ Night"
	CategoryWorkshop  Category = "Workshop"
	CategorySports    Category = "Sports"
	CategoryTechnical Category = "Technical"
	CategoryTheatrix  Category = "Theatrix"
	CategorySeminar   Category = "Seminar"
)

var Categories = []Category{
	CategoryFest,
	CategoryDJNight,
	CategoryWorkshop,
	CategorySports,
	CategoryTechnical,
	CategoryTheatrix,
	CategorySeminar,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Event is stored as-is on both backends. The remote "events" table names
// the image column image_url while the domain (and the JSON surface) call
// it imageUrl; the gorm tag carries that translation in both directions.
type Event struct {
	ID          string   `json:"id" gorm:"primaryKey"`
	Title       string   `json:"title" gorm:"not null"`
	Description string   `json:"description"`
	Date        string   `json:"date" gorm:"not null"` // calendar day, YYYY-MM-DD
	Time        string   `json:"time" gorm:"not null"` // local wall-clock, HH:MM
	Venue       string   `json:"venue"`
	Organizer   string   `json:"organizer"`
	Category    Category `json:"category" gorm:"not null"`
	ImageURL    string   `json:"imageUrl" gorm:"column:image_url"`
	Capacity    int      `json:"capacity" gorm:"not null;check:capacity >= 0"`
	Price       int      `json:"price" gorm:"not null;check:price >= 0"` // 0 means free
}

func (Event) TableName() string {
	return "events"
}

func (e *Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("event title is required")
	}
	if !e.Category.Valid() {
		return fmt.Errorf("unknown event category %q", e.Category)
	}
	if e.Capacity < 0 {
		return fmt.Errorf("event capacity must not be negative")
	}
	if e.Price < 0 {
		return fmt.Errorf("event price must not be negative")
	}
	return nil
}
