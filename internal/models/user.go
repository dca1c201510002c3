package models

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User rows live in the "profiles" table on the remote backend. The
// password field must survive the local snapshot round trip, so it keeps a
// json tag; callers only ever see types.UserResponse, which omits it.
type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"password,omitempty" gorm:"column:password"`
	Role     Role   `json:"role" gorm:"not null;default:student"`
}

func (User) TableName() string {
	return "profiles"
}
