package models

// Role represents a user's access profile.
type Role int

const (
	RoleAdmin Role = iota + 1
	RoleUser
)

var roleLabels = map[Role]string{
	RoleAdmin: "Admin",
	RoleUser:  "User",
}

// String returns the display label for the role.
func (r Role) String() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return "Unknown"
}

// User represents an API user that can authenticate and obtain a token
type User struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string `gorm:"size:150;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"not null;default:2" json:"role"`
	Active       bool   `gorm:"not null;default:true" json:"-"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
