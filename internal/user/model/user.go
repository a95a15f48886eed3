package model

import "time"

// User represents a registered traveller.
// Matches the users table schema.
type User struct {
	ID              uint64    `gorm:"primaryKey;column:id"                                                    json:"id"`
	Username        string    `gorm:"column:username;type:varchar(80);not null;uniqueIndex:idx_users_username" json:"username"`
	Email           string    `gorm:"column:email;type:varchar(120);not null;uniqueIndex:idx_users_email"      json:"email"`
	PasswordHash    string    `gorm:"column:password_hash;type:varchar(255);not null"                         json:"-"`
	FirstName       string    `gorm:"column:first_name;type:varchar(50);not null"                             json:"first_name"`
	LastName        string    `gorm:"column:last_name;type:varchar(50);not null"                              json:"last_name"`
	Bio             *string   `gorm:"column:bio;type:text"                                                    json:"bio,omitempty"`
	TravelInterests *string   `gorm:"column:travel_interests;type:text"                                       json:"travel_interests,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;not null"                                              json:"created_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// Profile is the public view of a user shown next to groups and messages.
type Profile struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Profile returns the public view of u.
func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username, FirstName: u.FirstName, LastName: u.LastName}
}
