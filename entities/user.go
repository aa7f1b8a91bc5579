package entities

import "time"

// User is a host or guest on the platform.
type User struct {
	UserID      uint      `gorm:"primaryKey;column:user_id" json:"user_id"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	Surname     string    `gorm:"type:varchar(100);not null" json:"surname"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	PhoneNumber string    `gorm:"type:varchar(40)" json:"phone_number"`
	IsHost      bool      `gorm:"not null;default:false" json:"is_host"`
	Avatar      string    `json:"avatar"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }

// FullName joins first name and surname the way listings display hosts and guests.
func (u User) FullName() string {
	return FullName(u.FirstName, u.Surname)
}

func FullName(firstName, surname string) string {
	return firstName + " " + surname
}

// UserProfile is the public shape of a user returned by GET /api/users/:id.
type UserProfile struct {
	UserID      uint      `json:"user_id"`
	FirstName   string    `json:"first_name"`
	Surname     string    `json:"surname"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Avatar      string    `json:"avatar"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u User) Profile() UserProfile {
	return UserProfile{
		UserID:      u.UserID,
		FirstName:   u.FirstName,
		Surname:     u.Surname,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Avatar:      u.Avatar,
		CreatedAt:   u.CreatedAt,
	}
}
