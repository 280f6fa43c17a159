package models

import (
	"time"
)

// Gender choices for the signup form.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// User is an account that owns tasks.
type User struct {
	ID           string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username     string     `gorm:"type:varchar(100);uniqueIndex" json:"username"`
	Email        string     `gorm:"type:varchar(100)" json:"email"`
	PasswordHash string     `gorm:"type:varchar(100)" json:"-"`
	DateOfBirth  *time.Time `gorm:"type:date" json:"dateOfBirth,omitempty"`
	Gender       string     `gorm:"type:varchar(10);default:other" json:"gender"`
	CreatedAt    time.Time  `json:"createdAt"`
	Tasks        []Task     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) GetDisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
