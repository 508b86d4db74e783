package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the profile of a sender who completed (or updated) the member
// registration flow. One record per phone number, upserted at the final
// cadastro step.
type User struct {
	gorm.Model
	Phone            string     `json:"phone" gorm:"uniqueIndex;not null"`
	Name             string     `json:"name"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	MaritalStatus    string     `json:"marital_status"`
	Address          string     `json:"address"`
	Profession       string     `json:"profession"`
	HowFoundChurch   string     `json:"how_found_church"`
	IsMember         bool       `json:"is_member" gorm:"default:false"`
	RegistrationDate time.Time  `json:"registration_date"`
	LastInteraction  time.Time  `json:"last_interaction" gorm:"index"`
}
