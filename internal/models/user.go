package models

import "time"

const (
	RoleAdministrator = "Administrator"
	RoleDoctor        = "Doctor"
	RoleNurse         = "Nurse"
	RoleReceptionist  = "Receptionist"
	RoleStaff         = "Staff"
)

// Roles lists every role a credential may carry.
var Roles = []string{RoleAdministrator, RoleDoctor, RoleNurse, RoleReceptionist, RoleStaff}

type User struct {
	ID           string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" bson:"email" json:"email"`
	Name         string    `gorm:"not null" bson:"name" json:"name"`
	Role         string    `gorm:"size:32;not null" bson:"role" json:"role"`
	PasswordHash string    `gorm:"not null" bson:"password_hash" json:"-"` // Hide from JSON responses
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// ValidRole reports whether role is one of Roles.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
