package models

import "time"

type Staff struct {
	ID          string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	Name        string    `gorm:"not null;index" bson:"name" json:"name"`
	Role        string    `gorm:"not null" bson:"role" json:"role"`
	Department  string    `gorm:"not null" bson:"department" json:"department"`
	Email       string    `gorm:"not null" bson:"email" json:"email"`
	Phone       string    `bson:"phone" json:"phone"`
	Specialty   string    `bson:"specialty" json:"specialty"`
	JoiningDate string    `gorm:"size:10" bson:"joining_date" json:"joiningDate"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

func (Staff) TableName() string { return "staff" }

type StaffUpdate struct {
	Name        *string `json:"name,omitempty"`
	Role        *string `json:"role,omitempty"`
	Department  *string `json:"department,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Specialty   *string `json:"specialty,omitempty"`
	JoiningDate *string `json:"joiningDate,omitempty"`
}

func (u StaffUpdate) Apply(s *Staff) {
	setString(&s.Name, u.Name)
	setString(&s.Role, u.Role)
	setString(&s.Department, u.Department)
	setString(&s.Email, u.Email)
	setString(&s.Phone, u.Phone)
	setString(&s.Specialty, u.Specialty)
	setString(&s.JoiningDate, u.JoiningDate)
}
