package models

import "time"

const (
	AppointmentScheduled = "Scheduled"
	AppointmentCompleted = "Completed"
	AppointmentCancelled = "Cancelled"
	AppointmentNoShow    = "No-Show"
)

// AppointmentStatuses is the closed set of appointment states, in display order.
var AppointmentStatuses = []string{AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow}

type Appointment struct {
	ID         string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	PatientID  string    `gorm:"size:36;not null;index" bson:"patient_id" json:"patientId"`
	Date       string    `gorm:"size:10;not null;index" bson:"date" json:"date"`
	Time       string    `gorm:"size:8;not null" bson:"time" json:"time"`
	Status     string    `gorm:"size:20;not null;index" bson:"status" json:"status"`
	Doctor     string    `bson:"doctor" json:"doctor"`
	Department string    `gorm:"index" bson:"department" json:"department"`
	Notes      string    `bson:"notes" json:"notes"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`

	Patient *Patient `gorm:"constraint:OnDelete:CASCADE" bson:"-" json:"-"`
}

// AppointmentUpdate carries the fields of a partial update; nil fields are left untouched.
type AppointmentUpdate struct {
	PatientID  *string `json:"patientId,omitempty"`
	Date       *string `json:"date,omitempty"`
	Time       *string `json:"time,omitempty"`
	Status     *string `json:"status,omitempty"`
	Doctor     *string `json:"doctor,omitempty"`
	Department *string `json:"department,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (u AppointmentUpdate) Apply(a *Appointment) {
	setString(&a.PatientID, u.PatientID)
	setString(&a.Date, u.Date)
	setString(&a.Time, u.Time)
	setString(&a.Status, u.Status)
	setString(&a.Doctor, u.Doctor)
	setString(&a.Department, u.Department)
	setString(&a.Notes, u.Notes)
}

// AppointmentWithPatient is an appointment joined with its patient's name.
type AppointmentWithPatient struct {
	Appointment
	PatientName string `json:"patientName"`
}

// ValidAppointmentStatus reports whether status is one of AppointmentStatuses.
func ValidAppointmentStatus(status string) bool {
	for _, s := range AppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
