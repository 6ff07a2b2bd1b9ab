package models

import "time"

// UnknownPatient is shown wherever a record points at a patient that no longer exists.
const UnknownPatient = "Unknown"

type Patient struct {
	ID                 string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	Name               string    `gorm:"not null;index" bson:"name" json:"name"`
	ContactInfo        string    `gorm:"not null" bson:"contact_info" json:"contactInfo"`
	Address            string    `gorm:"not null" bson:"address" json:"address"`
	MedicalHistory     string    `bson:"medical_history" json:"medicalHistory"`
	AppointmentHistory string    `bson:"appointment_history" json:"appointmentHistory"`
	DateOfBirth        string    `gorm:"size:10" bson:"date_of_birth" json:"dateOfBirth"`
	Gender             string    `gorm:"size:32" bson:"gender" json:"gender"`
	InsuranceProvider  string    `bson:"insurance_provider" json:"insuranceProvider"`
	InsuranceNumber    string    `bson:"insurance_number" json:"insuranceNumber"`
	CreatedAt          time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updatedAt"`
}

type PatientUpdate struct {
	Name               *string `json:"name,omitempty"`
	ContactInfo        *string `json:"contactInfo,omitempty"`
	Address            *string `json:"address,omitempty"`
	MedicalHistory     *string `json:"medicalHistory,omitempty"`
	AppointmentHistory *string `json:"appointmentHistory,omitempty"`
	DateOfBirth        *string `json:"dateOfBirth,omitempty"`
	Gender             *string `json:"gender,omitempty"`
	InsuranceProvider  *string `json:"insuranceProvider,omitempty"`
	InsuranceNumber    *string `json:"insuranceNumber,omitempty"`
}

func (u PatientUpdate) Apply(p *Patient) {
	setString(&p.Name, u.Name)
	setString(&p.ContactInfo, u.ContactInfo)
	setString(&p.Address, u.Address)
	setString(&p.MedicalHistory, u.MedicalHistory)
	setString(&p.AppointmentHistory, u.AppointmentHistory)
	setString(&p.DateOfBirth, u.DateOfBirth)
	setString(&p.Gender, u.Gender)
	setString(&p.InsuranceProvider, u.InsuranceProvider)
	setString(&p.InsuranceNumber, u.InsuranceNumber)
}

// PatientWithAppointments is a patient together with every appointment that references it.
type PatientWithAppointments struct {
	Patient
	Appointments []Appointment `json:"appointments"`
}
