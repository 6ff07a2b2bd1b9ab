package models

import "time"

const (
	PaymentPaid      = "Paid"
	PaymentPending   = "Pending"
	PaymentOverdue   = "Overdue"
	PaymentCancelled = "Cancelled"
)

var PaymentStatuses = []string{PaymentPaid, PaymentPending, PaymentOverdue, PaymentCancelled}

type BillingRecord struct {
	ID               string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	PatientID        *string   `gorm:"size:36;index" bson:"patient_id" json:"patientId"`
	Amount           float64   `gorm:"not null" bson:"amount" json:"amount"`
	PaymentStatus    string    `gorm:"size:20;not null;index" bson:"payment_status" json:"paymentStatus"`
	Date             string    `gorm:"size:10;not null;index" bson:"date" json:"date"`
	InsuranceDetails string    `bson:"insurance_details" json:"insuranceDetails"`
	InvoiceNumber    string    `gorm:"size:32;index" bson:"invoice_number" json:"invoiceNumber"`
	Services         []string  `gorm:"-" bson:"services" json:"services"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updatedAt"`

	ServiceLines []BillingService `gorm:"foreignKey:BillingID;constraint:OnDelete:CASCADE" bson:"-" json:"-"`
	Patient      *Patient         `gorm:"constraint:OnDelete:SET NULL" bson:"-" json:"-"`
}

func (BillingRecord) TableName() string { return "billing" }

// BillingService is one named service line on a billing record.
type BillingService struct {
	ID          string    `gorm:"primaryKey;size:36"`
	BillingID   string    `gorm:"size:36;not null;index"`
	ServiceName string    `gorm:"not null"`
	Position    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
}

func (BillingService) TableName() string { return "billing_services" }

type BillingUpdate struct {
	PatientID        *string   `json:"patientId,omitempty"`
	Amount           *float64  `json:"amount,omitempty"`
	PaymentStatus    *string   `json:"paymentStatus,omitempty"`
	Date             *string   `json:"date,omitempty"`
	InsuranceDetails *string   `json:"insuranceDetails,omitempty"`
	InvoiceNumber    *string   `json:"invoiceNumber,omitempty"`
	Services         *[]string `json:"services,omitempty"`
}

func (u BillingUpdate) Apply(b *BillingRecord) {
	if u.PatientID != nil {
		if *u.PatientID == "" {
			b.PatientID = nil
		} else {
			id := *u.PatientID
			b.PatientID = &id
		}
	}
	if u.Amount != nil {
		b.Amount = *u.Amount
	}
	setString(&b.PaymentStatus, u.PaymentStatus)
	setString(&b.Date, u.Date)
	setString(&b.InsuranceDetails, u.InsuranceDetails)
	setString(&b.InvoiceNumber, u.InvoiceNumber)
	if u.Services != nil {
		b.Services = append([]string(nil), (*u.Services)...)
	}
}

// BillingWithPatient is a billing record joined with its patient's name.
type BillingWithPatient struct {
	BillingRecord
	PatientName string `json:"patientName"`
}

func ValidPaymentStatus(status string) bool {
	for _, s := range PaymentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// BillingInput is the body of a create request. Amount is a pointer so that
// an absent amount is rejected rather than stored as zero.
type BillingInput struct {
	PatientID        *string  `json:"patientId"`
	Amount           *float64 `json:"amount"`
	PaymentStatus    string   `json:"paymentStatus"`
	Date             string   `json:"date"`
	InsuranceDetails string   `json:"insuranceDetails"`
	InvoiceNumber    string   `json:"invoiceNumber"`
	Services         []string `json:"services"`
}

func (in BillingInput) Record() *BillingRecord {
	b := &BillingRecord{
		PaymentStatus:    in.PaymentStatus,
		Date:             in.Date,
		InsuranceDetails: in.InsuranceDetails,
		InvoiceNumber:    in.InvoiceNumber,
		Services:         append([]string(nil), in.Services...),
	}
	if in.PatientID != nil && *in.PatientID != "" {
		id := *in.PatientID
		b.PatientID = &id
	}
	if in.Amount != nil {
		b.Amount = *in.Amount
	}
	return b
}
