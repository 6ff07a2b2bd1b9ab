package seed

import "github.com/harentsoaR/carewave-api/internal/models"

var patients = []models.Patient{
	{Name: "Wafula Otieno", ContactInfo: "wafula.otieno@gmail.com", MedicalHistory: "History of hypertension", AppointmentHistory: "Regular checkups", DateOfBirth: "1985-05-10", Gender: "Male", Address: "123 Moi Avenue, Nairobi", InsuranceProvider: "Jubilee Insurance", InsuranceNumber: "JB123456"},
	{Name: "Akinyi Wanjiku", ContactInfo: "akinyi.wanjiku@gmail.com", MedicalHistory: "Allergic to penicillin", AppointmentHistory: "Annual checkups", DateOfBirth: "1990-08-15", Gender: "Female", Address: "456 Kenyatta Avenue, Nakuru", InsuranceProvider: "NHIF", InsuranceNumber: "NH789012"},
	{Name: "Namukwaya Adeke", ContactInfo: "namukwaya.adeke@gmail.com", MedicalHistory: "Diabetic", AppointmentHistory: "Monthly checkups", DateOfBirth: "1978-11-20", Gender: "Female", Address: "789 Tom Mboya Street, Mombasa", InsuranceProvider: "AAR", InsuranceNumber: "AAR345678"},
	{Name: "Ochen Mutua", ContactInfo: "ochen.mutua@gmail.com", MedicalHistory: "Asthmatic", AppointmentHistory: "Quarterly checkups", DateOfBirth: "1982-07-05", Gender: "Male", Address: "321 Uhuru Highway, Kisumu", InsuranceProvider: "Britam", InsuranceNumber: "BR901234"},
	{Name: "Kato Kamau", ContactInfo: "kato.kamau@gmail.com", MedicalHistory: "No significant history", AppointmentHistory: "First visit", DateOfBirth: "1995-01-25", Gender: "Male", Address: "654 Ngong Road, Nairobi", InsuranceProvider: "Resolution Insurance", InsuranceNumber: "RI567890"},
	{Name: "Wambui Atieno", ContactInfo: "wambui.atieno@gmail.com", MedicalHistory: "Migraines", AppointmentHistory: "Biannual checkups", DateOfBirth: "1988-09-12", Gender: "Female", Address: "987 Kimathi Street, Nyeri", InsuranceProvider: "CIC Insurance", InsuranceNumber: "CIC123456"},
	{Name: "Okello Mwangi", ContactInfo: "okello.mwangi@gmail.com", MedicalHistory: "High cholesterol", AppointmentHistory: "Annual checkups", DateOfBirth: "1975-03-30", Gender: "Male", Address: "159 Oginga Odinga Road, Kakamega", InsuranceProvider: "Heritage Insurance", InsuranceNumber: "HI789012"},
	{Name: "Nafula Omondi", ContactInfo: "nafula.omondi@gmail.com", MedicalHistory: "Arthritis", AppointmentHistory: "Monthly checkups", DateOfBirth: "1970-12-15", Gender: "Female", Address: "753 Ronald Ngala Street, Eldoret", InsuranceProvider: "NHIF", InsuranceNumber: "NH345678"},
	{Name: "Mugisha Githinji", ContactInfo: "mugisha.githinji@gmail.com", MedicalHistory: "No significant history", AppointmentHistory: "First visit", DateOfBirth: "1992-06-20", Gender: "Male", Address: "852 Moi Avenue, Machakos", InsuranceProvider: "Jubilee Insurance", InsuranceNumber: "JB901234"},
	{Name: "Amina Waweru", ContactInfo: "amina.waweru@gmail.com", MedicalHistory: "Anemia", AppointmentHistory: "Quarterly checkups", DateOfBirth: "1980-04-10", Gender: "Female", Address: "426 Haile Selassie Avenue, Nairobi", InsuranceProvider: "NHIF", InsuranceNumber: "NH567890"},
}

// appointmentSeed places an appointment relative to the seeding day.
type appointmentSeed struct {
	patient    int
	dayOffset  int
	time       string
	status     string
	doctor     string
	department string
	notes      string
}

var appointments = []appointmentSeed{
	{0, 1, "10:00:00", models.AppointmentScheduled, "Dr. Smith", "Cardiology", "Regular checkup"},
	{1, 2, "11:00:00", models.AppointmentScheduled, "Dr. Johnson", "Pediatrics", "Annual physical"},
	{2, 3, "12:00:00", models.AppointmentScheduled, "Dr. Williams", "Endocrinology", "Diabetes follow-up"},
	{3, 4, "13:00:00", models.AppointmentScheduled, "Dr. Davis", "Pulmonology", "Asthma follow-up"},
	{4, 5, "14:00:00", models.AppointmentScheduled, "Dr. Miller", "General Medicine", "Initial consultation"},
	{5, 6, "15:00:00", models.AppointmentScheduled, "Dr. Wilson", "Neurology", "Migraine treatment"},
	{6, 7, "10:30:00", models.AppointmentScheduled, "Dr. Smith", "Cardiology", "Cholesterol check"},
	{7, 8, "11:30:00", models.AppointmentScheduled, "Dr. Moore", "Rheumatology", "Arthritis treatment"},
	{8, 9, "12:30:00", models.AppointmentScheduled, "Dr. Taylor", "General Medicine", "Initial consultation"},
	{9, 10, "13:30:00", models.AppointmentScheduled, "Dr. Anderson", "Hematology", "Anemia follow-up"},
	{0, 0, "14:30:00", models.AppointmentCompleted, "Dr. Smith", "Cardiology", "Blood pressure check"},
	{1, -1, "15:30:00", models.AppointmentCompleted, "Dr. Johnson", "Pediatrics", "Vaccination"},
	{2, 13, "10:00:00", models.AppointmentScheduled, "Dr. Williams", "Endocrinology", "Insulin adjustment"},
	{3, 14, "11:00:00", models.AppointmentScheduled, "Dr. Davis", "Pulmonology", "Breathing test"},
	{4, 15, "12:00:00", models.AppointmentScheduled, "Dr. Miller", "General Medicine", "Follow-up consultation"},
	{5, 16, "13:00:00", models.AppointmentScheduled, "Dr. Wilson", "Neurology", "MRI review"},
	{6, 17, "14:00:00", models.AppointmentScheduled, "Dr. Smith", "Cardiology", "ECG test"},
	{7, 18, "15:00:00", models.AppointmentScheduled, "Dr. Moore", "Rheumatology", "Joint pain assessment"},
	{8, -2, "10:30:00", models.AppointmentNoShow, "Dr. Taylor", "General Medicine", "Follow-up consultation"},
	{9, -3, "11:30:00", models.AppointmentCancelled, "Dr. Anderson", "Hematology", "Blood work"},
}

var staff = []models.Staff{
	{Name: "Dr. Robert Smith", Role: "Doctor", Department: "Cardiology", Email: "robert.smith@carewave.com", Phone: "555-123-4567", Specialty: "Heart Disease", JoiningDate: "2020-03-15"},
	{Name: "Dr. Sarah Johnson", Role: "Doctor", Department: "Pediatrics", Email: "sarah.johnson@carewave.com", Phone: "555-234-5678", Specialty: "Child Health", JoiningDate: "2021-06-22"},
	{Name: "Kevin Williams", Role: "Administrator", Department: "Billing", Email: "kevin.williams@carewave.com", Phone: "555-345-6789", JoiningDate: "2022-11-10"},
	{Name: "Lisa Davis", Role: "Pharmacist", Department: "Pharmacy", Email: "lisa.davis@carewave.com", Phone: "555-456-7890", JoiningDate: "2022-01-05"},
	{Name: "Michael Brown", Role: "Receptionist", Department: "Front Desk", Email: "michael.brown@carewave.com", Phone: "555-567-8901", JoiningDate: "2023-08-30"},
	{Name: "Dr. Jennifer Wilson", Role: "Doctor", Department: "Neurology", Email: "jennifer.wilson@carewave.com", Phone: "555-678-9012", Specialty: "Brain Disorders", JoiningDate: "2021-05-17"},
	{Name: "Dr. James Taylor", Role: "Doctor", Department: "General Medicine", Email: "james.taylor@carewave.com", Phone: "555-789-0123", Specialty: "Primary Care", JoiningDate: "2022-09-12"},
	{Name: "Dr. Emily Moore", Role: "Doctor", Department: "Rheumatology", Email: "emily.moore@carewave.com", Phone: "555-890-1234", Specialty: "Arthritis", JoiningDate: "2020-07-23"},
	{Name: "David Anderson", Role: "Nurse", Department: "Emergency", Email: "david.anderson@carewave.com", Phone: "555-901-2345", JoiningDate: "2023-02-14"},
	{Name: "Amanda Miller", Role: "Nurse", Department: "ICU", Email: "amanda.miller@carewave.com", Phone: "555-012-3456", JoiningDate: "2023-04-01"},
}

func expiry(date string) *string { return &date }

var inventory = []models.InventoryItem{
	{Name: "Surgical Gloves", Quantity: 500, ReorderLevel: 100, Category: "Supplies", Supplier: "MedSupply Co.", LastRestocked: "2024-03-15", Price: 0.50, ExpiryDate: expiry("2026-03-15")},
	{Name: "Surgical Masks", Quantity: 1000, ReorderLevel: 200, Category: "Supplies", Supplier: "MedSupply Co.", LastRestocked: "2024-03-10", Price: 0.30, ExpiryDate: expiry("2026-03-10")},
	{Name: "Paracetamol", Quantity: 300, ReorderLevel: 50, Category: "Medication", Supplier: "PharmaCorp", LastRestocked: "2024-03-05", Price: 5.00, ExpiryDate: expiry("2025-03-05")},
	{Name: "Ibuprofen", Quantity: 250, ReorderLevel: 50, Category: "Medication", Supplier: "PharmaCorp", LastRestocked: "2024-03-01", Price: 6.00, ExpiryDate: expiry("2025-03-01")},
	{Name: "Syringes", Quantity: 400, ReorderLevel: 80, Category: "Supplies", Supplier: "MedEquip Inc.", LastRestocked: "2024-02-28", Price: 0.75, ExpiryDate: expiry("2026-02-28")},
	{Name: "Bandages", Quantity: 600, ReorderLevel: 100, Category: "Supplies", Supplier: "MedEquip Inc.", LastRestocked: "2024-02-25", Price: 1.20, ExpiryDate: expiry("2026-02-25")},
	{Name: "Antibiotics", Quantity: 150, ReorderLevel: 30, Category: "Medication", Supplier: "PharmaCorp", LastRestocked: "2024-02-20", Price: 12.00, ExpiryDate: expiry("2025-02-20")},
	{Name: "Disinfectant", Quantity: 200, ReorderLevel: 40, Category: "Supplies", Supplier: "CleanMed Ltd.", LastRestocked: "2024-02-15", Price: 8.50, ExpiryDate: expiry("2026-02-15")},
	{Name: "Thermometers", Quantity: 50, ReorderLevel: 10, Category: "Equipment", Supplier: "MedTech Solutions", LastRestocked: "2024-02-10", Price: 15.00},
	{Name: "Blood Pressure Monitors", Quantity: 25, ReorderLevel: 5, Category: "Equipment", Supplier: "MedTech Solutions", LastRestocked: "2024-02-05", Price: 65.00},
	{Name: "Gauze Pads", Quantity: 350, ReorderLevel: 70, Category: "Supplies", Supplier: "MedEquip Inc.", LastRestocked: "2024-02-01", Price: 2.00, ExpiryDate: expiry("2026-02-01")},
	{Name: "Insulin", Quantity: 80, ReorderLevel: 20, Category: "Medication", Supplier: "PharmaCorp", LastRestocked: "2024-01-28", Price: 45.00, ExpiryDate: expiry("2025-01-28")},
	{Name: "Wheelchairs", Quantity: 10, ReorderLevel: 2, Category: "Equipment", Supplier: "MobilityAid Co.", LastRestocked: "2024-01-20", Price: 250.00},
	{Name: "First Aid Kits", Quantity: 30, ReorderLevel: 5, Category: "Supplies", Supplier: "MedSupply Co.", LastRestocked: "2024-01-15", Price: 25.00, ExpiryDate: expiry("2026-01-15")},
	{Name: "Sterile Wipes", Quantity: 450, ReorderLevel: 90, Category: "Supplies", Supplier: "CleanMed Ltd.", LastRestocked: "2024-01-10", Price: 0.40, ExpiryDate: expiry("2026-01-10")},
}

// billingSeed dates each record dayOffset days before the seeding day.
type billingSeed struct {
	patient   int
	amount    float64
	status    string
	dayOffset int
	insurance string
	services  []string
}

var billing = []billingSeed{
	{0, 150.00, models.PaymentPaid, 1, "Jubilee Insurance, 80% coverage", []string{"Consultation", "Blood Test"}},
	{1, 200.00, models.PaymentPaid, 2, "NHIF, 70% coverage", []string{"Annual Physical", "Vaccination"}},
	{2, 120.00, models.PaymentPending, 3, "AAR, 75% coverage", []string{"Diabetes Consultation"}},
	{3, 180.00, models.PaymentPending, 4, "Britam, 65% coverage", []string{"Pulmonary Function Test", "Consultation"}},
	{4, 100.00, models.PaymentPaid, 5, "Resolution Insurance, 90% coverage", []string{"Initial Consultation"}},
	{5, 250.00, models.PaymentOverdue, 6, "CIC Insurance, 60% coverage", []string{"Neurological Examination", "MRI Scan"}},
	{6, 165.00, models.PaymentPaid, 7, "Heritage Insurance, 75% coverage", []string{"Cardiac Evaluation", "ECG"}},
	{7, 195.00, models.PaymentPending, 8, "NHIF, 80% coverage", []string{"Joint Assessment", "X-Ray"}},
	{8, 90.00, models.PaymentCancelled, 9, "Jubilee Insurance, 70% coverage", []string{"Consultation (Cancelled)"}},
	{9, 210.00, models.PaymentPaid, 10, "NHIF, 100% coverage", []string{"Blood Work", "Consultation"}},
}

var todos = []models.Todo{
	{Title: "Order more surgical gloves"},
	{Title: "Schedule staff meeting for next week", Completed: true},
	{Title: "Follow up with patient #3 about test results"},
	{Title: "Update inventory tracking system"},
	{Title: "Review billing reports for the month", Completed: true},
	{Title: "Organize patient files"},
	{Title: "Call insurance company about claim #JB123456"},
	{Title: "Prepare for tomorrow's appointments"},
}
