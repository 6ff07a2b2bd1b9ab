package models

type MonthlyVisits struct {
	Month  string `json:"month"`
	Visits int64  `json:"visits"`
}

// UnassignedDepartment names the bucket for appointments without a department.
const UnassignedDepartment = "Unassigned"

type DepartmentPatients struct {
	Department string `json:"department"`
	Patients   int64  `json:"patients"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type MonthlyRevenue struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// DashboardStats is the aggregate view rendered on the dashboard.
type DashboardStats struct {
	TotalPatients          int64                `json:"totalPatients"`
	TotalAppointments      int64                `json:"totalAppointments"`
	TodayAppointments      int64                `json:"todayAppointments"`
	UpcomingAppointments   int64                `json:"upcomingAppointments"`
	MonthlyPatientVisits   []MonthlyVisits      `json:"monthlyPatientVisits"`
	DepartmentDistribution []DepartmentPatients `json:"departmentDistribution"`
	AppointmentStatus      []StatusCount        `json:"appointmentStatus"`
	RevenueData            []MonthlyRevenue     `json:"revenueData"`
}
