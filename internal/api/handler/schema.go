package handler

import "github.com/carelink/health-gateway/internal/core/domain"

// --- Auth ---

type signupRequest struct {
	UserID   string `json:"user_id"   validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone"     validate:"required"`
	Password string `json:"password"  validate:"required"`
	Role     string `json:"role"      validate:"required"`
}

type loginRequest struct {
	Phone    string `json:"phone"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Appointments ---

type createAppointmentRequest struct {
	PatientID       string `json:"patient_id"       validate:"required"`
	DoctorID        string `json:"doctor_id"        validate:"required"`
	AshaID          string `json:"asha_id"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	Status          string `json:"status"`
}

// --- Inventory ---

type createInventoryRequest struct {
	PharmacyUserID string  `json:"pharmacy_user_id" validate:"required"`
	MedicineName   string  `json:"medicine_name"    validate:"required"`
	Description    string  `json:"description"`
	Stock          int64   `json:"stock"`
	Price          float64 `json:"price"`
	ExpiryDate     string  `json:"expiry_date"`
}

// --- Prescriptions ---

type createPrescriptionForm struct {
	PatientID string `form:"patient_id" validate:"required"`
	DoctorID  string `form:"doctor_id"  validate:"required"`
	Notes     string `form:"notes"`
}

type prescriptionResponse struct {
	Message      string               `json:"message"`
	Prescription *domain.Prescription `json:"prescription"`
}
