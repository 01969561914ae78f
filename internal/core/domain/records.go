package domain

import "time"

// Appointment links a patient with a doctor and, optionally, an ASHA worker.
type Appointment struct {
	ID              int64     `json:"id"`
	PatientID       string    `json:"patient_id"`
	DoctorID        string    `json:"doctor_id"`
	AshaID          string    `json:"asha_id"`
	AppointmentDate string    `json:"appointment_date"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// InventoryItem is a medicine stocked by a pharmacy.
type InventoryItem struct {
	ID             int64     `json:"id"`
	PharmacyUserID string    `json:"pharmacy_user_id"`
	MedicineName   string    `json:"medicine_name"`
	Description    string    `json:"description"`
	Stock          int64     `json:"stock"`
	Price          float64   `json:"price"`
	ExpiryDate     string    `json:"expiry_date"`
	CreatedAt      time.Time `json:"created_at"`
}

// Prescription is the metadata row paired with an uploaded file in object
// storage. FileName is the object key.
type Prescription struct {
	PrescriptionID string    `json:"prescription_id"`
	PatientID      string    `json:"patient_id"`
	DoctorID       string    `json:"doctor_id"`
	FileName       string    `json:"file_name"`
	MimeType       string    `json:"mime_type"`
	FileSize       int64     `json:"file_size"`
	Notes          string    `json:"notes"`
	IssuedAt       time.Time `json:"issued_at"`
}
