package models

import "time"

// Admission is an admitPatient record. Exactly one open admission may hold
// a given bed or room; the hold is taken by a conditional status update on
// the bed/room document.
type Admission struct {
	Code           string    `json:"code" bson:"code"`
	PatientID      string    `json:"patientId" bson:"patientId"`
	DoctorID       string    `json:"doctorId" bson:"doctorId"`
	AllocationType string    `json:"allocationType" bson:"allocationType"`
	BedDetailID    string    `json:"bedDetailId,omitempty" bson:"bedDetailId,omitempty"`
	RoomDetailID   string    `json:"roomDetailId,omitempty" bson:"roomDetailId,omitempty"`
	AdmissionDate  string    `json:"admissionDate" bson:"admissionDate"`
	Reason         string    `json:"reason,omitempty" bson:"reason,omitempty"`
	Discharged     bool      `json:"discharged" bson:"discharged"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	CreatedBy      string    `json:"createdBy" bson:"createdBy"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy      string    `json:"updatedBy" bson:"updatedBy"`
}

type AdmitPatientRequest struct {
	PatientID      string `json:"patientId" binding:"required"`
	DoctorID       string `json:"doctorId" binding:"required"`
	AllocationType string `json:"allocationType" binding:"required"`
	BedDetailID    string `json:"bedDetailId"`
	RoomDetailID   string `json:"roomDetailId"`
	AdmissionDate  string `json:"admissionDate" binding:"required"`
	Reason         string `json:"reason"`
}

// Discharge closes an admission and releases its bed or room.
type Discharge struct {
	Code          string    `json:"code" bson:"code"`
	AdmissionID   string    `json:"admissionId" bson:"admissionId"`
	PatientID     string    `json:"patientId" bson:"patientId"`
	DischargeDate string    `json:"dischargeDate" bson:"dischargeDate"`
	Summary       string    `json:"summary,omitempty" bson:"summary,omitempty"`
	Documents     []string  `json:"documents,omitempty" bson:"documents,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	CreatedBy     string    `json:"createdBy" bson:"createdBy"`
}

type DischargePatientRequest struct {
	AdmissionID   string   `json:"admissionId" binding:"required"`
	DischargeDate string   `json:"dischargeDate" binding:"required"`
	Summary       string   `json:"summary"`
	// Documents holds filenames populated by the upload middleware.
	Documents []string `json:"documents"`
}
