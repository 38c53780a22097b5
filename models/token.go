package models

import "time"

// Vitals captured at the reception desk when the token is issued.
type Vitals struct {
	BloodPressure string `json:"bloodPressure,omitempty" bson:"bloodPressure,omitempty"`
	Pulse         string `json:"pulse,omitempty" bson:"pulse,omitempty"`
	Temperature   string `json:"temperature,omitempty" bson:"temperature,omitempty"`
	Weight        string `json:"weight,omitempty" bson:"weight,omitempty"`
	Height        string `json:"height,omitempty" bson:"height,omitempty"`
}

// Token is one place in a doctor's walk-in queue for a date. The
// (doctorId, tokenDate, tokenNumber) triple is unique by index.
type Token struct {
	Code        string    `json:"code" bson:"code"`
	PatientID   string    `json:"patientId" bson:"patientId"`
	DoctorID    string    `json:"doctorId" bson:"doctorId"`
	TokenDate   string    `json:"tokenDate" bson:"tokenDate"`
	TokenNumber int       `json:"tokenNumber" bson:"tokenNumber"`
	Vitals      Vitals    `json:"vitals,omitempty" bson:"vitals,omitempty"`
	Status      string    `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	CreatedBy   string    `json:"createdBy" bson:"createdBy"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy   string    `json:"updatedBy" bson:"updatedBy"`
}

type CreateTokenRequest struct {
	PatientID string `json:"patientId" binding:"required"`
	DoctorID  string `json:"doctorId" binding:"required"`
	TokenDate string `json:"tokenDate" binding:"required"`
	// TokenNumber zero or below means auto-assign the next free number.
	TokenNumber int    `json:"tokenNumber"`
	Vitals      Vitals `json:"vitals"`
}

// Tokens burn down rather than cancel; a no-show stays on record.
func ValidTokenStatus(status string) bool {
	switch status {
	case StatusScheduled, StatusConfirmed, StatusCheckedIn, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}
